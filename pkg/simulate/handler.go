package simulate

// Handler handles a synthetic event.
type Handler interface {
	HandleEvent(*Event)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(*Event)

// HandleEvent implements Handler.
func (f HandlerFunc) HandleEvent(e *Event) { f(e) }

// wrapHandler converts a handler property to a HandlerFunc.
// It reports false for values that cannot be called.
func wrapHandler(value any) (HandlerFunc, bool) {
	switch h := value.(type) {
	case nil:
		return nil, false

	case HandlerFunc:
		return h, h != nil

	case func(*Event):
		return h, h != nil

	// Returning false cancels the default action
	case func(*Event) bool:
		if h == nil {
			return nil, false
		}
		return func(e *Event) {
			if !h(e) {
				e.PreventDefault()
			}
		}, true

	case func():
		if h == nil {
			return nil, false
		}
		return func(*Event) { h() }, true

	// Value handler - receives the target's value
	case func(string):
		if h == nil {
			return nil, false
		}
		return func(e *Event) {
			if t, ok := e.Target.(ValueTarget); ok {
				h(t.Value())
				return
			}
			h("")
		}, true

	case Handler:
		return h.HandleEvent, true

	default:
		return nil, false
	}
}
