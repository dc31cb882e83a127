package simulate

// Event types.
const (
	TypeKeyDown   = "keydown"
	TypeKeyUp     = "keyup"
	TypeMouseDown = "mousedown"
	TypeMouseUp   = "mouseup"
	TypeClick     = "click"
	TypeInput     = "input"
	TypeChange    = "change"
	TypeFocus     = "focus"
	TypeBlur      = "blur"
)

// Event is a synthetic event passed to handlers.
type Event struct {
	// Type is the event name without the "on" prefix (e.g., "keydown").
	Type string

	// Target is the value supplied by the caller as the event target.
	Target any

	// Which is the key code for keyboard events.
	Which int

	// PageX and PageY are set for mouse events only when the caller
	// supplied them.
	PageX *int
	PageY *int

	defaultPrevented   bool
	propagationStopped bool
}

// NewEvent creates a base event with no kind-specific fields.
func NewEvent(typ string, target any) *Event {
	return &Event{Type: typ, Target: target}
}

// NewKeyEvent creates a keyboard event carrying keyCode in Which.
func NewKeyEvent(typ string, keyCode int, target any) *Event {
	e := NewEvent(typ, target)
	e.Which = keyCode
	return e
}

// NewMouseEvent creates a mouse event.
func NewMouseEvent(typ string, target any, opts ...MouseOption) *Event {
	e := NewEvent(typ, target)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PreventDefault marks the event as default-prevented.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// StopPropagation marks the event as propagation-stopped.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// PropagationStopped reports whether a handler called StopPropagation.
func (e *Event) PropagationStopped() bool {
	return e.propagationStopped
}

// MouseOption configures a mouse event.
type MouseOption func(*Event)

// WithPageX sets the document-relative X coordinate.
func WithPageX(x int) MouseOption {
	return func(e *Event) { e.PageX = &x }
}

// WithPageY sets the document-relative Y coordinate.
func WithPageY(y int) MouseOption {
	return func(e *Event) { e.PageY = &y }
}

// WithPage sets both document-relative coordinates.
func WithPage(x, y int) MouseOption {
	return func(e *Event) {
		e.PageX = &x
		e.PageY = &y
	}
}
