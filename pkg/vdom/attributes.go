package vdom

// Attr represents a single property.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Prop creates a property with an arbitrary key.
func Prop(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Value sets the value property of a form control.
func Value(v string) Attr { return Prop("value", v) }

// Disabled sets the disabled property.
func Disabled(b bool) Attr { return Prop("disabled", b) }

// Href sets the href property.
func Href(url string) Attr { return Prop("href", url) }

// Handler property keys understood by the simulate package.
const (
	EventKeyDown   = "onkeydown"
	EventKeyUp     = "onkeyup"
	EventMouseDown = "onmousedown"
	EventMouseUp   = "onmouseup"
	EventClick     = "onclick"
	EventInput     = "oninput"
	EventChange    = "onchange"
	EventFocus     = "onfocus"
	EventBlur      = "onblur"
)

// event creates an Attr holding a handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) Attr {
	return Attr{Key: "on" + name, Value: handler}
}

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) Attr { return event("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) Attr { return event("keyup", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler any) Attr { return event("mousedown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler any) Attr { return event("mouseup", handler) }

// OnClick handles click events.
func OnClick(handler any) Attr { return event("click", handler) }

// OnInput handles input events (fired when value changes).
func OnInput(handler any) Attr { return event("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) Attr { return event("change", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) Attr { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) Attr { return event("blur", handler) }
