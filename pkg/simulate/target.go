package simulate

// ValueTarget is an event target with a mutable value, such as a text field.
type ValueTarget interface {
	Value() string
	SetValue(string)
}

// Field is a minimal ValueTarget. It records every value it is given.
type Field struct {
	value   string
	history []string
}

// NewField creates a Field holding value.
func NewField(value string) *Field {
	return &Field{value: value}
}

// Value returns the current value.
func (f *Field) Value() string {
	return f.value
}

// SetValue replaces the current value.
func (f *Field) SetValue(v string) {
	f.value = v
	f.history = append(f.history, v)
}

// History returns the values passed to SetValue, oldest first.
func (f *Field) History() []string {
	return append([]string(nil), f.history...)
}
