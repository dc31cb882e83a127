package vdom

import (
	"strconv"
	"strings"
)

// VNode is a virtual node.
type VNode struct {
	Selector   string   // Tag plus .class/#id fragments; "" for text nodes
	Properties Props    // Attributes and event handlers, may be nil
	Children   []*VNode // Child nodes, may be nil
	Text       string   // Content of a text node, or collapsed text of an element
}

// Props holds attributes and event handlers.
type Props map[string]any

// Get returns the property stored under key.
func (p Props) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p[key]
	return v, ok
}

// Has reports whether key is present.
func (p Props) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// IsText reports whether this is a text node.
func (v *VNode) IsText() bool {
	return v != nil && v.Selector == ""
}

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.IsText() {
		return false
	}
	for key := range v.Properties {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// Tag returns the tag portion of the selector.
func (v *VNode) Tag() string {
	if v == nil {
		return ""
	}
	if i := strings.IndexAny(v.Selector, ".#"); i >= 0 {
		return v.Selector[:i]
	}
	return v.Selector
}

// ID returns the first #id fragment of the selector, without the '#'.
func (v *VNode) ID() string {
	for _, f := range v.fragments() {
		if f[0] == '#' {
			return f[1:]
		}
	}
	return ""
}

// Classes returns the .class fragments of the selector in order, without the '.'.
func (v *VNode) Classes() []string {
	var classes []string
	for _, f := range v.fragments() {
		if f[0] == '.' {
			classes = append(classes, f[1:])
		}
	}
	return classes
}

// HasClass reports whether the selector carries the given class.
func (v *VNode) HasClass(name string) bool {
	for _, c := range v.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// fragments splits the selector after the tag into ".x" and "#y" parts.
func (v *VNode) fragments() []string {
	if v == nil {
		return nil
	}
	rest := v.Selector[len(v.Tag()):]
	var out []string
	for len(rest) > 0 {
		next := strings.IndexAny(rest[1:], ".#")
		if next < 0 {
			out = append(out, rest)
			break
		}
		out = append(out, rest[:next+1])
		rest = rest[next+1:]
	}
	return out
}

// String returns a short description for diagnostics.
func (v *VNode) String() string {
	if v == nil {
		return "<nil>"
	}
	if v.IsText() {
		return "#text " + strconv.Quote(v.Text)
	}
	return v.Selector
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
