package vdom

// H creates an element node with the given selector.
// Arguments can be: nil, Attr, []Attr, Props, *VNode, []*VNode, Component, string.
// A string argument becomes a text child.
func H(selector string, args ...any) *VNode {
	node := &VNode{Selector: selector}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional children)
			continue

		case Attr:
			if !v.IsEmpty() {
				node.setProp(v.Key, v.Value)
			}

		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					node.setProp(a.Key, a.Value)
				}
			}

		case Props:
			for key, value := range v {
				node.setProp(key, value)
			}

		case map[string]any:
			for key, value := range v {
				node.setProp(key, value)
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case Component:
			if child := v.Render(); child != nil {
				node.Children = append(node.Children, child)
			}

		case string:
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

func (v *VNode) setProp(key string, value any) {
	if v.Properties == nil {
		v.Properties = make(Props)
	}
	v.Properties[key] = value
}
