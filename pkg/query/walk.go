package query

import (
	"strings"

	"github.com/vango-dev/vquery/pkg/vdom"
)

// FindAll returns every node in the tree rooted at root that matches pred,
// including root itself, in pre-order.
func FindAll(pred Predicate, root *vdom.VNode) []*vdom.VNode {
	return collect(pred, root, nil)
}

// FindDescendants is like FindAll but never matches root itself.
func FindDescendants(pred Predicate, root *vdom.VNode) []*vdom.VNode {
	if root == nil {
		return nil
	}
	var out []*vdom.VNode
	for _, child := range root.Children {
		out = collect(pred, child, out)
	}
	return out
}

// Find returns the first pre-order match in the tree rooted at root,
// including root itself, or nil.
func Find(pred Predicate, root *vdom.VNode) *vdom.VNode {
	if root == nil {
		return nil
	}
	if pred(root) {
		return root
	}
	return findDescendant(pred, root)
}

// findDescendant returns the first pre-order match below root.
func findDescendant(pred Predicate, root *vdom.VNode) *vdom.VNode {
	for _, child := range root.Children {
		if found := Find(pred, child); found != nil {
			return found
		}
	}
	return nil
}

func collect(pred Predicate, node *vdom.VNode, out []*vdom.VNode) []*vdom.VNode {
	if node == nil {
		return out
	}
	if pred(node) {
		out = append(out, node)
	}
	for _, child := range node.Children {
		out = collect(pred, child, out)
	}
	return out
}

// TextContent concatenates the text of node and its descendants in
// document order. An element's own Text comes before its children.
func TextContent(node *vdom.VNode) string {
	var b strings.Builder
	writeText(&b, node)
	return b.String()
}

func writeText(b *strings.Builder, node *vdom.VNode) {
	if node == nil {
		return
	}
	b.WriteString(node.Text)
	if node.IsText() {
		return
	}
	for _, child := range node.Children {
		writeText(b, child)
	}
}
