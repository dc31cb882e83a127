package query

import (
	"fmt"

	"github.com/vango-dev/vquery/internal/errors"
	"github.com/vango-dev/vquery/pkg/simulate"
	"github.com/vango-dev/vquery/pkg/vdom"
)

// Handle is a re-resolvable reference to a single node.
//
// A Handle never stores the node it resolves to. Each accessor resolves it
// again, so the result tracks the current tree.
type Handle struct {
	resolve func() (*vdom.VNode, error)
	path    string

	// children caches the wrappers returned by GetChild; each wrapper
	// still resolves against the live node.
	children map[int]*Handle
}

func newHandle(path string, resolve func() (*vdom.VNode, error)) *Handle {
	return &Handle{resolve: resolve, path: path}
}

// Wrap returns a Handle that always resolves to node.
func Wrap(node *vdom.VNode) *Handle {
	return newHandle("root", func() (*vdom.VNode, error) {
		return node, nil
	})
}

// Query returns a handle to the first descendant of tree matching sel.
// It panics if sel is invalid.
func Query(tree *vdom.VNode, sel Selector) *Handle {
	return Wrap(tree).Query(sel)
}

// QueryAll returns a collection of the descendants of tree matching sel.
// It panics if sel is invalid.
func QueryAll(tree *vdom.VNode, sel Selector) *Collection {
	return Wrap(tree).QueryAll(sel)
}

// Path describes how the handle finds its node, for diagnostics.
func (h *Handle) Path() string {
	return h.path
}

// Execute resolves the handle against the current tree.
func (h *Handle) Execute() (*vdom.VNode, error) {
	node, err := h.resolve()
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, errors.New(errors.CodeNodeNotFound).WithDetail(h.path)
	}
	return node, nil
}

// Exists reports whether the handle currently resolves to a node.
// It never fails.
func (h *Handle) Exists() bool {
	node, err := h.resolve()
	return err == nil && node != nil
}

// Query returns a handle to the first descendant matching sel.
// It panics with ErrInvalidSelector if sel is invalid; use TryQuery to get
// the error instead.
func (h *Handle) Query(sel Selector) *Handle {
	q, err := h.TryQuery(sel)
	if err != nil {
		panic(err)
	}
	return q
}

// TryQuery is like Query but returns an invalid selector as an error.
func (h *Handle) TryQuery(sel Selector) (*Handle, error) {
	pred, err := Compile(sel)
	if err != nil {
		return nil, err
	}
	return newHandle(h.path+" "+describeSelector(sel), func() (*vdom.VNode, error) {
		node, err := h.Execute()
		if err != nil {
			return nil, err
		}
		return findDescendant(pred, node), nil
	}), nil
}

// QueryAll returns a collection of all descendants matching sel.
// It panics with ErrInvalidSelector if sel is invalid; use TryQueryAll to
// get the error instead.
func (h *Handle) QueryAll(sel Selector) *Collection {
	c, err := h.TryQueryAll(sel)
	if err != nil {
		panic(err)
	}
	return c
}

// TryQueryAll is like QueryAll but returns an invalid selector as an error.
func (h *Handle) TryQueryAll(sel Selector) (*Collection, error) {
	pred, err := Compile(sel)
	if err != nil {
		return nil, err
	}
	return newCollection(h.path+" "+describeSelector(sel), func() ([]*vdom.VNode, error) {
		node, err := h.Execute()
		if err != nil {
			return nil, err
		}
		return FindDescendants(pred, node), nil
	}), nil
}

// TextContent returns the concatenated text of the node and its descendants.
func (h *Handle) TextContent() (string, error) {
	node, err := h.Execute()
	if err != nil {
		return "", err
	}
	return TextContent(node), nil
}

// VNodeSelector returns the node's selector string.
func (h *Handle) VNodeSelector() (string, error) {
	node, err := h.Execute()
	if err != nil {
		return "", err
	}
	return node.Selector, nil
}

// Properties returns the node's properties. The map belongs to the node and
// must not be modified.
func (h *Handle) Properties() (vdom.Props, error) {
	node, err := h.Execute()
	if err != nil {
		return nil, err
	}
	return node.Properties, nil
}

// Children returns one handle per current child, as returned by GetChild.
func (h *Handle) Children() ([]*Handle, error) {
	node, err := h.Execute()
	if err != nil {
		return nil, err
	}
	out := make([]*Handle, len(node.Children))
	for i := range out {
		out[i] = h.GetChild(i)
	}
	return out, nil
}

// GetChild returns a handle to the child at index. The index is applied to
// the node's children each time the handle is resolved.
func (h *Handle) GetChild(index int) *Handle {
	if c, ok := h.children[index]; ok {
		return c
	}
	c := newHandle(fmt.Sprintf("%s > [%d]", h.path, index), func() (*vdom.VNode, error) {
		node, err := h.Execute()
		if err != nil {
			return nil, err
		}
		if index < 0 || index >= len(node.Children) {
			return nil, nil
		}
		return node.Children[index], nil
	})
	if h.children == nil {
		h.children = make(map[int]*Handle)
	}
	h.children[index] = c
	return c
}

// Simulate returns a Simulator that dispatches events to this handle's node.
func (h *Handle) Simulate() *simulate.Simulator {
	return simulate.New(h.Execute)
}
