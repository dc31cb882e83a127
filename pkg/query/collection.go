package query

import (
	"fmt"

	"github.com/vango-dev/vquery/pkg/vdom"
)

// Collection is a re-resolvable reference to an ordered list of nodes.
type Collection struct {
	resolve func() ([]*vdom.VNode, error)
	path    string
}

func newCollection(path string, resolve func() ([]*vdom.VNode, error)) *Collection {
	return &Collection{resolve: resolve, path: path}
}

// Path describes how the collection finds its nodes, for diagnostics.
func (c *Collection) Path() string {
	return c.path
}

// Nodes resolves the collection against the current tree.
func (c *Collection) Nodes() ([]*vdom.VNode, error) {
	return c.resolve()
}

// Len returns the current number of matches.
func (c *Collection) Len() (int, error) {
	nodes, err := c.resolve()
	if err != nil {
		return 0, err
	}
	return len(nodes), nil
}

// At returns a handle to the match at index. The index is applied to the
// current matches each time the handle is resolved.
func (c *Collection) At(index int) *Handle {
	return newHandle(fmt.Sprintf("%s [%d]", c.path, index), func() (*vdom.VNode, error) {
		nodes, err := c.resolve()
		if err != nil {
			return nil, err
		}
		if index < 0 || index >= len(nodes) {
			return nil, nil
		}
		return nodes[index], nil
	})
}

// Handles returns one handle per current match, as returned by At.
func (c *Collection) Handles() ([]*Handle, error) {
	n, err := c.Len()
	if err != nil {
		return nil, err
	}
	out := make([]*Handle, n)
	for i := range out {
		out[i] = c.At(i)
	}
	return out, nil
}

// TextContents returns the text content of every current match.
func (c *Collection) TextContents() ([]string, error) {
	nodes, err := c.resolve()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = TextContent(n)
	}
	return out, nil
}
