package vdom

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/vango-dev/vquery/internal/errors"
	"gopkg.in/yaml.v3"
)

// fixtureNode is the on-disk shape of a VNode. JSON fixtures decode through
// the same path because YAML is a superset of JSON.
type fixtureNode struct {
	Selector   string         `yaml:"selector"`
	Text       string         `yaml:"text"`
	Properties map[string]any `yaml:"properties"`
	Children   []*fixtureNode `yaml:"children"`
}

// UnmarshalYAML accepts a bare scalar as shorthand for a text node.
func (f *fixtureNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		f.Text = value.Value
		return nil
	}
	type plain fixtureNode
	return value.Decode((*plain)(f))
}

// Decode reads a single VNode tree from r.
func Decode(r io.Reader) (*VNode, error) {
	var root fixtureNode
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.New(errors.CodeFixtureInvalid).WithDetail("empty document")
		}
		return nil, errors.FromError(err, errors.CodeFixtureInvalid)
	}
	return root.toVNode("$")
}

// DecodeBytes reads a single VNode tree from data.
func DecodeBytes(data []byte) (*VNode, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile reads a single VNode tree from the file at path.
func DecodeFile(path string) (*VNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FromError(err, errors.CodeFixtureInvalid).WithDetail(path)
	}
	node, err := DecodeBytes(data)
	if err != nil {
		var qe *errors.Error
		if stderrors.As(err, &qe) && qe.Detail == "" {
			qe.Detail = path
		}
		return nil, err
	}
	return node, nil
}

func (f *fixtureNode) toVNode(path string) (*VNode, error) {
	if f.Selector == "" && len(f.Children) > 0 {
		return nil, errors.New(errors.CodeFixtureInvalid).
			WithDetailf("%s: text node cannot have children", path)
	}
	node := &VNode{Selector: f.Selector, Text: f.Text}
	if len(f.Properties) > 0 {
		node.Properties = Props(f.Properties)
	}
	for i, c := range f.Children {
		if c == nil {
			continue
		}
		child, err := c.toVNode(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}
