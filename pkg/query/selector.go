package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vango-dev/vquery/internal/errors"
	"github.com/vango-dev/vquery/pkg/vdom"
)

// Selector is a string fragment, a Predicate or a func(*vdom.VNode) bool.
type Selector = any

// Predicate reports whether a node matches.
type Predicate func(*vdom.VNode) bool

// Compile turns a selector into a Predicate.
func Compile(sel Selector) (Predicate, error) {
	switch s := sel.(type) {
	case Predicate:
		if s == nil {
			return nil, invalidSelector(sel)
		}
		return s, nil

	case func(*vdom.VNode) bool:
		if s == nil {
			return nil, invalidSelector(sel)
		}
		return Predicate(s), nil

	case string:
		if s == "" {
			return nil, invalidSelector(sel)
		}
		return matchFragment(s), nil

	default:
		return nil, invalidSelector(sel)
	}
}

// MustCompile is like Compile but panics on an invalid selector.
func MustCompile(sel Selector) Predicate {
	p, err := Compile(sel)
	if err != nil {
		panic(err)
	}
	return p
}

// matchFragment matches a tag at the start of the node's selector, or a
// class/id fragment after it. The fragment must end at a fragment boundary.
func matchFragment(fragment string) Predicate {
	qualified := fragment[0] == '.' || fragment[0] == '#'

	return func(node *vdom.VNode) bool {
		if node == nil {
			return false
		}
		sel := node.Selector
		if !qualified {
			return strings.HasPrefix(sel, fragment) && atBoundary(sel, len(fragment))
		}
		for from := 1; from < len(sel); {
			i := strings.Index(sel[from:], fragment)
			if i < 0 {
				return false
			}
			i += from
			if atBoundary(sel, i+len(fragment)) {
				return true
			}
			from = i + 1
		}
		return false
	}
}

func atBoundary(sel string, end int) bool {
	return end == len(sel) || sel[end] == '.' || sel[end] == '#'
}

func invalidSelector(sel Selector) error {
	if sel == nil {
		return errors.New(errors.CodeInvalidSelector).WithDetail("nil")
	}
	return errors.New(errors.CodeInvalidSelector).WithDetailf("%T %s", sel, describeSelector(sel))
}

// describeSelector renders a selector for error details.
func describeSelector(sel Selector) string {
	if s, ok := sel.(string); ok {
		return strconv.Quote(s)
	}
	switch sel.(type) {
	case Predicate, func(*vdom.VNode) bool:
		return "<predicate>"
	}
	return fmt.Sprintf("%v", sel)
}
