package vtest

import (
	"reflect"
	"testing"

	"github.com/vango-dev/vquery/pkg/query"
	"github.com/vango-dev/vquery/pkg/vdom"
)

// MustExecute resolves h or fails the test.
func MustExecute(t testing.TB, h *query.Handle) *vdom.VNode {
	t.Helper()
	node, err := h.Execute()
	if err != nil {
		t.Fatalf("resolve %s: %v", h.Path(), err)
	}
	return node
}

// ExpectExists asserts that h resolves to a node.
func ExpectExists(t testing.TB, h *query.Handle) {
	t.Helper()
	if !h.Exists() {
		t.Errorf("expected %s to exist", h.Path())
	}
}

// ExpectNotExists asserts that h does not resolve to a node.
func ExpectNotExists(t testing.TB, h *query.Handle) {
	t.Helper()
	if h.Exists() {
		t.Errorf("expected %s not to exist", h.Path())
	}
}

// ExpectText asserts the text content of h.
func ExpectText(t testing.TB, h *query.Handle, expected string) {
	t.Helper()
	text, err := h.TextContent()
	if err != nil {
		t.Errorf("text of %s: %v", h.Path(), err)
		return
	}
	if text != expected {
		t.Errorf("text of %s = %q, want %q", h.Path(), truncate(text, 200), expected)
	}
}

// ExpectSelector asserts the selector string of the node h resolves to.
func ExpectSelector(t testing.TB, h *query.Handle, expected string) {
	t.Helper()
	sel, err := h.VNodeSelector()
	if err != nil {
		t.Errorf("selector of %s: %v", h.Path(), err)
		return
	}
	if sel != expected {
		t.Errorf("selector of %s = %q, want %q", h.Path(), sel, expected)
	}
}

// ExpectProperty asserts a property value of the node h resolves to.
func ExpectProperty(t testing.TB, h *query.Handle, key string, expected any) {
	t.Helper()
	props, err := h.Properties()
	if err != nil {
		t.Errorf("properties of %s: %v", h.Path(), err)
		return
	}
	got, ok := props.Get(key)
	if !ok {
		t.Errorf("%s has no property %q", h.Path(), key)
		return
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("%s property %q = %v, want %v", h.Path(), key, got, expected)
	}
}

// ExpectCount asserts the number of nodes in c.
func ExpectCount(t testing.TB, c *query.Collection, expected int) {
	t.Helper()
	n, err := c.Len()
	if err != nil {
		t.Errorf("count of %s: %v", c.Path(), err)
		return
	}
	if n != expected {
		t.Errorf("count of %s = %d, want %d", c.Path(), n, expected)
	}
}

// ExpectTexts asserts the text content of every node in c, in order.
func ExpectTexts(t testing.TB, c *query.Collection, expected ...string) {
	t.Helper()
	texts, err := c.TextContents()
	if err != nil {
		t.Errorf("texts of %s: %v", c.Path(), err)
		return
	}
	if len(texts) != len(expected) {
		t.Errorf("texts of %s = %q, want %q", c.Path(), texts, expected)
		return
	}
	for i := range texts {
		if texts[i] != expected[i] {
			t.Errorf("texts of %s = %q, want %q", c.Path(), texts, expected)
			return
		}
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
