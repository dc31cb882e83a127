package query

import (
	"testing"

	"github.com/vango-dev/vquery/pkg/vdom"
)

// hereTree is div > [div.here, div > [div.here.too, div.and.here.too]].
func hereTree() *vdom.VNode {
	return vdom.H("div",
		vdom.H("div.here"),
		vdom.H("div",
			vdom.H("div.here.too"),
			vdom.H("div.and.here.too"),
		),
	)
}

func selectors(nodes []*vdom.VNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Selector
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFindAllPreOrder(t *testing.T) {
	got := selectors(FindAll(MustCompile(".here"), hereTree()))
	want := []string{"div.here", "div.here.too", "div.and.here.too"}
	if !equalStrings(got, want) {
		t.Errorf("FindAll(.here) = %v, want %v", got, want)
	}
}

func TestFindAllIncludesRoot(t *testing.T) {
	tree := hereTree()
	all := FindAll(MustCompile("div"), tree)
	if len(all) != 5 || all[0] != tree {
		t.Errorf("FindAll(div) = %v, want root first and 5 nodes", selectors(all))
	}
	desc := FindDescendants(MustCompile("div"), tree)
	if len(desc) != 4 || desc[0] == tree {
		t.Errorf("FindDescendants(div) = %v, want 4 nodes without root", selectors(desc))
	}
}

func TestFindAllStable(t *testing.T) {
	tree := hereTree()
	pred := MustCompile("div")
	first := FindAll(pred, tree)
	second := FindAll(pred, tree)
	if len(first) != len(second) {
		t.Fatal("repeated scans differ in length")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("result %d differs between scans", i)
		}
	}
}

func TestFindNil(t *testing.T) {
	pred := MustCompile("div")
	if FindAll(pred, nil) != nil || FindDescendants(pred, nil) != nil || Find(pred, nil) != nil {
		t.Error("nil root should produce no matches")
	}
	tree := &vdom.VNode{Selector: "ul", Children: []*vdom.VNode{nil, vdom.H("li")}}
	if got := FindAll(MustCompile("li"), tree); len(got) != 1 {
		t.Errorf("nil children should be skipped, got %v", selectors(got))
	}
}

func TestFindFirst(t *testing.T) {
	tree := hereTree()
	if got := Find(MustCompile(".too"), tree); got == nil || got.Selector != "div.here.too" {
		t.Errorf("Find(.too) = %v", got)
	}
	if got := Find(MustCompile("div"), tree); got != tree {
		t.Error("Find should consider the root")
	}
	if got := Find(MustCompile("span"), tree); got != nil {
		t.Errorf("Find(span) = %v, want nil", got)
	}
}

func TestTextContent(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{"nil", nil, ""},
		{"text node", vdom.Text("hi"), "hi"},
		{"empty element", vdom.H("div"), ""},
		{
			name: "nested document order",
			node: vdom.H("p", "a", vdom.H("b", "b", vdom.H("i", "c")), "d"),
			want: "abcd",
		},
		{
			name: "element text before children",
			node: &vdom.VNode{Selector: "li", Text: "x", Children: []*vdom.VNode{vdom.Text("y")}},
			want: "xy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextContent(tt.node); got != tt.want {
				t.Errorf("TextContent() = %q, want %q", got, tt.want)
			}
		})
	}
}
