package query

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/vquery/pkg/simulate"
	"github.com/vango-dev/vquery/pkg/vdom"
)

type counter struct {
	count int
}

func (c *counter) Render() *vdom.VNode {
	return vdom.H("div.counter",
		vdom.H("span.count", vdom.Textf("%d", c.count)),
		vdom.H("button.inc", vdom.OnMouseDown(func() { c.count++ })),
	)
}

func TestProjectorReflectsRerender(t *testing.T) {
	c := &counter{}
	p := NewProjector(c.Render)
	count := p.Query(".count")

	if text, _ := count.TextContent(); text != "0" {
		t.Fatalf("initial count = %q", text)
	}
	for i := 0; i < 2; i++ {
		if _, err := p.Query(".inc").Simulate().MouseDown(nil); err != nil {
			t.Fatal(err)
		}
	}
	if text, _ := count.TextContent(); text != "2" {
		t.Errorf("count after clicks = %q, want 2", text)
	}
}

func TestProjectorRebind(t *testing.T) {
	p := NewProjector(func() *vdom.VNode {
		return vdom.H("div", vdom.H("h1.title", "Old"))
	})
	title := p.Query(".title")
	items := p.QueryAll("li")

	if text, _ := title.TextContent(); text != "Old" {
		t.Fatalf("title = %q", text)
	}

	p.Initialize(func() *vdom.VNode {
		return vdom.H("div", vdom.H("h1.title", "New"), vdom.H("ul", vdom.H("li"), vdom.H("li")))
	})
	if text, _ := title.TextContent(); text != "New" {
		t.Errorf("title after rebind = %q, want New", text)
	}
	if n, _ := items.Len(); n != 2 {
		t.Errorf("items after rebind = %d, want 2", n)
	}
}

func TestProjectorNotInitialized(t *testing.T) {
	p := NewProjector(nil)
	h := p.Query(".anything")

	if p.Initialized() {
		t.Error("Initialized() should be false")
	}
	if h.Exists() {
		t.Error("Exists() should be false and not fail")
	}
	if _, err := h.Execute(); !stderrors.Is(err, ErrNotInitialized) {
		t.Errorf("Execute() error = %v, want ErrNotInitialized", err)
	}
	if _, err := p.QueryAll("li").Len(); !stderrors.Is(err, ErrNotInitialized) {
		t.Errorf("Len() error = %v, want ErrNotInitialized", err)
	}

	p.Mount(vdom.Func(func() *vdom.VNode { return vdom.H("div", vdom.H("p.anything")) }))
	if !h.Exists() {
		t.Error("handle created before Mount should resolve afterwards")
	}
}

func TestProjectorUninitialize(t *testing.T) {
	p := NewProjector(func() *vdom.VNode {
		return vdom.H("div", vdom.H("p.msg", "hello"))
	})
	resolved := p.Query(".msg")
	pending := p.Query(".msg")

	node, err := resolved.Execute()
	if err != nil {
		t.Fatal(err)
	}

	p.Uninitialize()

	if node.Selector != "p.msg" || TextContent(node) != "hello" {
		t.Error("values resolved before Uninitialize should be unaffected")
	}
	if _, err := pending.Execute(); !stderrors.Is(err, ErrNotInitialized) {
		t.Errorf("pending Execute() error = %v, want ErrNotInitialized", err)
	}
	if _, err := resolved.TextContent(); !stderrors.Is(err, ErrNotInitialized) {
		t.Errorf("re-resolving after Uninitialize error = %v, want ErrNotInitialized", err)
	}
	if _, err := pending.Simulate().Blur(nil); !stderrors.Is(err, ErrNotInitialized) {
		t.Errorf("Simulate().Blur() error = %v, want ErrNotInitialized", err)
	}
}

func TestProjectorRoot(t *testing.T) {
	p := NewProjector(func() *vdom.VNode { return vdom.H("main#app") })
	if sel, err := p.Root().VNodeSelector(); err != nil || sel != "main#app" {
		t.Errorf("Root().VNodeSelector() = %q, %v", sel, err)
	}

	empty := NewProjector(func() *vdom.VNode { return nil })
	if _, err := empty.Root().Execute(); !stderrors.Is(err, ErrNodeNotFound) {
		t.Errorf("nil render Execute() error = %v, want ErrNodeNotFound", err)
	}
}

func TestProjectorTryQuery(t *testing.T) {
	p := NewProjector(nil)
	if _, err := p.TryQuery(1); !stderrors.Is(err, ErrInvalidSelector) {
		t.Errorf("TryQuery() error = %v", err)
	}
	if _, err := p.TryQueryAll(""); !stderrors.Is(err, ErrInvalidSelector) {
		t.Errorf("TryQueryAll() error = %v", err)
	}
}

func TestProjectorLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := NewProjector(nil, WithLogger(logger))
	p.Initialize(func() *vdom.VNode { return vdom.H("div") })
	p.Uninitialize()

	out := buf.String()
	if !strings.Contains(out, "projector initialized") || !strings.Contains(out, "projector uninitialized") {
		t.Errorf("log output = %q", out)
	}
}

func TestProjectorKeyPressDrivesControlledInput(t *testing.T) {
	value := ""
	render := func() *vdom.VNode {
		return vdom.H("form",
			vdom.H("input#name",
				vdom.Value(value),
				vdom.OnInput(func(e *simulate.Event) {
					value = e.Target.(simulate.ValueTarget).Value()
				}),
			),
		)
	}
	p := NewProjector(render)
	input := p.Query("#name")

	if _, err := input.Simulate().KeyPress(65, "", "A", nil); err != nil {
		t.Fatal(err)
	}
	props, err := input.Properties()
	if err != nil {
		t.Fatal(err)
	}
	if props["value"] != "A" {
		t.Errorf("value after KeyPress = %v, want A", props["value"])
	}
}
