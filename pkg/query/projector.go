package query

import (
	"log/slog"

	"github.com/vango-dev/vquery/internal/errors"
	"github.com/vango-dev/vquery/pkg/vdom"
)

// Projector holds the function that renders the current tree and serves as
// the root for queries. It is not safe for concurrent use.
type Projector struct {
	render func() *vdom.VNode
	logger *slog.Logger
	root   *Handle
}

// ProjectorOption configures a Projector.
type ProjectorOption func(*Projector)

// WithLogger sets the logger used for lifecycle messages.
// If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) ProjectorOption {
	return func(p *Projector) {
		p.logger = logger
	}
}

// NewProjector creates a Projector. render may be nil, in which case the
// projector must be initialized before any handle rooted at it is resolved.
func NewProjector(render func() *vdom.VNode, opts ...ProjectorOption) *Projector {
	p := &Projector{render: render}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	p.root = newHandle("root", p.resolveRoot)
	return p
}

// Initialize sets or replaces the render function. Handles already returned
// by the projector resolve against the new function from now on.
func (p *Projector) Initialize(render func() *vdom.VNode) {
	rebind := p.render != nil
	p.render = render
	p.logger.Debug("projector initialized", "rebind", rebind, "set", render != nil)
}

// Mount initializes the projector with a component's Render method.
func (p *Projector) Mount(c vdom.Component) {
	p.Initialize(c.Render)
}

// Uninitialize clears the render function. Handles resolved afterwards fail
// with ErrNotInitialized; values already returned are unaffected.
func (p *Projector) Uninitialize() {
	p.render = nil
	p.logger.Debug("projector uninitialized")
}

// Initialized reports whether a render function is set.
func (p *Projector) Initialized() bool {
	return p.render != nil
}

// Root returns the handle for the rendered tree itself.
func (p *Projector) Root() *Handle {
	return p.root
}

// Query returns a handle to the first node below the root matching sel.
// It panics if sel is invalid.
func (p *Projector) Query(sel Selector) *Handle {
	return p.root.Query(sel)
}

// QueryAll returns a collection of the nodes below the root matching sel.
// It panics if sel is invalid.
func (p *Projector) QueryAll(sel Selector) *Collection {
	return p.root.QueryAll(sel)
}

// TryQuery is like Query but returns an invalid selector as an error.
func (p *Projector) TryQuery(sel Selector) (*Handle, error) {
	return p.root.TryQuery(sel)
}

// TryQueryAll is like QueryAll but returns an invalid selector as an error.
func (p *Projector) TryQueryAll(sel Selector) (*Collection, error) {
	return p.root.TryQueryAll(sel)
}

func (p *Projector) resolveRoot() (*vdom.VNode, error) {
	if p.render == nil {
		return nil, errors.New(errors.CodeNotInitialized)
	}
	return p.render(), nil
}
