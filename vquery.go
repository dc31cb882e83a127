// Package vquery locates nodes in a virtual-node tree and simulates
// interaction events against their handlers.
//
// This is the recommended import for most tests:
//
//	import "github.com/vango-dev/vquery"
//
// Usage:
//
//	p := vquery.NewProjector(app.Render)
//	input := p.Query("input.new-todo")
//	field := vquery.NewField("")
//	input.Simulate().KeyPress(13, "", "Buy milk", field)
//	n, _ := p.QueryAll("li").Len()
package vquery

import (
	"github.com/vango-dev/vquery/pkg/query"
	"github.com/vango-dev/vquery/pkg/simulate"
	"github.com/vango-dev/vquery/pkg/vdom"
)

// =============================================================================
// Virtual nodes (re-export from pkg/vdom)
// =============================================================================

// VNode is a virtual node.
type VNode = vdom.VNode

// Props holds attributes and event handlers.
type Props = vdom.Props

// Component is anything that renders a VNode tree.
type Component = vdom.Component

// H builds an element node from a selector and children or properties.
var H = vdom.H

// Text builds a text node.
var Text = vdom.Text

// =============================================================================
// Queries (re-export from pkg/query)
// =============================================================================

// Selector is a selector string or a predicate function.
type Selector = query.Selector

// Handle is a lazy reference to at most one node.
type Handle = query.Handle

// Collection is a lazy reference to all nodes matching a selector.
type Collection = query.Collection

// Projector is the root adapter that renders the tree being queried.
type Projector = query.Projector

// Query returns a handle to the first descendant of tree matching sel.
func Query(tree *VNode, sel Selector) *Handle {
	return query.Query(tree, sel)
}

// QueryAll returns a collection of the descendants of tree matching sel.
func QueryAll(tree *VNode, sel Selector) *Collection {
	return query.QueryAll(tree, sel)
}

// NewProjector creates a projector for render.
var NewProjector = query.NewProjector

// WithLogger sets the logger a Projector uses.
var WithLogger = query.WithLogger

// =============================================================================
// Events (re-export from pkg/simulate)
// =============================================================================

// Event is a synthetic interaction event.
type Event = simulate.Event

// Field is a mutable value target for key and input events.
type Field = simulate.Field

// NewField creates a Field holding value.
var NewField = simulate.NewField

// =============================================================================
// Errors
// =============================================================================

// Error is a coded query or simulation error.
type Error = query.Error

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidSelector = query.ErrInvalidSelector
	ErrNodeNotFound    = query.ErrNodeNotFound
	ErrNotInitialized  = query.ErrNotInitialized
	ErrMissingHandler  = simulate.ErrMissingHandler
)
