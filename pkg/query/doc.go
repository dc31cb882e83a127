// Package query locates nodes in a virtual node tree by selector.
//
// Queries are lazy. Query and QueryAll return handles that remember how to
// find their nodes, not the nodes themselves; every time a handle is used it
// searches the current tree again. A handle obtained before a re-render
// therefore sees the new tree without being re-created.
//
// # Selectors
//
// A selector is a string made of one fragment kind, or a predicate:
//
//	"button"      tag; must start the node's selector
//	".todo"       class; must follow the tag
//	"#main"       id; must follow the tag
//	func(n *vdom.VNode) bool { ... }
//
// A fragment only matches at a fragment boundary, so ".todo" does not match
// "li.todo-item" and "div" does not match "divider".
//
// # Searching
//
// Handle.Query and Handle.QueryAll search the descendants of the resolved
// node, never the node itself. FindAll scans a whole tree including its root.
// Results are in document order (pre-order, children left to right).
//
// # Projector
//
// A Projector wraps the function that renders the application's current
// tree. Tests query through the projector so results always reflect the
// latest render:
//
//	p := query.NewProjector(app.Render)
//	count := p.Query(".count")
//	app.Increment()
//	text, err := count.TextContent() // reflects the increment
//
// # Errors
//
// Resolution failures are reported when a handle is used: Execute and the
// derived accessors return ErrNodeNotFound or ErrNotInitialized. Exists never
// fails. An invalid selector is reported immediately: Compile returns
// ErrInvalidSelector, and Query and QueryAll panic with it.
package query
