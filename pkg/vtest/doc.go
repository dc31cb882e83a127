// Package vtest provides test assertions over vquery handles.
//
// The helpers resolve a handle and report a failure on the supplied
// testing.TB instead of returning an error, which keeps component tests
// short:
//
//	func TestTodoList(t *testing.T) {
//	    p := query.NewProjector(app.Render)
//	    vtest.ExpectCount(t, p.QueryAll("li.todo"), 2)
//	    vtest.ExpectText(t, p.Query("h1"), "Todos")
//
//	    vtest.Simulate(t, p.Query("button.clear")).MouseDown(nil)
//	    vtest.ExpectCount(t, p.QueryAll("li.todo"), 0)
//	}
//
// # Simulating Events
//
// Simulate wraps a handle's Simulator. Each method fails the test
// immediately when the node cannot be resolved or has no handler wired, since
// that usually means the test targets the wrong node:
//
//	e := vtest.Simulate(t, p.Query("input#search")).KeyDown(13, nil)
//	if !e.DefaultPrevented() {
//	    t.Error("enter should be handled")
//	}
package vtest
