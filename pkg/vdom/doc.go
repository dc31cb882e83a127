// Package vdom describes the virtual node trees that vquery inspects.
//
// A VNode is an immutable description of one element produced by a
// declarative renderer. Its identity is a selector string made of a tag
// followed by zero or more ".class" and "#id" fragments, for example
// "button.primary#save". Text nodes have an empty selector and carry their
// content in Text.
//
// # Building Trees
//
// Trees are usually produced by the application under test. For tests and
// fixtures, H builds nodes from variadic arguments:
//
//	H("ul.todo-list",
//	    H("li.todo", "Buy milk"),
//	    H("li.todo.done", Props{"onclick": toggle}, "Walk dog"),
//	)
//
// # Fixtures
//
// Decode and DecodeFile read a tree from YAML or JSON, which lets the vquery
// CLI inspect snapshots of rendered output:
//
//	selector: ul.todo-list
//	children:
//	  - selector: li.todo
//	    children: ["Buy milk"]
package vdom
