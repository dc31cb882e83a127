// Package errors provides structured, coded errors for vquery.
//
// Every failure the query layer can report has a registered code that maps
// to a category, a short message and a longer explanation:
//
//	Q001  InvalidSelector   selector is neither a string nor a predicate
//	Q002  NodeNotFound      a handle was resolved but nothing matched
//	Q003  NotInitialized    the projector has no render function
//	Q004  MissingHandler    a simulated event has no handler to call
//
// Errors compare by code, so a detailed error created at the point of
// failure still satisfies errors.Is against the bare registered value:
//
//	err := errors.New(errors.CodeNodeNotFound).WithDetail(`selector ".todo"`)
//	stderrors.Is(err, errors.New(errors.CodeNodeNotFound)) // true
//
// Format renders an error for terminal display and is used by the vquery CLI.
package errors
