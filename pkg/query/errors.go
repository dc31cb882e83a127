package query

import "github.com/vango-dev/vquery/internal/errors"

// Error is the structured error type returned by this package.
type Error = errors.Error

// Sentinel errors for use with errors.Is. Returned errors carry a detail
// naming the selector or handle that failed.
var (
	ErrInvalidSelector = errors.New(errors.CodeInvalidSelector)
	ErrNodeNotFound    = errors.New(errors.CodeNodeNotFound)
	ErrNotInitialized  = errors.New(errors.CodeNotInitialized)
)
