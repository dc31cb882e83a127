package simulate

import "github.com/vango-dev/vquery/internal/errors"

// ErrMissingHandler is returned when a node has no callable handler for the
// simulated event. Use errors.Is to test for it.
var ErrMissingHandler = errors.New(errors.CodeMissingHandler)
