package source

import "errors"

// Sentinel kinds for loader errors.
var (
	// ErrFetch marks transport-level failures. It is logged and converted to
	// an empty dataset at the Load boundary, never returned to callers.
	ErrFetch = errors.New("dataset fetch failed")

	// ErrSchema marks a missing required column or an unparsable required
	// value. It propagates: schema drift must surface as a load failure.
	ErrSchema = errors.New("dataset schema invalid")
)
