package summary

import "errors"

// Sentinel kinds for summary errors.
var (
	// ErrNoData signals an empty slice: there is nothing to summarize and the
	// caller must show a placeholder, not zeros.
	ErrNoData = errors.New("no data in selection")
)
