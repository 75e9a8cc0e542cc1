package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest  = errors.New("bad request")
	ErrUnavailable = errors.New("service unavailable")
)

// NewKind annotates a sentinel kind with the failing operation or detail.
func NewKind(detail string, kind error) error {
	return fmt.Errorf("%s: %w", detail, kind)
}

// Wrap annotates an arbitrary upstream error with the failing operation.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
