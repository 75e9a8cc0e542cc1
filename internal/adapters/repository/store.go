// Package repository defines the dataset store interface and errors.
package repository

import (
	"context"

	"github.com/carbonlens/carbonlens/internal/domain/model"
	"github.com/carbonlens/carbonlens/internal/domain/types"
)

// Store provides read access to the loaded emissions dataset. The dataset is
// written once at startup and never mutated, so every method is safe for
// concurrent readers.
type Store interface {
	// All returns the full dataset as a read-only view. Callers must not
	// modify the returned slice.
	All(ctx context.Context) []model.Observation

	// Entities returns the distinct entity names in the dataset, sorted.
	Entities(ctx context.Context) []string

	// YearBounds returns the inclusive year span covered by the dataset.
	// ok is false when the dataset is empty.
	YearBounds(ctx context.Context) (span types.YearSpan, ok bool)

	// Len returns the number of observations held.
	Len(ctx context.Context) int
}
