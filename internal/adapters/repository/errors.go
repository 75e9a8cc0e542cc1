// Package repository defines the dataset store interface and errors.
package repository

import "errors"

// Sentinel kinds for dataset store errors.
var (
	ErrEmptyDataset = errors.New("dataset is empty")
)
