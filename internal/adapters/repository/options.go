// Package repository defines the dataset store interface and errors.
package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithMetrics enables or disables dataset gauge updates on build. Tests
// disable it to keep the global registry quiet.
func WithMetrics(enabled bool) Option {
	return func(s *MemStore) {
		s.metricsEnabled = enabled
	}
}
