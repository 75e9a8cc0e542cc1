// Package types contains common types used across the application
package types

// Selection captures the user-chosen query parameters: which entity to plot
// and the inclusive year interval.
type Selection struct {
	Entity    string `json:"entity"`
	StartYear int    `json:"start_year"`
	EndYear   int    `json:"end_year"`
}

// RankedEntry is one row of the top-emitters snapshot for a fixed year.
type RankedEntry struct {
	Rank   int     `json:"rank"`
	Entity string  `json:"entity"`
	CO2    float64 `json:"co2"`
}

// Summary bundles the scalar statistics derived from a time series slice.
// ChangePercent is nil when the slice has fewer than two rows; the metric is
// omitted, not zero.
type Summary struct {
	Total         float64  `json:"total"`
	Mean          float64  `json:"mean"`
	PeakYear      int      `json:"peak_year"`
	PeakValue     float64  `json:"peak_value"`
	ChangePercent *float64 `json:"change_percent,omitempty"`
}

// YearSpan is the inclusive year range covered by the dataset.
type YearSpan struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether year falls inside the span.
func (s YearSpan) Contains(year int) bool {
	return year >= s.Min && year <= s.Max
}
