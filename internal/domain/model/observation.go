// Package model contains domain records passed between layers.
package model

import "strconv"

// Observation is one row of the emissions dataset: a single entity's
// measurements for a single year. (Entity, Year) is unique within a dataset;
// the loader drops later duplicates.
type Observation struct {
	Entity       string   `json:"entity"`                   // country or aggregate name, e.g. "Germany", "World"
	Year         int      `json:"year"`                     // calendar year
	CO2          float64  `json:"co2"`                      // annual CO2 emissions, million tonnes; missing values coerced to 0 at load
	CO2PerCapita *float64 `json:"co2_per_capita,omitempty"` // tonnes per person; nil when the source column is blank
	Population   *int64   `json:"population,omitempty"`     // nil when the source column is blank
}

// Key returns the uniqueness key for the observation within a dataset.
func (o Observation) Key() string {
	return o.Entity + "\x00" + strconv.Itoa(o.Year)
}
