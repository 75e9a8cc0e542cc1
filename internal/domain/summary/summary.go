// Package summary computes the scalar statistics shown above the charts.
package summary

import (
	"github.com/carbonlens/carbonlens/internal/domain/model"
	"github.com/carbonlens/carbonlens/internal/domain/types"
)

const percent = 100.0

// Summarize reduces a year-ascending time series slice to its summary
// statistics. An empty slice returns ErrNoData so callers render an explicit
// placeholder instead of a misleading zero bundle.
//
// Peak ties resolve to the earliest year. The change metric is only present
// for slices with at least two rows; a zero starting value yields a 0% change
// rather than a division error, matching the upstream dashboard.
func Summarize(slice []model.Observation) (types.Summary, error) {
	if len(slice) == 0 {
		return types.Summary{}, ErrNoData
	}

	var total float64
	peak := slice[0]
	for _, obs := range slice {
		total += obs.CO2
		if obs.CO2 > peak.CO2 {
			peak = obs
		}
	}

	s := types.Summary{
		Total:     total,
		Mean:      total / float64(len(slice)),
		PeakYear:  peak.Year,
		PeakValue: peak.CO2,
	}

	if len(slice) >= 2 {
		first := slice[0].CO2
		last := slice[len(slice)-1].CO2
		change := 0.0
		if first != 0 {
			change = (last - first) / first * percent
		}
		s.ChangePercent = &change
	}

	return s, nil
}
