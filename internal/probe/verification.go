package probe

import (
	"fmt"
	"math"

	"github.com/carbonlens/carbonlens/internal/domain/model"
	"github.com/carbonlens/carbonlens/internal/domain/types"
)

// floatTolerance absorbs JSON round-tripping noise in summary arithmetic.
const floatTolerance = 1e-6

// aggregateSet are entities that must never appear in the ranking snapshot.
var aggregateSet = map[string]struct{}{
	"World":                   {},
	"International Transport": {},
	"Oceania":                 {},
	"Asia":                    {},
	"Europe":                  {},
	"Africa":                  {},
}

// verifyTimeSeries checks ordering and interval bounds.
func verifyTimeSeries(slice []model.Observation, sel types.Selection) error {
	for i, obs := range slice {
		if obs.Year < sel.StartYear || obs.Year > sel.EndYear {
			return fmt.Errorf("timeseries row %d: year %d outside [%d, %d]", i, obs.Year, sel.StartYear, sel.EndYear)
		}
		if i > 0 && slice[i-1].Year > obs.Year {
			return fmt.Errorf("timeseries rows %d, %d: years %d, %d not ascending", i-1, i, slice[i-1].Year, obs.Year)
		}
	}
	return nil
}

// verifyRanking checks size, ordering, rank numbering and exclusions.
func verifyRanking(entries []types.RankedEntry, maxSize int) error {
	if len(entries) > maxSize {
		return fmt.Errorf("ranking has %d entries, limit is %d", len(entries), maxSize)
	}
	for i, entry := range entries {
		if entry.Rank != i+1 {
			return fmt.Errorf("ranking row %d: rank %d, want %d", i, entry.Rank, i+1)
		}
		if _, aggregate := aggregateSet[entry.Entity]; aggregate {
			return fmt.Errorf("ranking row %d: aggregate entity %q included", i, entry.Entity)
		}
		if i > 0 && entries[i-1].CO2 < entry.CO2 {
			return fmt.Errorf("ranking rows %d, %d: co2 %f, %f not descending", i-1, i, entries[i-1].CO2, entry.CO2)
		}
	}
	return nil
}

// verifySummary recomputes the summary from the slice and compares.
func verifySummary(slice []model.Observation, resp summaryResponse) error {
	if len(slice) == 0 {
		if resp.HasData {
			return fmt.Errorf("summary reports data for an empty slice")
		}
		return nil
	}
	if !resp.HasData || resp.Summary == nil {
		return fmt.Errorf("summary reports no data for %d rows", len(slice))
	}

	var total float64
	for _, obs := range slice {
		total += obs.CO2
	}
	s := resp.Summary
	if math.Abs(s.Total-total) > floatTolerance {
		return fmt.Errorf("summary total %f, recomputed %f", s.Total, total)
	}
	if math.Abs(s.Mean-total/float64(len(slice))) > floatTolerance {
		return fmt.Errorf("summary mean %f, recomputed %f", s.Mean, total/float64(len(slice)))
	}
	if len(slice) >= 2 && s.ChangePercent == nil {
		return fmt.Errorf("summary omits change percent for %d rows", len(slice))
	}
	if len(slice) < 2 && s.ChangePercent != nil {
		return fmt.Errorf("summary reports change percent for a single row")
	}
	return nil
}
