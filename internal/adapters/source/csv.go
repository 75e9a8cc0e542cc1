package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carbonlens/carbonlens/internal/domain/dedupe"
	"github.com/carbonlens/carbonlens/internal/domain/model"
	"github.com/carbonlens/carbonlens/pkg/logger"
)

// Columns the core depends on; any other column is passed over untouched.
const (
	colCountry      = "country"
	colYear         = "year"
	colCO2          = "co2"
	colCO2PerCapita = "co2_per_capita"
	colPopulation   = "population"
)

// expectedRows pre-sizes the observation slice and dedupe set; the OWID
// export is ~50k rows.
const expectedRows = 50_000

// columnIndex maps the required column names to their positions in the header.
type columnIndex struct {
	country      int
	year         int
	co2          int
	co2PerCapita int
	population   int
}

// indexHeader locates the required columns. A missing required column is a
// schema error that must propagate, never a silent empty column.
func indexHeader(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}

	idx := columnIndex{}
	for _, req := range []struct {
		name string
		dst  *int
	}{
		{colCountry, &idx.country},
		{colYear, &idx.year},
		{colCO2, &idx.co2},
		{colCO2PerCapita, &idx.co2PerCapita},
		{colPopulation, &idx.population},
	} {
		i, ok := pos[req.name]
		if !ok {
			return columnIndex{}, fmt.Errorf("%w: missing column %q", ErrSchema, req.name)
		}
		*req.dst = i
	}
	return idx, nil
}

// parseCSV streams the dataset into observations, cleaning as it goes:
// year must parse as an integer, missing co2 becomes 0, optional columns
// become nil when blank, and duplicate (entity, year) rows are dropped
// keeping the first occurrence.
func parseCSV(ctx context.Context, r io.Reader) ([]model.Observation, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	// OWID rows are uniform, but guard against ragged lines anyway.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrSchema, err)
	}
	idx, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	deduper := dedupe.NewInMemoryDeduper(dedupe.WithExpectedSize(expectedRows))
	observations := make([]model.Observation, 0, expectedRows)
	duplicates := 0

	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSchema, line, err)
		}

		obs, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if deduper.SeenAndRecord(ctx, obs.Key()) {
			duplicates++
			continue
		}
		observations = append(observations, obs)
	}

	if duplicates > 0 {
		logger.Get().Warn(ctx, "dropped duplicate (entity, year) rows",
			logger.Int("duplicates", duplicates),
		)
	}
	return observations, nil
}

// parseRow converts one CSV record into an Observation.
func parseRow(row []string, idx columnIndex) (model.Observation, error) {
	last := idx.country
	for _, i := range []int{idx.year, idx.co2, idx.co2PerCapita, idx.population} {
		if i > last {
			last = i
		}
	}
	if len(row) <= last {
		return model.Observation{}, fmt.Errorf("%w: short row (%d fields)", ErrSchema, len(row))
	}

	year, err := strconv.Atoi(strings.TrimSpace(row[idx.year]))
	if err != nil {
		return model.Observation{}, fmt.Errorf("%w: parse year %q: %v", ErrSchema, row[idx.year], err)
	}

	obs := model.Observation{
		Entity: row[idx.country],
		Year:   year,
	}

	// Missing co2 is coerced to 0; a non-empty unparsable value is schema
	// drift and must surface.
	if raw := strings.TrimSpace(row[idx.co2]); raw != "" {
		co2, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.Observation{}, fmt.Errorf("%w: parse co2 %q: %v", ErrSchema, raw, err)
		}
		obs.CO2 = co2
	}

	// Optional columns stay nil when blank or malformed.
	if raw := strings.TrimSpace(row[idx.co2PerCapita]); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			obs.CO2PerCapita = &v
		}
	}
	if raw := strings.TrimSpace(row[idx.population]); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			p := int64(v)
			obs.Population = &p
		}
	}

	return obs, nil
}
