package probe

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"
)

// Synthetic dataset shape.
const (
	generatorSeed    = 1
	syntheticMin     = 1950
	syntheticMax     = 2020
	countryCount     = 40
	co2BaseMax       = 900.0
	co2Drift         = 25.0
	filePermission   = 0o600
	populationBase   = 1_000_000
	populationSpread = 150_000_000
)

// syntheticAggregates mirror the aggregate rows the real dataset carries so
// the exclusion invariant can be exercised against the fixture.
var syntheticAggregates = []string{
	"World",
	"International Transport",
	"Oceania",
	"Asia",
	"Europe",
	"Africa",
}

// GenerateCSV produces a deterministic synthetic dataset with the same
// required columns as the real export. The seed is fixed so repeated runs
// produce identical fixtures.
func GenerateCSV() ([]byte, error) {
	rng := rand.New(rand.NewSource(generatorSeed))

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"country", "year", "co2", "co2_per_capita", "population"}); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	countries := make([]string, countryCount)
	for i := range countries {
		countries[i] = fmt.Sprintf("Country %02d", i+1)
	}

	for year := syntheticMin; year <= syntheticMax; year++ {
		var worldTotal float64
		for _, country := range countries {
			co2 := rng.Float64()*co2BaseMax + float64(year-syntheticMin)*co2Drift*rng.Float64()
			worldTotal += co2
			population := int64(populationBase + rng.Intn(populationSpread))
			perCapita := co2 * 1e6 / float64(population)
			if err := w.Write([]string{
				country,
				strconv.Itoa(year),
				strconv.FormatFloat(co2, 'f', 3, 64),
				strconv.FormatFloat(perCapita, 'f', 3, 64),
				strconv.FormatInt(population, 10),
			}); err != nil {
				return nil, fmt.Errorf("write row: %w", err)
			}
		}
		for i, agg := range syntheticAggregates {
			co2 := worldTotal
			if i > 0 {
				co2 = worldTotal * rng.Float64() / float64(len(syntheticAggregates))
			}
			// Aggregates carry blank optional columns, like the real export.
			if err := w.Write([]string{
				agg,
				strconv.Itoa(year),
				strconv.FormatFloat(co2, 'f', 3, 64),
				"",
				"",
			}); err != nil {
				return nil, fmt.Errorf("write aggregate row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFixture generates the synthetic dataset and writes it to path.
func WriteFixture(path string) error {
	data, err := GenerateCSV()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, filePermission)
}
