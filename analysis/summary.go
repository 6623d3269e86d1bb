// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/regulon/grid"
)

// Summary describes the value distribution of one scalar field.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	P05    float64
	Median float64
	P95    float64
	Max    float64
}

// Summarize computes the distribution summary of f. Percentiles use the
// nearest-rank definition, so they are always sample values.
func Summarize(f *grid.Field) (Summary, error) {
	if f == nil {
		return Summary{}, fmt.Errorf("Summarize: %w", ErrNilInput)
	}
	data := stats.Float64Data(f.Data())

	var (
		s   Summary
		err error
	)
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, fmt.Errorf("Summarize: mean: %w", err)
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Summary{}, fmt.Errorf("Summarize: std: %w", err)
	}
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, fmt.Errorf("Summarize: min: %w", err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, fmt.Errorf("Summarize: max: %w", err)
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, fmt.Errorf("Summarize: median: %w", err)
	}
	if s.P05, err = stats.PercentileNearestRank(data, 5); err != nil {
		return Summary{}, fmt.Errorf("Summarize: p05: %w", err)
	}
	if s.P95, err = stats.PercentileNearestRank(data, 95); err != nil {
		return Summary{}, fmt.Errorf("Summarize: p95: %w", err)
	}

	return s, nil
}
