// Package stats provides descriptive statistics over a numeric series.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Neisser/machine-learning/pkg/errors"
)

// Summary holds the descriptive statistics of a series.
type Summary struct {
	Mean     float64
	Variance float64 // unbiased sample variance
	StdDev   float64
	StdErr   float64
	Median   float64
	Mode     float64
	Min      float64
	Max      float64
	Sum      float64
	Count    int
}

// Describe computes the summary statistics of the given values. The input is
// not modified. Values must be non-empty and finite.
func Describe(values []float64) (*Summary, error) {
	if len(values) == 0 {
		return nil, errors.NewValueError("stats.Describe", "empty input")
	}
	if err := errors.CheckNumericalStability("stats.Describe", values, 0); err != nil {
		return nil, err
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, variance := stat.MeanVariance(values, nil)
	if len(values) == 1 {
		variance = 0 // sample variance is undefined for a single value
	}
	stdDev := math.Sqrt(variance)
	mode, _ := stat.Mode(sorted, nil)

	return &Summary{
		Mean:     mean,
		Variance: variance,
		StdDev:   stdDev,
		StdErr:   stat.StdErr(stdDev, float64(len(values))),
		Median:   median(sorted),
		Mode:     mode,
		Min:      floats.Min(sorted),
		Max:      floats.Max(sorted),
		Sum:      floats.Sum(values),
		Count:    len(values),
	}, nil
}

// median expects sorted input.
func median(sorted []float64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
