// Package preprocessing provides data scaling stages applied before
// training. Scaling is always a separate step producing new data; the
// trainer itself never normalizes.
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/Neisser/machine-learning/core"
	"github.com/Neisser/machine-learning/dataset"
	"github.com/Neisser/machine-learning/pkg/errors"
)

// StandardScaler standardizes a series to zero mean and unit standard
// deviation (z-score).
type StandardScaler struct {
	core.BaseEstimator

	// Mean is the mean of the fitted series.
	Mean float64

	// Scale is the standard deviation of the fitted series. A constant
	// series fits with Scale = 1 so transforming it is a no-op shift.
	Scale float64

	// WithMean controls whether the mean is subtracted (default: true).
	WithMean bool

	// WithStd controls whether values are divided by the standard
	// deviation (default: true).
	WithStd bool
}

// NewStandardScaler creates a StandardScaler with both centering and scaling
// enabled.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{WithMean: true, WithStd: true}
}

// Fit computes the mean and standard deviation of the given series.
func (s *StandardScaler) Fit(values []float64) error {
	if len(values) == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}
	if err := errors.CheckNumericalStability("StandardScaler.Fit", values, 0); err != nil {
		return err
	}

	mean, variance := stat.PopMeanVariance(values, nil)
	s.Mean = mean
	s.Scale = math.Sqrt(variance)
	if s.Scale == 0 {
		s.Scale = 1
	}

	s.SetFitted()
	return nil
}

// Transform standardizes the given series using the fitted statistics.
func (s *StandardScaler) Transform(values []float64) ([]float64, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = s.TransformValue(v)
	}
	return out, nil
}

// FitTransform fits the scaler and transforms the series in one call.
func (s *StandardScaler) FitTransform(values []float64) ([]float64, error) {
	if err := s.Fit(values); err != nil {
		return nil, err
	}
	return s.Transform(values)
}

// InverseTransform maps standardized values back to the original units.
func (s *StandardScaler) InverseTransform(values []float64) ([]float64, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "InverseTransform")
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = s.InverseValue(v)
	}
	return out, nil
}

// TransformValue standardizes a single value using the fitted statistics.
// The caller must ensure the scaler is fitted.
func (s *StandardScaler) TransformValue(v float64) float64 {
	if s.WithMean {
		v -= s.Mean
	}
	if s.WithStd {
		v /= s.Scale
	}
	return v
}

// InverseValue maps a single standardized value back to the original units.
// The caller must ensure the scaler is fitted.
func (s *StandardScaler) InverseValue(v float64) float64 {
	if s.WithStd {
		v *= s.Scale
	}
	if s.WithMean {
		v += s.Mean
	}
	return v
}

// ScaleDataset standardizes both columns of a dataset, returning a new
// dataset together with the fitted feature and target scalers. The input
// dataset is not modified.
func ScaleDataset(ds *dataset.DataSet) (*dataset.DataSet, *StandardScaler, *StandardScaler, error) {
	xScaler := NewStandardScaler()
	yScaler := NewStandardScaler()

	xs, err := xScaler.FitTransform(ds.X)
	if err != nil {
		return nil, nil, nil, err
	}
	ys, err := yScaler.FitTransform(ds.Y)
	if err != nil {
		return nil, nil, nil, err
	}

	scaled, err := dataset.New(xs, ys)
	if err != nil {
		return nil, nil, nil, err
	}
	return scaled, xScaler, yScaler, nil
}
