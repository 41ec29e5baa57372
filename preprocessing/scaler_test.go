package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neisser/machine-learning/dataset"
	"github.com/Neisser/machine-learning/pkg/errors"
)

func TestStandardScalerFitTransform(t *testing.T) {
	values := []float64{2, 4, 6, 8}

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(values)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, scaler.Mean, 1e-10)
	assert.InDelta(t, math.Sqrt(5.0), scaler.Scale, 1e-10) // population std dev

	// Scaled series has zero mean and unit variance.
	var sum, sumSq float64
	for _, v := range scaled {
		sum += v
		sumSq += v * v
	}
	n := float64(len(scaled))
	assert.InDelta(t, 0.0, sum/n, 1e-10)
	assert.InDelta(t, 1.0, sumSq/n, 1e-10)
}

func TestStandardScalerRoundTrip(t *testing.T) {
	values := []float64{1.5, -2.25, 7, 0.125}

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(values)
	require.NoError(t, err)

	restored, err := scaler.InverseTransform(scaled)
	require.NoError(t, err)

	for i := range values {
		assert.InDelta(t, values[i], restored[i], 1e-12)
	}
}

func TestStandardScalerConstantSeries(t *testing.T) {
	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform([]float64{3, 3, 3})
	require.NoError(t, err)

	// A constant series scales with Scale = 1, so values just shift to zero.
	assert.Equal(t, []float64{0, 0, 0}, scaled)
}

func TestStandardScalerNotFitted(t *testing.T) {
	scaler := NewStandardScaler()

	_, err := scaler.Transform([]float64{1, 2})
	require.Error(t, err)
	var notFitted *errors.NotFittedError
	assert.True(t, errors.As(err, &notFitted))

	_, err = scaler.InverseTransform([]float64{1, 2})
	require.Error(t, err)
}

func TestStandardScalerEmpty(t *testing.T) {
	scaler := NewStandardScaler()
	err := scaler.Fit(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestScaleDataset(t *testing.T) {
	ds, err := dataset.New([]float64{1, 2, 3}, []float64{10, 20, 30})
	require.NoError(t, err)

	scaled, xScaler, yScaler, err := ScaleDataset(ds)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, xScaler.Mean, 1e-10)
	assert.InDelta(t, 20.0, yScaler.Mean, 1e-10)

	// The input dataset is untouched.
	assert.Equal(t, []float64{1, 2, 3}, ds.X)
	assert.Equal(t, []float64{10, 20, 30}, ds.Y)

	// The scaled dataset centers both columns.
	assert.InDelta(t, 0.0, scaled.X[0]+scaled.X[1]+scaled.X[2], 1e-10)
	assert.InDelta(t, 0.0, scaled.Y[0]+scaled.Y[1]+scaled.Y[2], 1e-10)
}
