// Package metrics provides regression evaluation metrics.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/Neisser/machine-learning/pkg/errors"
)

// MSE computes the mean squared error between true and predicted values.
func MSE(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty input")
	}
	if len(yPred) != n {
		return 0, errors.Wrapf(errors.ErrLengthMismatch,
			"MSE: yTrue has %d values, yPred has %d", n, len(yPred))
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// RMSE computes the root mean squared error between true and predicted values.
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error between true and predicted values.
func MAE(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("MAE", "empty input")
	}
	if len(yPred) != n {
		return 0, errors.Wrapf(errors.ErrLengthMismatch,
			"MAE: yTrue has %d values, yPred has %d", n, len(yPred))
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue[i] - yPred[i])
	}

	return sum / float64(n), nil
}

// R2 computes the coefficient of determination.
// R² = 1 - RSS/TSS. When the targets are constant TSS is zero and R² is
// undefined; an error is returned instead of a silent default.
func R2(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("R2", "empty input")
	}
	if len(yPred) != n {
		return 0, errors.Wrapf(errors.ErrLengthMismatch,
			"R2: yTrue has %d values, yPred has %d", n, len(yPred))
	}

	yMean := stat.Mean(yTrue, nil)

	var tss, rss float64
	for i := 0; i < n; i++ {
		tss += (yTrue[i] - yMean) * (yTrue[i] - yMean)
		rss += (yTrue[i] - yPred[i]) * (yTrue[i] - yPred[i])
	}

	if tss == 0 {
		return 0, errors.NewValueError("R2", "total sum of squares is zero")
	}

	return 1 - rss/tss, nil
}
