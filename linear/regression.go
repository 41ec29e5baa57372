// Package linear implements the single-variable linear regression model.
package linear

import (
	"fmt"

	"github.com/Neisser/machine-learning/core"
	"github.com/Neisser/machine-learning/dataset"
	"github.com/Neisser/machine-learning/metrics"
	"github.com/Neisser/machine-learning/optimize"
	"github.com/Neisser/machine-learning/pkg/errors"
	"github.com/Neisser/machine-learning/preprocessing"
)

// Default hyperparameters, overridable through options.
const (
	DefaultEpochs       = 100
	DefaultLearningRate = 0.01
)

// LinearRegression models y = w*x + b. Both parameters start at 0, a neutral
// starting point for gradient descent. The parameters are only written by
// the trainer during Fit; everything else reads them through Weight and
// Intercept.
type LinearRegression struct {
	core.BaseEstimator

	weight float64
	bias   float64

	epochs       int
	learningRate float64
	normalize    bool

	lossHistory []float64

	// Fitted scalers, present only when the model was trained with
	// WithNormalize. Predict then maps inputs into scaled space and
	// predictions back into original units.
	xScaler *preprocessing.StandardScaler
	yScaler *preprocessing.StandardScaler
}

var _ core.AffineModel = (*LinearRegression)(nil)
var _ core.Fitter = (*LinearRegression)(nil)

// NewLinearRegression creates a linear regression model with the given
// options applied over the defaults.
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{
		epochs:       DefaultEpochs,
		learningRate: DefaultLearningRate,
	}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Predict returns the model output for a single input. It is pure: repeated
// calls with the same input and unchanged parameters return the identical
// value, and no state is mutated. An unfitted model predicts with the
// neutral (0, 0) parameters.
func (lr *LinearRegression) Predict(x float64) float64 {
	if lr.xScaler != nil {
		return lr.yScaler.InverseValue(lr.weight*lr.xScaler.TransformValue(x) + lr.bias)
	}
	return lr.weight*x + lr.bias
}

// PredictBatch returns predictions for every input.
func (lr *LinearRegression) PredictBatch(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = lr.Predict(x)
	}
	return out
}

// Coef returns the current (weight, bias) pair.
func (lr *LinearRegression) Coef() (weight, bias float64) {
	return lr.weight, lr.bias
}

// SetCoef replaces both parameters at once. It exists for the trainer;
// callers outside a training run should not need it.
func (lr *LinearRegression) SetCoef(weight, bias float64) {
	lr.weight = weight
	lr.bias = bias
}

// Weight returns the learned slope.
func (lr *LinearRegression) Weight() float64 {
	return lr.weight
}

// Intercept returns the learned intercept.
func (lr *LinearRegression) Intercept() float64 {
	return lr.bias
}

// LossHistory returns the per-epoch mean squared error recorded by the last
// Fit, one entry per completed epoch.
func (lr *LinearRegression) LossHistory() []float64 {
	out := make([]float64, len(lr.lossHistory))
	copy(out, lr.lossHistory)
	return out
}

// Fit trains the model on the dataset by batch gradient descent. With
// WithNormalize, the dataset is standardized first as a separate
// preprocessing stage and the fitted scalers are kept so predictions stay in
// original units.
//
// Fit assumes exclusive access to the model until it returns.
func (lr *LinearRegression) Fit(ds *dataset.DataSet) error {
	cfg := optimize.Config{
		Epochs:       lr.epochs,
		LearningRate: lr.learningRate,
	}

	// A refit must start from the raw affine map: scalers and history from
	// a prior fit would otherwise route the trainer's predictions through
	// stale inverse transforms.
	lr.xScaler, lr.yScaler = nil, nil
	lr.lossHistory = nil
	lr.Reset()

	trainDS := ds
	var xScaler, yScaler *preprocessing.StandardScaler
	if lr.normalize {
		scaled, xs, ys, err := preprocessing.ScaleDataset(ds)
		if err != nil {
			return err
		}
		trainDS, xScaler, yScaler = scaled, xs, ys
	}

	result, err := optimize.GradientDescent(trainDS, lr, cfg)
	if err != nil {
		return err
	}

	lr.lossHistory = result.LossHistory
	lr.xScaler = xScaler
	lr.yScaler = yScaler
	lr.SetFitted()

	warnIfNotConverged(result)
	return nil
}

// Score returns the coefficient of determination R² on the given dataset.
func (lr *LinearRegression) Score(ds *dataset.DataSet) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}
	return metrics.R2(ds.Y, lr.PredictBatch(ds.X))
}

// warnIfNotConverged raises a ConvergenceWarning when the loss was still
// moving at the final epoch. Purely diagnostic; the result stands as is.
func warnIfNotConverged(result *optimize.Result) {
	const relTol = 1e-8

	h := result.LossHistory
	if len(h) < 2 {
		return
	}
	last, prev := h[len(h)-1], h[len(h)-2]
	scale := last
	if scale < 1 {
		scale = 1
	}
	if delta := prev - last; delta > relTol*scale || delta < 0 {
		errors.Warn(errors.NewConvergenceWarning(
			"GradientDescent",
			result.Epochs,
			fmt.Sprintf("loss still changing by %g at the last epoch", delta),
		))
	}
}
