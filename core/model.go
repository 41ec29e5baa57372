// Package core defines the capability interfaces shared by all models and
// the embeddable estimator state.
package core

import "github.com/Neisser/machine-learning/dataset"

// Model is the basic capability of any trained or trainable predictor.
type Model interface {
	// Predict returns the model output for a single input. It is a pure
	// function of the current parameters and the input: it never mutates
	// state and has no error conditions.
	Predict(x float64) float64
}

// AffineModel is a model whose parameters are a (weight, bias) pair updated
// by a gradient-based trainer. Only the trainer may call SetCoef during a
// training run.
type AffineModel interface {
	Model

	// Coef returns the current (weight, bias) pair.
	Coef() (weight, bias float64)

	// SetCoef replaces both parameters at once.
	SetCoef(weight, bias float64)
}

// Fitter is a model that can learn from a dataset.
type Fitter interface {
	// Fit trains the model on the given dataset.
	Fit(ds *dataset.DataSet) error
}

// EstimatorState represents the fitted state of a model.
type EstimatorState int

const (
	// NotFitted means the model has not been trained yet.
	NotFitted EstimatorState = iota
	// Fitted means the model has been trained.
	Fitted
)

// BaseEstimator is the embeddable base of every model.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted returns whether the model has been trained.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the model as trained.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the model to its initial, untrained state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
