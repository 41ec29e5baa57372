// Package optimize implements the batch gradient descent trainer.
package optimize

import (
	"github.com/Neisser/machine-learning/core"
	"github.com/Neisser/machine-learning/dataset"
	"github.com/Neisser/machine-learning/metrics"
	"github.com/Neisser/machine-learning/pkg/errors"
	"github.com/Neisser/machine-learning/pkg/log"
)

// Config holds the gradient descent hyperparameters. It is a plain value:
// callers construct it once and the trainer never mutates it.
type Config struct {
	// Epochs is the number of optimization passes over the dataset.
	Epochs int

	// LearningRate is the step size scaling the gradient at each update.
	LearningRate float64
}

// Validate rejects configurations that cannot drive a training run.
func (c Config) Validate() error {
	if c.Epochs < 1 {
		return errors.NewValidationError("epochs", "must be at least 1", c.Epochs)
	}
	if !(c.LearningRate > 0) || !errors.IsFinite(c.LearningRate) {
		return errors.NewValidationError("learning_rate", "must be a positive finite number", c.LearningRate)
	}
	return nil
}

// Result reports the outcome of a training run.
type Result struct {
	// Weight and Bias are the final model parameters.
	Weight float64
	Bias   float64

	// LossHistory holds the mean squared error after each completed
	// epoch's update, one entry per epoch.
	LossHistory []float64

	// Epochs is the number of completed epochs.
	Epochs int
}

// FinalLoss returns the loss after the last completed epoch. A Result from
// a successful run always holds at least one entry; only a zero-value Result
// has an empty history, for which FinalLoss returns 0.
func (r *Result) FinalLoss() float64 {
	if len(r.LossHistory) == 0 {
		return 0
	}
	return r.LossHistory[len(r.LossHistory)-1]
}

// GradientDescent trains an affine model on the dataset by batch gradient
// descent, minimizing mean squared error.
//
// Each epoch sums the MSE gradient over every record and then applies a
// single simultaneous update to both parameters:
//
//	dw = (2/n)·Σ(r·x)   db = (2/n)·Σr   with r = ŷ − y
//	w ← w − lr·dw       b ← b − lr·db
//
// The factor 2 is the MSE gradient convention (d/dw of (ŷ−y)² is 2r·x).
// Because gradients are fully accumulated before the update, record order
// never affects the result; per-record (stochastic) updates would be a
// different algorithm and are deliberately not offered here.
//
// The run fails fast with a ValidationError on a bad config (before touching
// the model), with ErrEmptyData on an empty dataset, and with a
// NumericalInstabilityError when an update produces a non-finite parameter.
// On instability the parameters from the last completed epoch are left in
// the model.
//
// The trainer is synchronous and assumes exclusive mutable access to the
// model for the duration of the call; it takes no locks. The dataset is only
// read, so sharing it across concurrent runs on different models is safe.
func GradientDescent(ds *dataset.DataSet, m core.AffineModel, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ds == nil || ds.Len() == 0 {
		return nil, errors.NewModelError("GradientDescent", "empty data", errors.ErrEmptyData)
	}

	logger := log.With("optimize")
	logger.Debug().
		Int("epochs", cfg.Epochs).
		Float64("learning_rate", cfg.LearningRate).
		Int("records", ds.Len()).
		Msg("starting gradient descent")

	n := float64(ds.Len())
	history := make([]float64, 0, cfg.Epochs)
	preds := make([]float64, ds.Len())

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		var sumRX, sumR float64
		for i := range ds.X {
			r := m.Predict(ds.X[i]) - ds.Y[i]
			sumRX += r * ds.X[i]
			sumR += r
		}

		dw := 2 / n * sumRX
		db := 2 / n * sumR

		prevW, prevB := m.Coef()
		w := prevW - cfg.LearningRate*dw
		b := prevB - cfg.LearningRate*db
		m.SetCoef(w, b)

		if err := errors.CheckNumericalStability("gradient_update", []float64{w, b}, epoch); err != nil {
			m.SetCoef(prevW, prevB)
			return nil, err
		}

		for i := range ds.X {
			preds[i] = m.Predict(ds.X[i])
		}
		loss, err := metrics.MSE(ds.Y, preds)
		if err != nil {
			return nil, err
		}
		history = append(history, loss)

		logger.Trace().
			Int("epoch", epoch).
			Float64("loss", loss).
			Float64("weight", w).
			Float64("bias", b).
			Msg("epoch completed")
	}

	w, b := m.Coef()
	logger.Debug().
		Float64("weight", w).
		Float64("bias", b).
		Float64("final_loss", history[len(history)-1]).
		Msg("gradient descent finished")

	return &Result{
		Weight:      w,
		Bias:        b,
		LossHistory: history,
		Epochs:      cfg.Epochs,
	}, nil
}
