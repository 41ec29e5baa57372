// Package mlearn provides a small machine learning toolkit for Go, centered
// on training a single-variable linear regression model by batch gradient
// descent.
//
// # Packages
//
// - dataset: in-memory (x, y) datasets and CSV ingestion
// - linear: the LinearRegression model
// - optimize: the batch gradient descent trainer
// - preprocessing: standardization applied before training
// - metrics: regression metrics (MSE, RMSE, MAE, R²)
// - stats: descriptive statistics of a series
// - visualization: loss-curve rendering
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/Neisser/machine-learning/dataset"
//	    "github.com/Neisser/machine-learning/linear"
//	)
//
//	func main() {
//	    ds, err := dataset.New(
//	        []float64{0, 1, 2, 3},
//	        []float64{0, 2, 4, 6},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    model := linear.NewLinearRegression(
//	        linear.WithEpochs(1000),
//	        linear.WithLearningRate(0.01),
//	    )
//	    if err := model.Fit(ds); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(model.Predict(5)) // ≈ 10
//	}
package mlearn
