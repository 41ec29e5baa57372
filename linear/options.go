package linear

// Option is a function that configures LinearRegression.
type Option func(*LinearRegression)

// WithEpochs sets the number of gradient descent passes over the dataset.
func WithEpochs(epochs int) Option {
	return func(lr *LinearRegression) {
		lr.epochs = epochs
	}
}

// WithLearningRate sets the gradient descent step size.
func WithLearningRate(rate float64) Option {
	return func(lr *LinearRegression) {
		lr.learningRate = rate
	}
}

// WithNormalize standardizes the dataset before training. The fitted
// scalers are kept on the model so Predict accepts and returns values in
// the original units.
func WithNormalize(normalize bool) Option {
	return func(lr *LinearRegression) {
		lr.normalize = normalize
	}
}
