package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Neisser/machine-learning/dataset"
	"github.com/Neisser/machine-learning/linear"
	"github.com/Neisser/machine-learning/pkg/log"
	"github.com/Neisser/machine-learning/visualization"
)

var (
	trainData         string
	trainEpochs       int
	trainLearningRate float64
	trainNormalize    bool
	trainPredict      []float64
	trainPlot         string
	trainModelOut     string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a linear regression model on a CSV dataset",
	Long: `Train fits y = w*x + b on a two-column CSV file (target,feature per row)
by batch gradient descent and prints the learned parameters and final loss.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.With("train")

		ds, err := dataset.FromCSVFile(trainData)
		if err != nil {
			return err
		}
		logger.Info().Int("records", ds.Len()).Str("data", trainData).Msg("dataset loaded")

		model := linear.NewLinearRegression(
			linear.WithEpochs(trainEpochs),
			linear.WithLearningRate(trainLearningRate),
			linear.WithNormalize(trainNormalize),
		)
		if err := model.Fit(ds); err != nil {
			return err
		}

		history := model.LossHistory()
		score, err := model.Score(ds)
		if err != nil {
			return err
		}
		logger.Info().
			Float64("weight", model.Weight()).
			Float64("intercept", model.Intercept()).
			Float64("final_loss", history[len(history)-1]).
			Float64("r2", score).
			Msg("training finished")

		fmt.Printf("weight:       %.6f\n", model.Weight())
		fmt.Printf("intercept:    %.6f\n", model.Intercept())
		fmt.Printf("final MSE:    %.6f\n", history[len(history)-1])
		fmt.Printf("R²:           %.6f\n", score)

		for _, x := range trainPredict {
			fmt.Printf("predict(%g) = %.6f\n", x, model.Predict(x))
		}

		if trainPlot != "" {
			if err := visualization.SaveLossCurve(history, trainPlot); err != nil {
				return err
			}
			logger.Info().Str("path", trainPlot).Msg("loss curve written")
		}

		if trainModelOut != "" {
			if err := model.SaveJSON(trainModelOut); err != nil {
				return err
			}
			logger.Info().Str("path", trainModelOut).Msg("model written")
		}

		return nil
	},
}

func init() {
	trainCmd.Flags().StringVar(&trainData, "data", "", "path to the CSV training data (required)")
	trainCmd.Flags().IntVar(&trainEpochs, "epochs", linear.DefaultEpochs, "number of optimization passes")
	trainCmd.Flags().Float64Var(&trainLearningRate, "learning-rate", linear.DefaultLearningRate, "gradient step size")
	trainCmd.Flags().BoolVar(&trainNormalize, "normalize", false, "standardize the dataset before training")
	trainCmd.Flags().Float64SliceVar(&trainPredict, "predict", nil, "input values to predict after training")
	trainCmd.Flags().StringVar(&trainPlot, "plot", "", "write the loss curve to this image file")
	trainCmd.Flags().StringVar(&trainModelOut, "model-out", "", "write the fitted model JSON to this file")
	_ = trainCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(trainCmd)
}
