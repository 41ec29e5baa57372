package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Neisser/machine-learning/dataset"
	"github.com/Neisser/machine-learning/stats"
)

var statsData string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print descriptive statistics of a CSV dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.FromCSVFile(statsData)
		if err != nil {
			return err
		}

		for _, col := range []struct {
			name   string
			values []float64
		}{
			{"feature (x)", ds.X},
			{"target (y)", ds.Y},
		} {
			summary, err := stats.Describe(col.values)
			if err != nil {
				return err
			}
			fmt.Printf("%s:\n", col.name)
			fmt.Printf("  count:    %d\n", summary.Count)
			fmt.Printf("  mean:     %.6f\n", summary.Mean)
			fmt.Printf("  std dev:  %.6f\n", summary.StdDev)
			fmt.Printf("  std err:  %.6f\n", summary.StdErr)
			fmt.Printf("  median:   %.6f\n", summary.Median)
			fmt.Printf("  mode:     %.6f\n", summary.Mode)
			fmt.Printf("  min:      %.6f\n", summary.Min)
			fmt.Printf("  max:      %.6f\n", summary.Max)
			fmt.Printf("  sum:      %.6f\n", summary.Sum)
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsData, "data", "", "path to the CSV data (required)")
	_ = statsCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(statsCmd)
}
