package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Neisser/machine-learning/pkg/log"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "mlearn",
	Short: "mlearn trains and inspects simple machine learning models",
	Long: `mlearn is a small machine learning toolkit. It trains a single-variable
linear regression model on a two-column CSV dataset by batch gradient
descent, and reports descriptive statistics of the data.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Setup(logLevel, os.Stderr)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
}
