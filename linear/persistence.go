package linear

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Neisser/machine-learning/pkg/errors"
	"github.com/Neisser/machine-learning/preprocessing"
)

const modelFormatVersion = "1.0"

// modelFile is the on-disk representation of a fitted model.
type modelFile struct {
	Name          string  `json:"name"`
	FormatVersion string  `json:"format_version"`
	Weight        float64 `json:"weight"`
	Bias          float64 `json:"bias"`

	Normalized bool    `json:"normalized"`
	XMean      float64 `json:"x_mean,omitempty"`
	XScale     float64 `json:"x_scale,omitempty"`
	YMean      float64 `json:"y_mean,omitempty"`
	YScale     float64 `json:"y_scale,omitempty"`
}

// SaveJSON writes the fitted model parameters to a JSON file.
func (lr *LinearRegression) SaveJSON(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return lr.ExportJSON(file)
}

// ExportJSON writes the fitted model parameters to a writer.
func (lr *LinearRegression) ExportJSON(w io.Writer) error {
	if !lr.IsFitted() {
		return errors.NewNotFittedError("LinearRegression", "ExportJSON")
	}

	mf := modelFile{
		Name:          "LinearRegression",
		FormatVersion: modelFormatVersion,
		Weight:        lr.weight,
		Bias:          lr.bias,
	}
	if lr.xScaler != nil {
		mf.Normalized = true
		mf.XMean, mf.XScale = lr.xScaler.Mean, lr.xScaler.Scale
		mf.YMean, mf.YScale = lr.yScaler.Mean, lr.yScaler.Scale
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&mf); err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}
	return nil
}

// LoadJSON reads fitted model parameters from a JSON file.
func (lr *LinearRegression) LoadJSON(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return lr.ImportJSON(file)
}

// ImportJSON reads fitted model parameters from a reader and marks the model
// as fitted.
func (lr *LinearRegression) ImportJSON(r io.Reader) error {
	var mf modelFile
	if err := json.NewDecoder(r).Decode(&mf); err != nil {
		return fmt.Errorf("failed to decode model: %w", err)
	}

	if mf.Name != "LinearRegression" {
		return errors.NewValueError("LinearRegression.ImportJSON",
			fmt.Sprintf("unexpected model name %q", mf.Name))
	}
	if mf.FormatVersion != modelFormatVersion {
		return errors.NewValueError("LinearRegression.ImportJSON",
			fmt.Sprintf("unsupported format version %q", mf.FormatVersion))
	}
	if err := errors.CheckNumericalStability("LinearRegression.ImportJSON",
		[]float64{mf.Weight, mf.Bias}, 0); err != nil {
		return err
	}

	lr.weight = mf.Weight
	lr.bias = mf.Bias
	lr.xScaler, lr.yScaler = nil, nil
	if mf.Normalized {
		lr.xScaler = restoreScaler(mf.XMean, mf.XScale)
		lr.yScaler = restoreScaler(mf.YMean, mf.YScale)
	}
	lr.lossHistory = nil
	lr.SetFitted()
	return nil
}

func restoreScaler(mean, scale float64) *preprocessing.StandardScaler {
	s := preprocessing.NewStandardScaler()
	s.Mean = mean
	s.Scale = scale
	s.SetFitted()
	return s
}
