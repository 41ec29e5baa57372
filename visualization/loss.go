// Package visualization renders training diagnostics.
package visualization

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Neisser/machine-learning/pkg/errors"
)

// SaveLossCurve renders the per-epoch loss history as a line chart and
// writes it to path. The image format follows the file extension (png, svg,
// pdf, ...).
func SaveLossCurve(history []float64, path string) error {
	if len(history) == 0 {
		return errors.NewValueError("SaveLossCurve", "empty loss history")
	}

	pts := make(plotter.XYs, len(history))
	for i, loss := range history {
		pts[i].X = float64(i + 1)
		pts[i].Y = loss
	}

	p := plot.New()
	p.Title.Text = "Training loss"
	p.X.Label.Text = "epoch"
	p.Y.Label.Text = "MSE"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "failed to build loss line")
	}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "failed to save loss curve to %s", path)
	}
	return nil
}
