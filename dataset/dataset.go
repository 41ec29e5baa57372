// Package dataset provides the in-memory training dataset and its CSV
// ingestion boundary.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/Neisser/machine-learning/pkg/errors"
)

// DataSet is an ordered collection of (x, y) pairs used for training. X holds
// the feature values and Y the corresponding targets; both always have the
// same length. A DataSet is meant to be immutable after construction: the
// trainer only reads it, and concurrent readers are safe as long as nobody
// writes.
type DataSet struct {
	X []float64
	Y []float64
}

// New returns a DataSet from the given feature and target slices. The slices
// are copied, must be non-empty and of equal length, and every value must be
// a finite real number.
func New(x, y []float64) (*DataSet, error) {
	if len(x) == 0 {
		return nil, errors.NewModelError("dataset.New", "empty data", errors.ErrEmptyData)
	}
	if len(x) != len(y) {
		return nil, errors.Wrapf(errors.ErrLengthMismatch,
			"dataset.New: x has %d records, y has %d", len(x), len(y))
	}
	for i := range x {
		if !errors.IsFinite(x[i]) || !errors.IsFinite(y[i]) {
			return nil, errors.NewValueError("dataset.New",
				"records must contain finite values only, found NaN or Inf at record "+strconv.Itoa(i))
		}
	}

	xs := make([]float64, len(x))
	ys := make([]float64, len(y))
	copy(xs, x)
	copy(ys, y)
	return &DataSet{X: xs, Y: ys}, nil
}

// Len returns the number of records.
func (ds *DataSet) Len() int {
	return len(ds.X)
}

// FromCSVFile reads a two-column CSV file into a DataSet. See FromCSV for
// the expected layout.
func FromCSVFile(path string) (*DataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: failed to open %s", path)
	}
	defer f.Close()

	ds, err := fromCSV(f, path)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// FromCSV reads two-column CSV data into a DataSet. Each row is `y,x` with
// the target first, the layout the project has always used for its training
// files. A single leading header row is tolerated. Any malformed row (wrong
// column count, non-numeric field, non-finite value) fails with a
// DatasetParseError naming the offending line; rows are never silently
// skipped.
func FromCSV(r io.Reader) (*DataSet, error) {
	return fromCSV(r, "")
}

func fromCSV(r io.Reader, path string) (*DataSet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // column count is checked per row for a precise error
	cr.TrimLeadingSpace = true

	var xs, ys []float64
	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 1
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				line = perr.Line
			}
			return nil, errors.NewDatasetParseError(path, line, "malformed CSV row", err)
		}

		line, _ := cr.FieldPos(0)

		if len(record) != 2 {
			return nil, errors.NewDatasetParseError(path, line,
				"expected exactly 2 columns (target,feature), got "+strconv.Itoa(len(record)), nil)
		}

		y, yerr := strconv.ParseFloat(record[0], 64)
		x, xerr := strconv.ParseFloat(record[1], 64)

		// A non-numeric first row is taken as a header.
		if first && yerr != nil && xerr != nil {
			first = false
			continue
		}
		first = false

		if yerr != nil {
			return nil, errors.NewDatasetParseError(path, line, "non-numeric target value '"+record[0]+"'", yerr)
		}
		if xerr != nil {
			return nil, errors.NewDatasetParseError(path, line, "non-numeric feature value '"+record[1]+"'", xerr)
		}
		if !errors.IsFinite(x) || !errors.IsFinite(y) {
			return nil, errors.NewDatasetParseError(path, line, "non-finite value", nil)
		}

		ys = append(ys, y)
		xs = append(xs, x)
	}

	if len(xs) == 0 {
		return nil, errors.NewModelError("dataset.FromCSV", "empty data", errors.ErrEmptyData)
	}

	return &DataSet{X: xs, Y: ys}, nil
}
