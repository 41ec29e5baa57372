package stats

import (
	"math"
	"testing"
)

func TestDescribe(t *testing.T) {
	values := []float64{1.0, 2.0, 2.0, 3.0, 3.0, 3.0, 4.0}

	summary, err := Describe(values)
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}

	const tol = 1e-10
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"Mean", summary.Mean, 18.0 / 7.0},
		{"Median", summary.Median, 3.0},
		{"Mode", summary.Mode, 3.0},
		{"Min", summary.Min, 1.0},
		{"Max", summary.Max, 4.0},
		{"Sum", summary.Sum, 18.0},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > tol {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if summary.Count != 7 {
		t.Errorf("Count = %d, want 7", summary.Count)
	}
	if math.Abs(summary.StdDev-math.Sqrt(summary.Variance)) > tol {
		t.Errorf("StdDev %v must be the square root of Variance %v", summary.StdDev, summary.Variance)
	}
	if math.Abs(summary.StdErr-summary.StdDev/math.Sqrt(7)) > tol {
		t.Errorf("StdErr = %v, want StdDev/sqrt(n)", summary.StdErr)
	}
}

func TestDescribeEvenMedian(t *testing.T) {
	summary, err := Describe([]float64{4.0, 1.0, 3.0, 2.0})
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if summary.Median != 2.5 {
		t.Errorf("Median = %v, want 2.5", summary.Median)
	}
}

func TestDescribeSingleValue(t *testing.T) {
	summary, err := Describe([]float64{42.0})
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if summary.Variance != 0 {
		t.Errorf("Variance = %v, want 0 for a single value", summary.Variance)
	}
	if summary.Median != 42.0 || summary.Mode != 42.0 {
		t.Errorf("Median/Mode = %v/%v, want 42/42", summary.Median, summary.Mode)
	}
}

func TestDescribeDoesNotMutateInput(t *testing.T) {
	values := []float64{3.0, 1.0, 2.0}
	if _, err := Describe(values); err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if values[0] != 3.0 || values[1] != 1.0 || values[2] != 2.0 {
		t.Errorf("input was mutated: %v", values)
	}
}

func TestDescribeRejectsBadInput(t *testing.T) {
	if _, err := Describe(nil); err == nil {
		t.Error("empty input should be rejected")
	}
	if _, err := Describe([]float64{1, math.NaN()}); err == nil {
		t.Error("NaN input should be rejected")
	}
}
