package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Neisser/machine-learning/pkg/errors"
)

func TestSetupInstallsWarningSink(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", &buf)
	t.Cleanup(func() {
		errors.SetZerologWarnFunc(nil)
		Setup("info", bytes.NewBuffer(nil))
	})

	errors.Warn(errors.NewConvergenceWarning("GradientDescent", 5, "loss still changing"))

	out := buf.String()
	if !strings.Contains(out, `"type":"ConvergenceWarning"`) {
		t.Errorf("warning was not marshaled as a structured object: %s", out)
	}
	if !strings.Contains(out, `"algorithm":"GradientDescent"`) {
		t.Errorf("warning fields missing from event: %s", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("warning should log at warn level: %s", out)
	}
}

func TestSetupPlainErrorWarning(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", &buf)
	t.Cleanup(func() {
		errors.SetZerologWarnFunc(nil)
		Setup("info", bytes.NewBuffer(nil))
	})

	errors.Warn(errors.New("plain warning"))

	if !strings.Contains(buf.String(), "plain warning") {
		t.Errorf("plain errors should still be logged: %s", buf.String())
	}
}

func TestWithAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", &buf)
	t.Cleanup(func() {
		errors.SetZerologWarnFunc(nil)
		Setup("info", bytes.NewBuffer(nil))
	})

	logger := With("optimize")
	logger.Info().Msg("hello")

	if !strings.Contains(buf.String(), `"component":"optimize"`) {
		t.Errorf("component field missing: %s", buf.String())
	}
}

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := ToLogLevel(tt.in); got != tt.want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToLogLevelInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("invalid level should panic")
		}
	}()
	ToLogLevel("verbose")
}
