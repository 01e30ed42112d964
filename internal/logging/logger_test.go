package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/mdcallout/internal/logging"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    string
		expected log.Level
	}{
		{level: "debug", expected: log.DebugLevel},
		{level: "info", expected: log.InfoLevel},
		{level: "warn", expected: log.WarnLevel},
		{level: "warning", expected: log.WarnLevel},
		{level: "error", expected: log.ErrorLevel},
		{level: "INFO", expected: log.InfoLevel},
		{level: "bogus", expected: log.InfoLevel},
	}

	for _, testCase := range tests {
		t.Run(testCase.level, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(testCase.level)
			if logger.GetLevel() != testCase.expected {
				t.Errorf("level %q: expected %v, got %v",
					testCase.level, testCase.expected, logger.GetLevel())
			}
		})
	}
}

func TestNewWithWriterOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "info")

	logger.Info("hello", logging.FieldPath, "a.md")

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "a.md") {
		t.Errorf("expected field value in output, got %q", out)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) == nil {
		t.Error("expected default logger for bare context")
	}
	//nolint:staticcheck // nil context is the case under test
	if logging.FromContext(nil) == nil {
		t.Error("expected default logger for nil context")
	}

	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "debug")
	ctx := logging.WithLogger(context.Background(), logger)
	if logging.FromContext(ctx) != logger {
		t.Error("expected attached logger to round-trip through context")
	}
}
