package logger_test

import (
	"bytes"
	"io"
	"log"
	"regexp"
	"testing"

	"github.com/carloscedeno/cardstore/logger"
	"github.com/stretchr/testify/require"
)

var (
	logLevelRegexp = regexp.MustCompile(`\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`cardstore.*\.go`)
)

type testUser struct{}

func (testUser) GetID() uint     { return 1 }
func (testUser) GetEmail() string { return "test@example.com" }

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func TestStoreLoggerLevels(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(
		logger.WithLogger(newTestLogger(b)),
		logger.WithLevel(logger.LogLevelWarn),
	)

	// Act
	l.Debug("quiet", nil)
	l.Info("quiet", nil)

	// Assert
	require.Zero(t, b.Len())

	// Act
	l.Warn("heard", nil)

	// Assert
	require.Contains(t, b.String(), "[WARN]")
	require.Contains(t, b.String(), "heard")
	require.Regexp(t, logLevelRegexp, b.String())
}

func TestStoreLoggerCallSite(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(
		logger.WithLogger(newTestLogger(b)),
		logger.WithLevel(logger.LogLevelDebug),
	)

	// Act
	l.Debug("where am I", nil)

	// Assert
	require.Regexp(t, fpRegexp, b.String())
}

func TestStoreLoggerContext(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(newTestLogger(b)))

	// Act
	l.Info("msg", &logger.LogContext{Data: map[string]any{"game": "MTG"}})

	// Assert
	require.Contains(t, b.String(), "log_context:")
	require.Contains(t, b.String(), "MTG")
}

func TestNewLogLevel(t *testing.T) {
	tcs := []struct {
		name     string
		input    string
		expected logger.LogLevel
	}{
		{"Debug", "DEBUG", logger.LogLevelDebug},
		{"Info", "INFO", logger.LogLevelInfo},
		{"Warn", "WARN", logger.LogLevelWarn},
		{"Error", "ERROR", logger.LogLevelError},
		{"Fatal", "FATAL", logger.LogLevelFatal},
		{"Unknown", "VERBOSE", logger.LogLevelUnk},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.input))
		})
	}
}
