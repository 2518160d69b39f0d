package logger_test

import (
	"bytes"
	"log"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`^\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger_test\.go:\d+`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func TestWaypointLoggerEmits(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewLogger(
		logger.WithLogger(log.New(b, "", 0)),
		logger.WithLevel(logger.LogLevelDebug),
	)

	// Act
	l.Debug("such fun!", nil)

	// Assert
	out := b.String()
	require.Regexp(t, logLevelRegexp, out)
	require.Regexp(t, fpRegexp, out)
	require.Equal(t, "such fun!", msgRegexp.FindStringSubmatch(out)[1])
}

func TestWaypointLoggerFiltersBelowLevel(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewLogger(
		logger.WithLogger(log.New(b, "", 0)),
		logger.WithLevel(logger.LogLevelError),
	)

	// Act
	l.Debug("quiet", nil)
	l.Info("quiet", nil)
	l.Warn("quiet", nil)

	// Assert
	require.Zero(t, b.Len())

	// Act
	l.Error("loud", nil)

	// Assert
	require.NotZero(t, b.Len())
}

func TestWaypointLoggerIncludesContext(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewLogger(
		logger.WithLogger(log.New(b, "", 0)),
		logger.WithLevel(logger.LogLevelInfo),
	)

	// Act
	l.Info("no matching child", &logger.LogContext{
		Route: &logger.RouteContext{Path: "/unknown"},
	})

	// Assert
	require.Contains(t, b.String(), "log_context:")
	require.Contains(t, b.String(), `/unknown`)
}

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"whatever", logger.LogLevelUnk},
	} {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.input))
		})
	}
}
