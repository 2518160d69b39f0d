package middleware_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/logger"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewLogger(logger.WithLogger(log.New(b, "", 0)))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/login?password=hunter2", nil)
	r = r.Clone(context.WithValue(r.Context(), waypoint.IpAddrKey, "1.1.1.1"))

	// Act
	middleware.LogRequest(l)(NoopHandler()).ServeHTTP(w, r)

	// Assert
	out := b.String()
	require.Contains(t, out, "1.1.1.1 GET /login")
	require.Contains(t, out, waypoint.LogMaskVal)
	require.NotContains(t, out, "hunter2")
}
