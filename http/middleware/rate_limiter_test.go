package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint/http/middleware"
)

func TestRateLimit(t *testing.T) {
	// Arrange
	vs := middleware.NewVisitors()
	handler := middleware.RateLimit(vs)(NoopHandler())

	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	r.Header.Set("X-Forwarded-For", "1.1.1.1")

	// Act: a fresh visitor may burst up to 20 requests
	var last int
	for i := 0; i < 21; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		last = w.Code
	}

	// Assert
	require.Equal(t, http.StatusTooManyRequests, last)

	// Act: a different visitor is unaffected
	r2 := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	r2.Header.Set("X-Forwarded-For", "8.8.8.8")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r2)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
}
