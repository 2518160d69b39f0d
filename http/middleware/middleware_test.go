package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint/http/middleware"
)

func NoopHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

func TestChain(t *testing.T) {
	// Arrange
	var calls []string
	mark := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	middleware.Chain(NoopHandler(), mark("first"), mark("second"), mark("third")).ServeHTTP(w, r)

	// Assert: adapters run in the order they are chained
	require.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestChainSkipsNilAdapters(t *testing.T) {
	// Arrange
	var called bool
	mark := func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			h.ServeHTTP(w, r)
		})
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	middleware.Chain(NoopHandler(), nil, mark, nil).ServeHTTP(w, r)

	// Assert
	require.True(t, called)
}

func TestNoopAdapter(t *testing.T) {
	// Arrange
	h := NoopHandler()

	// Act + Assert
	require.Equal(t, fmt.Sprintf("%p", h), fmt.Sprintf("%p", middleware.NoopAdapter(h)))
}
