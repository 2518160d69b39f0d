package mux_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/http/mux"
)

func TestMuxHandle(t *testing.T) {
	// Arrange
	m := mux.New("DEVELOPMENT", nil)
	err := m.Handle(mux.Route{Path: "/login", Handler: func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}})
	require.Nil(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/login/", nil)

	// Act
	m.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusAccepted, w.Code)
}

func TestMuxNotFound(t *testing.T) {
	// Arrange
	m := mux.New("DEVELOPMENT", nil)
	require.Nil(t, m.Handle(mux.Route{Path: "/login", Handler: func(w http.ResponseWriter, r *http.Request) {}}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/unknown", nil)

	// Act
	m.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)

	// Arrange: an intermediate node without a handler is not invocable either
	require.Nil(t, m.Handle(mux.Route{Path: "/dashboard/users/detail", Handler: func(w http.ResponseWriter, r *http.Request) {}}))

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "https://example.com/dashboard/users", nil)

	// Act
	m.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMuxHandleNotFound(t *testing.T) {
	// Arrange
	m := mux.New("DEVELOPMENT", nil)
	m.HandleNotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/unknown", nil)

	// Act
	m.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusTeapot, w.Code)
}

func TestMuxMiddlewareOrder(t *testing.T) {
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

	m := mux.New("DEVELOPMENT", nil)
	m.OnEveryRequest(mark("every"))
	err := m.HandleRoutes([]mux.Route{{
		Path:        "/login",
		Handler:     func(w http.ResponseWriter, r *http.Request) { calls = append(calls, "handler") },
		Middlewares: []middleware.Adapter{mark("route")},
	}}, mark("group"))
	require.Nil(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/login", nil)

	// Act
	m.ServeHTTP(w, r)

	// Assert
	require.Equal(t, []string{"every", "group", "route", "handler"}, calls)
}

func TestMuxSubrouter(t *testing.T) {
	// Arrange
	m := mux.New("DEVELOPMENT", nil)
	api := m.Subrouter("/api/v1")
	require.Nil(t, api.Handle(mux.Route{Path: "/users", Handler: func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/api/v1/users", nil)

	// Act: the parent Mux serves routes registered on the subrouter
	m.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMuxConcurrentRequests(t *testing.T) {
	// Arrange
	m := mux.New("DEVELOPMENT", nil)
	require.Nil(t, m.Handle(mux.Route{Path: "/login", Handler: func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}}))
	require.Nil(t, m.Handle(mux.Route{Path: "/dashboard/users", Handler: func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}}))

	paths := map[string]int{
		"/login":           http.StatusAccepted,
		"/dashboard/users": http.StatusOK,
		"/unknown":         http.StatusNotFound,
	}

	// Act: hammer the Mux from many goroutines so an unsynchronized
	// lookup through shared state would misroute or trip the race detector
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		for path, code := range paths {
			wg.Add(1)
			go func(path string, code int) {
				defer wg.Done()

				w := httptest.NewRecorder()
				r := httptest.NewRequest(http.MethodGet, "https://example.com"+path, nil)
				m.ServeHTTP(w, r)

				// Assert
				if w.Code != code {
					t.Errorf("%s: expected %d, got %d", path, code, w.Code)
				}
			}(path, code)
		}
	}

	wg.Wait()
}

func TestMuxSubrouterMiddlewareIsolation(t *testing.T) {
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

	m := mux.New("DEVELOPMENT", nil)
	m.OnEveryRequest(mark("parent"))
	api := m.Subrouter("/api/v1")

	// appends after the split must not leak between parent and subrouter
	api.OnEveryRequest(mark("sub"))
	require.Nil(t, m.Handle(mux.Route{
		Path:        "/login",
		Handler:     func(w http.ResponseWriter, r *http.Request) { calls = append(calls, "handler") },
		Middlewares: []middleware.Adapter{mark("route")},
	}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/login", nil)

	// Act
	m.ServeHTTP(w, r)

	// Assert
	require.Equal(t, []string{"parent", "route", "handler"}, calls)
}

func TestMuxReplacesRoute(t *testing.T) {
	// Arrange
	m := mux.New("DEVELOPMENT", nil)
	require.Nil(t, m.Handle(mux.Route{Path: "/login", Handler: func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}}))
	require.Nil(t, m.Handle(mux.Route{Path: "/login", Handler: func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/login", nil)

	// Act
	m.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
}
