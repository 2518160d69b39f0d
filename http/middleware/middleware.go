package middleware

import (
	"net/http"
)

// An Adapter allows chaining middlewares together.
type Adapter func(http.Handler) http.Handler

// NoopAdapter returns the handler unchanged;
// middlewares missing required configuration return it.
var NoopAdapter Adapter = func(handler http.Handler) http.Handler { return handler }

// Chain glues the set of adapters to the handler.
// Nil adapters are skipped.
func Chain(handler http.Handler, adapters ...Adapter) http.Handler {
	//NOTE: Loop in reverse to preserve middleware order
	for i := len(adapters) - 1; i >= 0; i-- {
		if adapters[i] == nil {
			continue
		}

		handler = adapters[i](handler)
	}

	return handler
}
