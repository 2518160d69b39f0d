package basecamp

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/http/keyring"
	"github.com/xy-planning-network/waypoint/http/mux"
	"github.com/xy-planning-network/waypoint/logger"
)

// A BasecampOption configures a *Basecamp under construction.
// Whatever the set of BasecampOptions passed to [New] leaves unset
// is filled by a default configuration.
type BasecampOption func(b *Basecamp) error

// WithEnv casts the provided string into a valid Environment
// and exposes it to the waypoint app.
func WithEnv(envVar string) BasecampOption {
	return func(b *Basecamp) error {
		e := waypoint.Environment(envVar)
		if err := e.Valid(); err != nil {
			return fmt.Errorf("%w: %q is not an Environment", err, envVar)
		}

		b.env = e
		return nil
	}
}

// WithKeyring exposes the provided keyring.Keyringable to the waypoint app.
func WithKeyring(kr keyring.Keyringable) BasecampOption {
	return func(b *Basecamp) error {
		if kr == nil {
			return fmt.Errorf("%w: nil keyring", ErrNotValid)
		}

		b.kr = kr
		return nil
	}
}

// WithLogger exposes the provided logger.Logger to the waypoint app.
func WithLogger(l logger.Logger) BasecampOption {
	return func(b *Basecamp) error {
		if l == nil {
			return fmt.Errorf("%w: nil logger", ErrNotValid)
		}

		b.l = l
		return nil
	}
}

// WithMux exposes the provided mux.Mux to the waypoint app,
// replacing the default middleware stack entirely.
func WithMux(m *mux.Mux) BasecampOption {
	return func(b *Basecamp) error {
		if m == nil {
			return fmt.Errorf("%w: nil mux", ErrNotValid)
		}

		b.Mux = m
		return nil
	}
}

// WithServer exposes the provided *http.Server to the waypoint app.
//
// The server's Handler is overwritten by [*Basecamp.Embark].
func WithServer(srv *http.Server) BasecampOption {
	return func(b *Basecamp) error {
		if srv == nil {
			return fmt.Errorf("%w: nil server", ErrNotValid)
		}

		b.srv = srv
		return nil
	}
}

// WithURL parses the provided string into the base URL the waypoint app runs on.
func WithURL(base string) BasecampOption {
	return func(b *Basecamp) error {
		u, err := url.ParseRequestURI(base)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrNotValid, err)
		}

		b.url = u
		return nil
	}
}
