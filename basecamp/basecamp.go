package basecamp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	// TODO: configurable env files
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/http/keyring"
	"github.com/xy-planning-network/waypoint/http/mux"
	"github.com/xy-planning-network/waypoint/logger"
)

// A Basecamp manages and exposes all components of a waypoint app to one another.
type Basecamp struct {
	*mux.Mux

	ctx context.Context
	env waypoint.Environment
	kr  keyring.Keyringable
	l   logger.Logger
	srv *http.Server
	url *url.URL
}

// New constructs a Basecamp from the provided options.
// Default configurations fill whatever the options leave unset.
func New(opts ...BasecampOption) (*Basecamp, error) {
	b := new(Basecamp)
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadConfig, err)
		}
	}

	if b.env == "" {
		b.env = defaultEnv()
	}

	if b.kr == nil {
		b.kr = defaultKeyring()
	}

	if b.l == nil {
		b.l = defaultLogger(b.env)
	}

	if b.Mux == nil {
		b.Mux = defaultMux(b.env, b.kr, b.l)
	}

	if b.srv == nil {
		b.srv = defaultServer()
	}

	if b.url == nil {
		b.url = waypoint.EnvVarOrURL(BaseURLEnvVar, defaultBaseURL)
	}

	return b, nil
}

func (b *Basecamp) EmitKeyring() keyring.Keyringable { return b.kr }
func (b *Basecamp) EmitLogger() logger.Logger        { return b.l }
func (b *Basecamp) Env() waypoint.Environment        { return b.env }
func (b *Basecamp) URL() *url.URL                    { return b.url }

// Embark begins the web server.
//
// These, and (*Basecamp).Shutdown, stop Embark:
//
// - os.Interrupt
// - os.Kill
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (b *Basecamp) Embark() error {
	var cancel context.CancelFunc
	b.ctx, cancel = context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		os.Kill,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	go func() {
		s := <-ch
		b.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
		cancel()
	}()

	go func() {
		b.l.Info(fmt.Sprintf("running web server at %s", b.srv.Addr), nil)
		b.srv.Handler = b.Mux
		if err := b.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			b.l.Error(err.Error(), nil)
		}
	}()

	<-b.ctx.Done()
	return b.Shutdown()
}

// Shutdown shutdowns the web server.
func (b *Basecamp) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	b.l.Info("shutting down web server", nil)
	err := b.srv.Shutdown(shutdownCtx)
	if err == http.ErrServerClosed {
		b.l.Info("web server shutdown successfully", nil)
		return nil
	}

	if err != nil {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	b.l.Info("web server shutdown successfully", nil)
	return nil
}
