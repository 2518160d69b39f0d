package basecamp

import (
	"net/http"
	"time"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/http/keyring"
	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/http/mux"
	"github.com/xy-planning-network/waypoint/logger"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"
	defaultLogLvl  = "INFO"

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
)

var defaultBaseURL = "http://" + DefaultHost + DefaultPort

// defaultEnv reads the Environment out of the ENVIRONMENT environment variable.
func defaultEnv() waypoint.Environment {
	return waypoint.EnvVarOrEnv(environmentEnvVar, waypoint.Development)
}

// defaultKeyring constructs a Keyring carrying the context keys
// waypoint's own middlewares stash values under.
func defaultKeyring() keyring.Keyringable {
	return keyring.NewKeyring(waypoint.RequestIDKey, waypoint.IpAddrKey)
}

// defaultLogger constructs a logger.Logger configured by LOG_LEVEL and the Environment.
func defaultLogger(env waypoint.Environment) logger.Logger {
	lvl := logger.NewLogLevel(waypoint.EnvVarOrString(logLevelEnvVar, defaultLogLvl))
	if lvl == logger.LogLevelUnk {
		lvl = logger.LogLevelInfo
	}

	return logger.NewLogger(
		logger.WithEnv(env.String()),
		logger.WithLevel(lvl),
	)
}

// defaultMux constructs a mux.Mux applying the default middleware stack to every route.
func defaultMux(env waypoint.Environment, kr keyring.Keyringable, l logger.Logger) *mux.Mux {
	logReq := middleware.LogRequest(l)
	m := mux.New(env.String(), logReq)
	m.OnEveryRequest(
		middleware.RateLimit(middleware.NewVisitors()),
		middleware.InjectIPAddress(),
		middleware.RequestID(kr.RequestIDKey()),
		logReq,
	)

	return m
}

// defaultServer constructs a *http.Server from HOST, PORT, and the SERVER_* timeouts.
func defaultServer() *http.Server {
	host := waypoint.EnvVarOrString(hostEnvVar, DefaultHost)
	port := waypoint.EnvVarOrString(portEnvVar, DefaultPort)

	return &http.Server{
		Addr:         host + port,
		IdleTimeout:  waypoint.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  waypoint.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: waypoint.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
}
