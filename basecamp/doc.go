/*
Package basecamp initializes and manages a waypoint app with sane defaults.

# Basecamp

The main entrypoint to package basecamp is the [Basecamp] type.
A [Basecamp] ought to be constructed with [New],
passing any [BasecampOption] needed to override a default.

[*Basecamp.Embark] begins a waypoint app's web server.
By default, [*Basecamp.Embark] listens on [DefaultHost]:[DefaultPort] (localhost:3000),
assuming either a reverse proxy proxies requests
or only a client application makes direct requests to the waypoint web server.

Upon calling [*Basecamp.Embark], all routes registered up to that point are now active.
Stop that web server with [*Basecamp.Shutdown]
or send a signal [*Basecamp.Embark] listens for.

# Configuration

A developer configures a waypoint app through environment variables.
Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - BASE_URL: the base URL the application runs on; replaces HOST & PORT
  - ENVIRONMENT: the environment the application is running in; cf. [waypoint.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - SENTRY_DSN: the DSN reported to when configuring a [logger.SentryLogger]
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
*/
package basecamp
