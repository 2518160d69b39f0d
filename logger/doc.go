/*
Package logger provides logging functionality to a waypoint app by defining the required behavior in [Logger]
and providing an implementation of it with [WaypointLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [WaypointLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*WaypointLogger.Warn], [*WaypointLogger.Error], and [*WaypointLogger.Fatal] produce messages.

# WaypointLogger

The [WaypointLogger] provides all the logging functionality needed for a waypoint app.
It is the implementation of [Logger] returned by the [NewLogger] function.

Log messages emitted by [WaypointLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2022/04/28 15:55:21 [DEBUG] web/dispatch.go:43 'no matching child' log_context: {"route":{"path":"/dashboard/users"}}

The file, line number, and parent directory of where a [WaypointLogger] method was called comprise the call site.
The message is the actual string passed into the [WaypointLogger] method.
Lastly, the log context is a JSON-encoded [*LogContext],
including additional data inessential to the message proper -
notably the route a dispatch was attempting when the logging event occurred.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.
*/
package logger
