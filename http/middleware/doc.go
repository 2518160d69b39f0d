/*
The middleware package defines what a middleware is in waypoint and a set of basic middlewares.

The available middlewares are:
- CORS
- InjectIPAddress
- LogRequest
- RateLimit
- ReportPanic
- RequestID

Due to the amount of configuration required, middleware does not provide a default middleware chain.
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.RateLimit(vs),
		middleware.InjectIPAddress(),
		middleware.RequestID(requestIDKey),
		middleware.LogRequest(log),
	}
*/
package middleware
