package waypoint

const (
	LogKindKey = "kind"
	LogMaskVal = "xxxxxx"
)

// Log kinds tag a log line with the part of a waypoint app that emitted it.
const (
	AppLogKind    = "app"
	HTTPLogKind   = "http"
	RouterLogKind = "router"
)
