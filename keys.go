package waypoint

import "sort"

// A Key names a value stashed in a context.Context while waypoint handles an HTTP request.
type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request being handled by waypoint.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// Key returns the key so it can be used in a map[string].
func (k Key) Key() string { return string(k) }

// String formats the stringified key with additional contextual information.
func (k Key) String() string {
	return "waypoint context key: " + string(k)
}

// A ByKey is a sortable collection of Keys.
type ByKey []Key

// UniqueSort sorts the set of Keys and removes duplicate and zero-value entries.
func (bk ByKey) UniqueSort() ByKey {
	uniqued := make(ByKey, 0, len(bk))
	seen := make(map[Key]struct{}, len(bk))
	for _, k := range bk {
		if k == "" {
			continue
		}

		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		uniqued = append(uniqued, k)
	}

	sort.Slice(uniqued, func(i, j int) bool { return uniqued[i] < uniqued[j] })
	return uniqued
}
