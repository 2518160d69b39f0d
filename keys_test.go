package waypoint_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waypoint"
)

func TestByKeyUniqueSort(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    []waypoint.Key
		expected []waypoint.Key
	}{
		{"Nil", nil, waypoint.ByKey{}},
		{"Zero-Value", []waypoint.Key{}, []waypoint.Key{}},
		{"Many-Zero", make([]waypoint.Key, 99), []waypoint.Key{}},
		{"Sorted", []waypoint.Key{"a", "c", "e", "d"}, []waypoint.Key{"a", "c", "d", "e"}},
		{"Uniqued", []waypoint.Key{"a", "a", "a"}, []waypoint.Key{"a"}},
		{"Filtered-Zero-Value", []waypoint.Key{"", "a", "", "b", ""}, []waypoint.Key{"a", "b"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			actual := waypoint.ByKey(tc.input).UniqueSort()
			require.Equal(t, tc.expected, []waypoint.Key(actual))
		})
	}
}

func TestKeyString(t *testing.T) {
	require.Equal(t, "RequestIDKey", waypoint.RequestIDKey.Key())
	require.Equal(t, "waypoint context key: RequestIDKey", waypoint.RequestIDKey.String())
}
