package urlpath

import "strings"

// Separator delimits the segments of a URL path.
const Separator = "/"

// A Cursor is an immutable, ordered sequence of URL path segments
// paired with a position advanced by consuming segments one at a time.
type Cursor struct {
	segments []string
	pos      int
}

// New constructs a *Cursor by splitting path on [Separator].
// Empty fragments produced by leading, trailing, or repeated separators are discarded.
func New(path string) *Cursor {
	return FromSegments(strings.Split(path, Separator)...)
}

// FromSegments constructs a *Cursor directly from an ordered sequence of segments,
// discarding empty entries.
func FromSegments(segs ...string) *Cursor {
	c := &Cursor{segments: make([]string, 0, len(segs))}
	for _, s := range segs {
		if s == "" {
			continue
		}

		c.segments = append(c.segments, s)
	}

	return c
}

// HasNext asserts whether unconsumed segments remain.
func (c *Cursor) HasNext() bool { return c.pos < len(c.segments) }

// Next returns the segment at the current position and advances the Cursor by one.
// The second return value is false when all segments have been consumed.
func (c *Cursor) Next() (string, bool) {
	if !c.HasNext() {
		return "", false
	}

	seg := c.segments[c.pos]
	c.pos++
	return seg, true
}

// Peek returns the segment at the current position without advancing the Cursor.
// The second return value is false when all segments have been consumed.
func (c *Cursor) Peek() (string, bool) {
	if !c.HasNext() {
		return "", false
	}

	return c.segments[c.pos], true
}

// Remaining drains the Cursor, returning all unconsumed segments in order.
func (c *Cursor) Remaining() []string {
	rest := make([]string, 0, len(c.segments)-c.pos)
	for c.HasNext() {
		seg, _ := c.Next()
		rest = append(rest, seg)
	}

	return rest
}

// Reset returns the Cursor's position to zero without altering its segments.
// Reset returns the Cursor so calls can be chained.
func (c *Cursor) Reset() *Cursor {
	c.pos = 0
	return c
}

// Segments returns a copy of the full segment sequence, consumed or not.
func (c *Cursor) Segments() []string {
	segs := make([]string, len(c.segments))
	copy(segs, c.segments)
	return segs
}

// Len returns the total number of segments.
func (c *Cursor) Len() int { return len(c.segments) }

// Pos returns the number of segments consumed so far.
func (c *Cursor) Pos() int { return c.pos }

// String reconstructs the canonical path: one [Separator] followed by
// the segments joined by [Separator].
func (c *Cursor) String() string {
	return Separator + strings.Join(c.segments, Separator)
}
