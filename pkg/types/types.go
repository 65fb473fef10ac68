package types

import "strconv"

// EventKind tags a profiler event as opening or closing a range.
type EventKind uint8

const (
	RangeStart EventKind = iota
	RangeEnd
)

// Event is one range boundary recorded during a capture session. Events in
// one thread's sequence are ordered by emission; timestamps are microseconds
// relative to the session start. Shapes are only meaningful on RangeStart.
type Event struct {
	Kind   EventKind
	Name   string
	TS     int64
	Shapes [][]int64
}

// FormatShape renders the first shape of a range start as bracketed
// dimensions, e.g. [1x7x151936]. An empty or absent shape list yields "".
func FormatShape(shapes [][]int64) string {
	if len(shapes) == 0 || len(shapes[0]) == 0 {
		return ""
	}
	out := "["
	for i, d := range shapes[0] {
		if i != 0 {
			out += "x"
		}
		out += strconv.FormatInt(d, 10)
	}
	return out + "]"
}
