// Package timetable implements the pure scheduling core: normalizing raw
// uploaded rows into canonical entries, detecting day/time conflicts among
// a selected course set, recommending alternative sections, and projecting
// entries for display. No function in this package performs I/O or holds
// state across calls; every computation runs over the values it is given.
package timetable

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrMalformedTimeRange reports a time-range string that does not match
// HH:MM-HH:MM (24h) or whose start is not strictly before its end.
var ErrMalformedTimeRange = errors.New("malformed time range")

var timeRangeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])-([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseTimeRange parses a "HH:MM-HH:MM" string into minutes since midnight.
// The format is strict: zero-padded 24h components and a single hyphen.
func ParseTimeRange(s string) (startMin, endMin int, err error) {
	m := timeRangeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTimeRange, s)
	}

	startMin = atoi2(m[1])*60 + atoi2(m[2])
	endMin = atoi2(m[3])*60 + atoi2(m[4])

	if startMin >= endMin {
		return 0, 0, fmt.Errorf("%w: start %s not before end %s", ErrMalformedTimeRange, m[1]+":"+m[2], m[3]+":"+m[4])
	}
	return startMin, endMin, nil
}

// atoi2 converts a regex-validated two-digit string.
func atoi2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

// overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Back-to-back meetings (end == start) do not.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
