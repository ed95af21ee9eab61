package timetable

import (
	"errors"
	"testing"
)

func TestParseTimeRange(t *testing.T) {
	cases := []struct {
		in    string
		start int
		end   int
	}{
		{"09:00-10:30", 540, 630},
		{"00:00-23:59", 0, 1439},
		{"10:00-11:00", 600, 660},
		{"14:00-15:30", 840, 930},
	}

	for _, tc := range cases {
		start, end, err := ParseTimeRange(tc.in)
		if err != nil {
			t.Fatalf("ParseTimeRange(%q): unexpected error: %v", tc.in, err)
		}
		if start != tc.start || end != tc.end {
			t.Errorf("ParseTimeRange(%q) = (%d, %d), want (%d, %d)", tc.in, start, end, tc.start, tc.end)
		}
	}
}

func TestParseTimeRangeMalformed(t *testing.T) {
	cases := []string{
		"",
		"9-10:30",        // missing minutes and leading zero
		"9:00-10:30",     // missing leading zero
		"09:00–10:30",    // en dash instead of hyphen
		"09:00 - 10:30",  // embedded spaces
		"24:00-25:00",    // hour out of range
		"09:60-10:30",    // minutes out of range
		"10:30-09:00",    // start after end
		"09:00-09:00",    // zero-length interval
		"09:00",          // no end
		"09:00-10:30-11", // trailing garbage
	}

	for _, in := range cases {
		_, _, err := ParseTimeRange(in)
		if !errors.Is(err, ErrMalformedTimeRange) {
			t.Errorf("ParseTimeRange(%q): want ErrMalformedTimeRange, got %v", in, err)
		}
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"disjoint", 540, 630, 660, 720, false},
		{"touching boundaries", 540, 600, 600, 660, false},
		{"partial overlap", 540, 630, 600, 660, true},
		{"containment", 540, 720, 600, 660, true},
		{"identical", 540, 630, 540, 630, true},
		{"reversed order disjoint", 660, 720, 540, 630, false},
	}

	for _, tc := range cases {
		if got := overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("%s: overlaps(%d,%d,%d,%d) = %v, want %v",
				tc.name, tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
		}
	}
}
