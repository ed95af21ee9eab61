package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Day is a day of the week as it appears in a timetable.
type Day string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
	Sunday    Day = "Sunday"
)

// DayOrder lists all days in calendar order. Used for deterministic
// iteration over per-day groupings.
var DayOrder = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayNames = map[string]Day{
	"monday": Monday, "mon": Monday,
	"tuesday": Tuesday, "tue": Tuesday, "tues": Tuesday,
	"wednesday": Wednesday, "wed": Wednesday,
	"thursday": Thursday, "thu": Thursday, "thur": Thursday, "thurs": Thursday,
	"friday": Friday, "fri": Friday,
	"saturday": Saturday, "sat": Saturday,
	"sunday": Sunday, "sun": Sunday,
}

// ParseDay resolves a day label (full or abbreviated, any case) to a Day.
func ParseDay(s string) (Day, bool) {
	d, ok := dayNames[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

// Index returns the calendar position of the day (Monday = 0).
// Unknown days sort last.
func (d Day) Index() int {
	for i, day := range DayOrder {
		if day == d {
			return i
		}
	}
	return len(DayOrder)
}

// ClassType distinguishes theory lectures from lab sessions.
type ClassType string

const (
	Theory ClassType = "Theory"
	Lab    ClassType = "Lab"
)

// TimetableEntry is one scheduled class meeting in canonical form.
// Entries are immutable once normalized; identity is
// (course_code, section, day, start_min).
type TimetableEntry struct {
	CourseCode string    `json:"course_code"`
	Section    string    `json:"section"`
	Day        Day       `json:"day"`
	StartMin   int       `json:"start_min"`
	EndMin     int       `json:"end_min"`
	Room       string    `json:"room"`
	Type       ClassType `json:"type"`
	Instructor string    `json:"instructor,omitempty"`
	Department string    `json:"department,omitempty"`
}

// TimeRange renders the entry's interval back to HH:MM-HH:MM form.
func (e TimetableEntry) TimeRange() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		e.StartMin/60, e.StartMin%60, e.EndMin/60, e.EndMin%60)
}

// SameSection reports whether two entries belong to the same course section.
// A section may meet multiple times per week, so this is coarser than
// entry identity.
func (e TimetableEntry) SameSection(o TimetableEntry) bool {
	return e.CourseCode == o.CourseCode && e.Section == o.Section
}

// Timetable is one uploaded timetable owned by a user. Its entries are
// stored separately and treated as an immutable snapshot: re-upload
// creates a new Timetable rather than mutating an existing one.
type Timetable struct {
	ID          uuid.UUID `json:"id"`
	UserID      int       `json:"user_id"`
	SourceFiles []string  `json:"source_files"`
	EntryCount  int       `json:"entry_count"`
	CreatedAt   time.Time `json:"created_at"`
}
