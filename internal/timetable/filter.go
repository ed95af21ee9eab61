package timetable

import (
	"strings"

	"github.com/edfast/edfast-backend/internal/model"
)

// Filter projects entries down to those matching any selected course code
// or department label, preserving original relative order.
//
// Selection is explicit: an empty selection yields an empty result, never
// the full set. Entries without a department never match a department
// selection.
func Filter(entries []model.TimetableEntry, selectedCourses, selectedDepartments []string) []model.TimetableEntry {
	courses := trimmedSet(selectedCourses)
	departments := trimmedSet(selectedDepartments)

	out := make([]model.TimetableEntry, 0)
	if len(courses) == 0 && len(departments) == 0 {
		return out
	}

	for _, e := range entries {
		if courses[e.CourseCode] || (e.Department != "" && departments[e.Department]) {
			out = append(out, e)
		}
	}
	return out
}

func trimmedSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			set[t] = true
		}
	}
	return set
}
