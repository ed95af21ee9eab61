package timetable

import (
	"sort"

	"github.com/edfast/edfast-backend/internal/model"
)

// Stats summarizes one timetable's entries.
type Stats struct {
	TotalEntries  int `json:"total_entries"`
	UniqueCourses int `json:"unique_courses"`
	TheoryClasses int `json:"theory_classes"`
	LabClasses    int `json:"lab_classes"`
	ActiveDays    int `json:"days_with_classes"`
	UniqueRooms   int `json:"unique_rooms"`
}

// Summarize computes aggregate counts over entries.
func Summarize(entries []model.TimetableEntry) Stats {
	courses := make(map[string]bool)
	days := make(map[model.Day]bool)
	rooms := make(map[string]bool)

	s := Stats{TotalEntries: len(entries)}
	for _, e := range entries {
		courses[e.CourseCode] = true
		days[e.Day] = true
		if e.Room != "" {
			rooms[e.Room] = true
		}
		if e.Type == model.Lab {
			s.LabClasses++
		} else {
			s.TheoryClasses++
		}
	}

	s.UniqueCourses = len(courses)
	s.ActiveDays = len(days)
	s.UniqueRooms = len(rooms)
	return s
}

// Courses returns the distinct course codes present in entries, sorted.
func Courses(entries []model.TimetableEntry) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		if !seen[e.CourseCode] {
			seen[e.CourseCode] = true
			out = append(out, e.CourseCode)
		}
	}
	sort.Strings(out)
	return out
}
