package timetable

import (
	"sort"

	"github.com/edfast/edfast-backend/internal/model"
)

// Conflict is a pair of selected entries that meet on the same day with
// intersecting time intervals. It is a derived query result, recomputed on
// every request and never persisted. First always sorts before Second by
// (start, course, section), so an unordered pair is reported exactly once.
type Conflict struct {
	Day    model.Day            `json:"day"`
	First  model.TimetableEntry `json:"first"`
	Second model.TimetableEntry `json:"second"`
}

// FindConflicts reports every cross-course overlap among entries of the
// selected courses. Entries outside the selection are ignored, as are
// overlaps within a single course (a section's own meetings never
// conflict with each other).
//
// The result is deterministic for a given input regardless of row order:
// days are visited in calendar order and day groups are sorted before the
// sweep.
func FindConflicts(entries []model.TimetableEntry, selectedCourses []string) []Conflict {
	selected := courseSet(selectedCourses)
	if len(selected) == 0 {
		return nil
	}

	byDay := make(map[model.Day][]model.TimetableEntry)
	for _, e := range entries {
		if selected[e.CourseCode] {
			byDay[e.Day] = append(byDay[e.Day], e)
		}
	}

	var conflicts []Conflict
	for _, day := range model.DayOrder {
		group := byDay[day]
		if len(group) < 2 {
			continue
		}
		sortEntries(group)

		// Sorted-by-start sweep: entry j can only overlap entry i while
		// it starts before i ends.
		for i := 0; i < len(group)-1; i++ {
			for j := i + 1; j < len(group); j++ {
				if group[j].StartMin >= group[i].EndMin {
					break
				}
				if group[i].CourseCode == group[j].CourseCode {
					continue
				}
				conflicts = append(conflicts, Conflict{
					Day:    day,
					First:  group[i],
					Second: group[j],
				})
			}
		}
	}

	return conflicts
}

// countConflicts is the selection-free variant used by the schedule
// builder: every entry in the slice is considered selected.
func countConflicts(entries []model.TimetableEntry) []Conflict {
	courses := make([]string, 0, len(entries))
	seen := make(map[string]bool)
	for _, e := range entries {
		if !seen[e.CourseCode] {
			seen[e.CourseCode] = true
			courses = append(courses, e.CourseCode)
		}
	}
	return FindConflicts(entries, courses)
}

// sortEntries orders a day group by (start, course, section) so sweep
// output is reproducible when entries share a start time.
func sortEntries(group []model.TimetableEntry) {
	sort.Slice(group, func(i, j int) bool {
		a, b := group[i], group[j]
		if a.StartMin != b.StartMin {
			return a.StartMin < b.StartMin
		}
		if a.CourseCode != b.CourseCode {
			return a.CourseCode < b.CourseCode
		}
		return a.Section < b.Section
	})
}

func courseSet(courses []string) map[string]bool {
	set := make(map[string]bool, len(courses))
	for _, c := range courses {
		if c != "" {
			set[c] = true
		}
	}
	return set
}
