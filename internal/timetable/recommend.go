package timetable

import (
	"sort"

	"github.com/edfast/edfast-backend/internal/model"
)

// Recommendation suggests alternative sections that would resolve one
// conflict. An empty Alternatives list is a valid negative finding, not
// an error: it means neither side of the conflict has a section that
// clears the rest of the selected schedule.
type Recommendation struct {
	Conflict     Conflict               `json:"conflict"`
	Alternatives []model.TimetableEntry `json:"alternative_sections"`
}

// Recommend searches allEntries for other sections of the two conflicting
// courses that do not overlap any other currently-selected entry. Meetings
// of the candidate's own course are excluded from the clash check: only
// one section of a course is taken, and choosing the alternative removes
// the replaced section from the schedule.
//
// Alternatives for the conflict's first entry are listed before those for
// its second; within a side they are ordered by (section, day, start).
// There is no scoring; the first listed alternative is the suggestion.
func Recommend(c Conflict, allEntries []model.TimetableEntry, selectedCourses []string) Recommendation {
	selected := courseSet(selectedCourses)

	var schedule []model.TimetableEntry
	for _, e := range allEntries {
		if selected[e.CourseCode] {
			schedule = append(schedule, e)
		}
	}

	rec := Recommendation{Conflict: c}
	rec.Alternatives = append(rec.Alternatives, alternativesFor(c.First, allEntries, schedule)...)
	rec.Alternatives = append(rec.Alternatives, alternativesFor(c.Second, allEntries, schedule)...)
	return rec
}

// alternativesFor finds meetings of other sections of replace's course
// that fit into the schedule once replace's section is taken out.
func alternativesFor(replace model.TimetableEntry, allEntries, schedule []model.TimetableEntry) []model.TimetableEntry {
	var candidates []model.TimetableEntry
	for _, e := range allEntries {
		if e.CourseCode != replace.CourseCode || e.Section == replace.Section {
			continue
		}
		if fits(e, schedule) {
			candidates = append(candidates, e)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Section != b.Section {
			return a.Section < b.Section
		}
		if a.Day != b.Day {
			return a.Day.Index() < b.Day.Index()
		}
		return a.StartMin < b.StartMin
	})
	return candidates
}

// fits reports whether candidate avoids every scheduled entry outside its
// own course.
func fits(candidate model.TimetableEntry, schedule []model.TimetableEntry) bool {
	for _, e := range schedule {
		if e.CourseCode == candidate.CourseCode {
			continue
		}
		if e.Day == candidate.Day && overlaps(e.StartMin, e.EndMin, candidate.StartMin, candidate.EndMin) {
			return false
		}
	}
	return true
}
