package timetable

import (
	"sort"

	"github.com/edfast/edfast-backend/internal/model"
)

// maxCombinations caps the section-combination search. Timetables with a
// handful of selected courses stay well under it; pathological inputs get
// a best-effort answer instead of an exponential blowup.
const maxCombinations = 1000

// BuiltSchedule is the outcome of the personal schedule search.
type BuiltSchedule struct {
	Entries          []model.TimetableEntry `json:"entries"`
	Conflicts        []Conflict             `json:"conflicts"`
	ConflictFree     bool                   `json:"conflict_free"`
	ScheduledCourses int                    `json:"scheduled_courses"`
}

// courseOptions holds one course's candidate sections, each section being
// the group of its weekly meetings.
type courseOptions struct {
	course   string
	sections [][]model.TimetableEntry
}

// BuildSchedule picks one section per selected course so that the combined
// schedule has as few conflicts as possible. Combinations are enumerated
// in deterministic order (courses and sections sorted) and the search
// stops early on a conflict-free result. Courses absent from allEntries
// are silently left out of the schedule.
func BuildSchedule(allEntries []model.TimetableEntry, selectedCourses []string) BuiltSchedule {
	options := groupOptions(allEntries, selectedCourses)
	if len(options) == 0 {
		return BuiltSchedule{ConflictFree: true}
	}

	// Odometer over one section choice per course.
	choice := make([]int, len(options))
	var best BuiltSchedule
	bestConflicts := -1

	for tried := 0; tried < maxCombinations; tried++ {
		var combined []model.TimetableEntry
		for i, opt := range options {
			combined = append(combined, opt.sections[choice[i]]...)
		}

		conflicts := countConflicts(combined)
		if bestConflicts == -1 || len(conflicts) < bestConflicts {
			bestConflicts = len(conflicts)
			best = BuiltSchedule{
				Entries:          combined,
				Conflicts:        conflicts,
				ConflictFree:     len(conflicts) == 0,
				ScheduledCourses: len(options),
			}
			if best.ConflictFree {
				break
			}
		}

		if !advance(choice, options) {
			break
		}
	}

	return best
}

// groupOptions buckets the selected courses' entries by course and section,
// sorted for deterministic enumeration.
func groupOptions(allEntries []model.TimetableEntry, selectedCourses []string) []courseOptions {
	selected := courseSet(selectedCourses)
	grouped := make(map[string]map[string][]model.TimetableEntry)
	for _, e := range allEntries {
		if !selected[e.CourseCode] {
			continue
		}
		if grouped[e.CourseCode] == nil {
			grouped[e.CourseCode] = make(map[string][]model.TimetableEntry)
		}
		grouped[e.CourseCode][e.Section] = append(grouped[e.CourseCode][e.Section], e)
	}

	var options []courseOptions
	for course, bySection := range grouped {
		opt := courseOptions{course: course}
		sections := make([]string, 0, len(bySection))
		for s := range bySection {
			sections = append(sections, s)
		}
		sort.Strings(sections)
		for _, s := range sections {
			opt.sections = append(opt.sections, bySection[s])
		}
		options = append(options, opt)
	}
	sort.Slice(options, func(i, j int) bool { return options[i].course < options[j].course })
	return options
}

// advance increments the odometer; false means all combinations were seen.
func advance(choice []int, options []courseOptions) bool {
	for i := len(choice) - 1; i >= 0; i-- {
		choice[i]++
		if choice[i] < len(options[i].sections) {
			return true
		}
		choice[i] = 0
	}
	return false
}
