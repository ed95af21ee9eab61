package timetable

import (
	"testing"

	"github.com/edfast/edfast-backend/internal/model"
)

func TestRecommendFindsClearingSection(t *testing.T) {
	all := []model.TimetableEntry{
		entry("CS101", "CS-A", model.Monday, "09:00-10:30"),
		entry("CS101", "CS-B", model.Tuesday, "09:00-10:30"),
		entry("MATH201", "MT-A", model.Monday, "10:00-11:00"),
	}
	selection := []string{"CS101", "MATH201"}

	conflicts := FindConflicts(all, selection)
	if len(conflicts) != 1 {
		t.Fatalf("setup: got %d conflicts, want 1", len(conflicts))
	}

	rec := Recommend(conflicts[0], all, selection)
	if len(rec.Alternatives) != 1 {
		t.Fatalf("got %d alternatives, want 1: %+v", len(rec.Alternatives), rec.Alternatives)
	}
	alt := rec.Alternatives[0]
	if alt.CourseCode != "CS101" || alt.Section != "CS-B" {
		t.Errorf("alternative = %s %s, want CS101 CS-B", alt.CourseCode, alt.Section)
	}
}

func TestRecommendSingleSectionCourses(t *testing.T) {
	// Neither course offers another section; the empty list is the answer.
	all := []model.TimetableEntry{
		entry("CS101", "CS-A", model.Monday, "09:00-10:30"),
		entry("MATH201", "MT-A", model.Monday, "10:00-11:00"),
	}
	selection := []string{"CS101", "MATH201"}

	conflicts := FindConflicts(all, selection)
	rec := Recommend(conflicts[0], all, selection)
	if len(rec.Alternatives) != 0 {
		t.Errorf("got alternatives %+v, want none", rec.Alternatives)
	}
}

func TestRecommendRejectsClashingAlternative(t *testing.T) {
	// CS-B clears the MATH201 clash but lands on PHY101, so it is not a fix.
	all := []model.TimetableEntry{
		entry("CS101", "CS-A", model.Monday, "09:00-10:30"),
		entry("CS101", "CS-B", model.Tuesday, "09:00-10:30"),
		entry("MATH201", "MT-A", model.Monday, "10:00-11:00"),
		entry("PHY101", "PH-A", model.Tuesday, "09:00-10:30"),
	}
	selection := []string{"CS101", "MATH201", "PHY101"}

	conflicts := FindConflicts(all, selection)
	if len(conflicts) != 1 {
		t.Fatalf("setup: got %d conflicts, want 1", len(conflicts))
	}

	rec := Recommend(conflicts[0], all, selection)
	if len(rec.Alternatives) != 0 {
		t.Errorf("clashing section offered as alternative: %+v", rec.Alternatives)
	}
}

func TestRecommendExcludesReplacedSectionMeetings(t *testing.T) {
	// CS-A also meets Tuesday morning. That meeting disappears along with
	// the section, so it must not block CS-B's Tuesday slot.
	all := []model.TimetableEntry{
		entry("CS101", "CS-A", model.Monday, "09:00-10:30"),
		entry("CS101", "CS-A", model.Tuesday, "09:00-10:30"),
		entry("CS101", "CS-B", model.Tuesday, "09:00-10:30"),
		entry("MATH201", "MT-A", model.Monday, "10:00-11:00"),
	}
	selection := []string{"CS101", "MATH201"}

	conflicts := FindConflicts(all, selection)
	if len(conflicts) != 1 {
		t.Fatalf("setup: got %d conflicts, want 1", len(conflicts))
	}

	rec := Recommend(conflicts[0], all, selection)
	if len(rec.Alternatives) != 1 || rec.Alternatives[0].Section != "CS-B" {
		t.Errorf("got %+v, want the CS-B meeting", rec.Alternatives)
	}
}

func TestRecommendAlternativeOrdering(t *testing.T) {
	all := []model.TimetableEntry{
		entry("CS101", "CS-A", model.Monday, "09:00-10:30"),
		entry("CS101", "CS-C", model.Wednesday, "09:00-10:30"),
		entry("CS101", "CS-B", model.Tuesday, "09:00-10:30"),
		entry("MATH201", "MT-A", model.Monday, "10:00-11:00"),
		entry("MATH201", "MT-B", model.Friday, "10:00-11:00"),
	}
	selection := []string{"CS101", "MATH201"}

	conflicts := FindConflicts(all, selection)
	rec := Recommend(conflicts[0], all, selection)

	want := []string{"CS-B", "CS-C", "MT-B"}
	if len(rec.Alternatives) != len(want) {
		t.Fatalf("got %d alternatives, want %d: %+v", len(rec.Alternatives), len(want), rec.Alternatives)
	}
	for i, section := range want {
		if rec.Alternatives[i].Section != section {
			t.Errorf("alternatives[%d].Section = %s, want %s", i, rec.Alternatives[i].Section, section)
		}
	}
}
