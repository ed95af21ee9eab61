package timetable

import (
	"testing"

	"github.com/edfast/edfast-backend/internal/model"
)

func TestFilter(t *testing.T) {
	a := entry("CS101", "CS-A", model.Monday, "09:00-10:30")
	a.Department = "CS"
	b := entry("MATH201", "MT-A", model.Tuesday, "10:00-11:00")
	b.Department = "MT"
	c := entry("PHY101", "PH-A", model.Friday, "11:00-12:00")
	c.Department = "PH"
	entries := []model.TimetableEntry{a, b, c}

	got := Filter(entries, []string{"MATH201"}, []string{"PH"})
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(got), got)
	}
	// Original relative order, not selection order.
	if got[0].CourseCode != "MATH201" || got[1].CourseCode != "PHY101" {
		t.Errorf("order not preserved: %+v", got)
	}
}

func TestFilterEmptySelection(t *testing.T) {
	entries := []model.TimetableEntry{
		entry("CS101", "CS-A", model.Monday, "09:00-10:30"),
	}

	got := Filter(entries, nil, nil)
	if got == nil {
		t.Fatal("result must be an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("empty selection returned %d entries, want 0", len(got))
	}
}

func TestFilterWhitespaceSelectionValues(t *testing.T) {
	entries := []model.TimetableEntry{
		entry("CS101", "CS-A", model.Monday, "09:00-10:30"),
	}

	if got := Filter(entries, []string{"  ", ""}, []string{" "}); len(got) != 0 {
		t.Errorf("blank selection values matched entries: %+v", got)
	}
	if got := Filter(entries, []string{" CS101 "}, nil); len(got) != 1 {
		t.Errorf("padded course code not trimmed: %+v", got)
	}
}

func TestFilterNoDepartmentNeverMatches(t *testing.T) {
	e := entry("CS101", "CS-A", model.Monday, "09:00-10:30")
	// Department deliberately left empty.

	if got := Filter([]model.TimetableEntry{e}, nil, []string{""}); len(got) != 0 {
		t.Errorf("entry without department matched empty department selection: %+v", got)
	}
}
