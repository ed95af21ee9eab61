package timetable

import (
	"testing"

	"github.com/edfast/edfast-backend/internal/model"
)

func TestNormalize(t *testing.T) {
	rows := []RawRow{
		{"Course": "CS101", "Section": "CS-A", "Day": "Monday", "Time": "09:00-10:30", "Class": "R-101", "Type": "Theory"},
		{"course": "MATH201", "section": "MT-B", "day": "Wed", "time": "10:00-11:00", "room": "B-201"},
	}

	entries, warnings := Normalize(rows, "spring.csv")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", warnings)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	first := entries[0]
	if first.CourseCode != "CS101" || first.Section != "CS-A" || first.Day != model.Monday {
		t.Errorf("first entry mismatch: %+v", first)
	}
	if first.StartMin != 540 || first.EndMin != 630 {
		t.Errorf("first entry interval = (%d, %d), want (540, 630)", first.StartMin, first.EndMin)
	}
	if first.Room != "R-101" {
		t.Errorf("first entry room = %q, want R-101", first.Room)
	}

	second := entries[1]
	if second.Day != model.Wednesday {
		t.Errorf("abbreviated day not resolved: %+v", second)
	}
	if second.Type != model.Theory {
		t.Errorf("missing type should default to Theory, got %s", second.Type)
	}
}

func TestNormalizeAliasedKeysYieldOneEntry(t *testing.T) {
	// All three course aliases carry the same value; the row must produce
	// exactly one entry with that value, not three.
	rows := []RawRow{
		{"Course": "CS101", "course": "CS101", "course_name": "CS101", "Day": "Monday", "Time": "09:00-10:30"},
	}

	entries, warnings := Normalize(rows, "aliased.csv")
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %+v", warnings)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].CourseCode != "CS101" {
		t.Errorf("course_code = %q, want CS101", entries[0].CourseCode)
	}
}

func TestNormalizeSkipsMalformedTime(t *testing.T) {
	rows := []RawRow{
		{"Course": "CS101", "Day": "Monday", "Time": "9-10:30"},
		{"Course": "MATH201", "Day": "Monday", "Time": "10:00-11:00"},
	}

	entries, warnings := Normalize(rows, "mixed.csv")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (bad row skipped, good row kept)", len(entries))
	}
	if entries[0].CourseCode != "MATH201" {
		t.Errorf("surviving entry = %q, want MATH201", entries[0].CourseCode)
	}

	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	w := warnings[0]
	if w.Code != WarnMalformedTimeRange {
		t.Errorf("warning code = %s, want %s", w.Code, WarnMalformedTimeRange)
	}
	if w.Row != 1 || w.Source != "mixed.csv" {
		t.Errorf("warning location = %s row %d, want mixed.csv row 1", w.Source, w.Row)
	}
}

func TestNormalizeSkipsMissingRequiredFields(t *testing.T) {
	// First three rows: no course, no day, unrecognized day. Last row is good.
	rows := []RawRow{
		{"Day": "Monday", "Time": "09:00-10:30"},
		{"Course": "CS101", "Time": "09:00-10:30"},
		{"Course": "CS101", "Day": "Moonday", "Time": "09:00-10:30"},
		{"Course": "CS101", "Day": "Tuesday", "Time": "09:00-10:30"},
	}

	entries, warnings := Normalize(rows, "sparse.csv")
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if len(warnings) != 3 {
		t.Fatalf("got %d warnings, want 3", len(warnings))
	}
	for _, w := range warnings {
		if w.Code != WarnMissingRequiredField {
			t.Errorf("warning code = %s, want %s", w.Code, WarnMissingRequiredField)
		}
	}
	if warnings[0].Field != "course_code" || warnings[1].Field != "day" {
		t.Errorf("warning fields = %q/%q, want course_code/day", warnings[0].Field, warnings[1].Field)
	}
}

func TestNormalizeLabTypeAndDepartmentFallback(t *testing.T) {
	rows := []RawRow{
		{"Course": "EE200", "Section": "EE-A", "Day": "Thursday", "Time": "14:00-17:00", "Type": "Lab"},
		{"Course": "CS101", "Section": "CS-B", "Day": "Monday", "Time": "09:00-10:30", "Department": "SE"},
	}

	entries, _ := Normalize(rows, "labs.csv")
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if entries[0].Type != model.Lab {
		t.Errorf("lab type not recognized: %+v", entries[0])
	}
	if entries[0].Department != "EE" {
		t.Errorf("department fallback = %q, want EE (from section prefix)", entries[0].Department)
	}
	if entries[1].Department != "SE" {
		t.Errorf("explicit department overridden: got %q, want SE", entries[1].Department)
	}
}
