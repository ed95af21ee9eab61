package timetable

import (
	"reflect"
	"testing"

	"github.com/edfast/edfast-backend/internal/model"
)

func TestSummarize(t *testing.T) {
	lab := entry("EE200", "EE-A", model.Thursday, "14:00-17:00")
	lab.Type = model.Lab
	lab.Room = "C-GPU Lab"

	a := entry("CS101", "CS-A", model.Monday, "09:00-10:30")
	a.Type = model.Theory
	a.Room = "R-101"
	b := entry("CS101", "CS-A", model.Wednesday, "09:00-10:30")
	b.Type = model.Theory
	b.Room = "R-101"
	c := entry("MATH201", "MT-A", model.Monday, "10:00-11:00")
	c.Type = model.Theory

	s := Summarize([]model.TimetableEntry{a, b, c, lab})
	want := Stats{
		TotalEntries:  4,
		UniqueCourses: 3,
		TheoryClasses: 3,
		LabClasses:    1,
		ActiveDays:    3,
		UniqueRooms:   2,
	}
	if s != want {
		t.Errorf("Summarize = %+v, want %+v", s, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (Stats{}) {
		t.Errorf("Summarize(nil) = %+v, want zero stats", s)
	}
}

func TestCourses(t *testing.T) {
	entries := []model.TimetableEntry{
		entry("MATH201", "MT-A", model.Monday, "10:00-11:00"),
		entry("CS101", "CS-A", model.Monday, "09:00-10:30"),
		entry("CS101", "CS-B", model.Tuesday, "09:00-10:30"),
	}

	got := Courses(entries)
	want := []string{"CS101", "MATH201"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Courses = %v, want %v", got, want)
	}
}
