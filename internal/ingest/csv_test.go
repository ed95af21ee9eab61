package ingest

import (
	"strings"
	"testing"
)

func TestCSV(t *testing.T) {
	in := strings.Join([]string{
		"Course,Section,Day,Time,Class",
		"CS101,CS-A,Monday,09:00-10:30,R-101",
		"MATH201,MT-A,Tuesday,10:00-11:00,B-201",
	}, "\n")

	rows, err := CSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["Course"] != "CS101" || rows[0]["Time"] != "09:00-10:30" {
		t.Errorf("first row mismatch: %+v", rows[0])
	}
	if rows[1]["Class"] != "B-201" {
		t.Errorf("second row mismatch: %+v", rows[1])
	}
}

func TestCSVShortRecords(t *testing.T) {
	in := strings.Join([]string{
		"Course,Section,Day,Time",
		"CS101,CS-A,Monday", // no Time cell
	}, "\n")

	rows, err := CSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if _, ok := rows[0]["Time"]; ok {
		t.Errorf("missing cell should be absent from the row map, got %+v", rows[0])
	}
}

func TestCSVEmptyInput(t *testing.T) {
	rows, err := CSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if rows != nil {
		t.Errorf("got %+v, want nil for empty input", rows)
	}
}

func TestReadUnsupportedExtension(t *testing.T) {
	_, err := Read(strings.NewReader("x"), "timetable.pdf")
	if err != ErrUnsupportedFormat {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
}
