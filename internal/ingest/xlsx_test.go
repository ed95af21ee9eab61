package ingest

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Monday (May 12, 2025)"); err != nil {
		t.Fatal(err)
	}
	monday := [][]interface{}{
		{"Course", "Section", "Time", "Class"},
		{"CS101", "CS-A", "09:00-10:30", "R-101"},
		{"MATH201", "MT-A", "10:00-11:00", "B-201"},
	}
	for i, row := range monday {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Monday (May 12, 2025)", cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := f.NewSheet("Tuesday"); err != nil {
		t.Fatal(err)
	}
	tuesday := [][]interface{}{
		{"Course", "Section", "Day", "Time"},
		{"PHY101", "PH-A", "Friday", "11:00-12:00"},
	}
	for i, row := range tuesday {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Tuesday", cell, &row); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := f.NewSheet("Info"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetCellValue("Info", "A1", "Generated by the registrar office"); err != nil {
		t.Fatal(err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestXLSX(t *testing.T) {
	buf := buildWorkbook(t)

	rows, err := XLSX(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("XLSX: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (Info sheet skipped): %+v", len(rows), rows)
	}

	// Sheet name supplies the day, date suffix stripped.
	if rows[0]["Day"] != "Monday" {
		t.Errorf("rows[0] day = %q, want Monday from sheet name", rows[0]["Day"])
	}
	if rows[0]["Course"] != "CS101" || rows[1]["Course"] != "MATH201" {
		t.Errorf("Monday rows mismatch: %+v", rows[:2])
	}

	// An explicit Day column wins over the sheet name.
	if rows[2]["Day"] != "Friday" {
		t.Errorf("rows[2] day = %q, want the row's own Friday", rows[2]["Day"])
	}
}

func TestXLSXHeaderOnlySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "Monday"); err != nil {
		t.Fatal(err)
	}
	header := []interface{}{"Course", "Section", "Time"}
	if err := f.SetSheetRow("Monday", "A1", &header); err != nil {
		t.Fatal(err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	rows, err := XLSX(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("XLSX: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("header-only sheet produced rows: %+v", rows)
	}
}

func TestXLSXNotAWorkbook(t *testing.T) {
	if _, err := XLSX(bytes.NewReader([]byte("not a zip archive"))); err == nil {
		t.Error("expected an error for garbage input")
	}
}
