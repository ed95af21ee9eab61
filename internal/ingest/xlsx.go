package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/edfast/edfast-backend/internal/timetable"
	"github.com/xuri/excelize/v2"
)

// Sheets that never hold schedule data.
var skippedSheets = map[string]bool{
	"welcome":      true,
	"info":         true,
	"instructions": true,
}

// XLSX reads a workbook where each sheet holds one day's tabular schedule
// with a header row. Sheet names like "Monday" or "Monday (May 12, 2025)"
// supply the Day value for rows that lack a Day column of their own.
func XLSX(r io.Reader) ([]timetable.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var rows []timetable.RawRow
	for _, sheet := range f.GetSheetList() {
		if skippedSheets[strings.ToLower(strings.TrimSpace(sheet))] {
			continue
		}

		records, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		if len(records) < 2 {
			continue
		}

		// "Monday (May 12, 2025)" → "Monday"
		sheetDay := strings.TrimSpace(strings.SplitN(sheet, "(", 2)[0])

		header := records[0]
		for _, record := range records[1:] {
			row := make(timetable.RawRow, len(header)+1)
			for i, col := range header {
				if i < len(record) {
					row[col] = record[i]
				}
			}
			if row["Day"] == "" && row["day"] == "" {
				row["Day"] = sheetDay
			}
			rows = append(rows, row)
		}
	}

	return rows, nil
}
