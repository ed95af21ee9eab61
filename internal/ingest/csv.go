package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/edfast/edfast-backend/internal/timetable"
)

// CSV reads a comma-separated file whose first record is the header row.
// Short records are tolerated; missing cells simply stay absent from the
// row map so the normalizer can flag the field.
func CSV(r io.Reader) ([]timetable.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows []timetable.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		row := make(timetable.RawRow, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
