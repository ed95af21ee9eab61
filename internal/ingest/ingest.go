// Package ingest extracts raw key→value rows from uploaded timetable
// files. It owns file-format concerns only; interpreting the rows is the
// timetable package's job.
package ingest

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/edfast/edfast-backend/internal/timetable"
)

// ErrUnsupportedFormat reports a file extension the ingester cannot read.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Read extracts raw rows from r based on the file's extension.
// Supported: .csv, .xlsx.
func Read(r io.Reader, filename string) ([]timetable.RawRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return CSV(r)
	case ".xlsx":
		return XLSX(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}
