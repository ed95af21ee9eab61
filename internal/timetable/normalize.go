package timetable

import (
	"strings"

	"github.com/edfast/edfast-backend/internal/model"
)

// RawRow is one uploaded row as extracted by the ingestion layer:
// a flat column-header → cell-value mapping.
type RawRow map[string]string

// WarningCode classifies why a row was skipped during normalization.
type WarningCode string

const (
	WarnMalformedTimeRange   WarningCode = "MALFORMED_TIME_RANGE"
	WarnMissingRequiredField WarningCode = "MISSING_REQUIRED_FIELD"
)

// RowWarning records a skipped row. Rows are 1-based within their source.
type RowWarning struct {
	Source string      `json:"source"`
	Row    int         `json:"row"`
	Field  string      `json:"field,omitempty"`
	Code   WarningCode `json:"code"`
	Detail string      `json:"detail,omitempty"`
}

// fieldAliases maps each canonical field to the ordered list of column
// headers accepted for it. The first alias with a non-empty value wins.
var fieldAliases = map[string][]string{
	"course_code": {"Course", "course", "course_name", "CourseCode", "course_code"},
	"section":     {"Section", "section"},
	"day":         {"Day", "day"},
	"time":        {"Time", "time", "Timing"},
	"room":        {"Class", "Room", "class", "room"},
	"type":        {"Type", "type"},
	"instructor":  {"Instructor", "instructor", "Teacher"},
	"department":  {"Department", "department", "Dept"},
}

// Normalize converts raw uploaded rows into canonical entries. Rows missing
// a course code or day, or carrying an unparsable time range, are skipped
// with a recorded warning; a single bad row never aborts the pass.
func Normalize(rows []RawRow, sourceID string) ([]model.TimetableEntry, []RowWarning) {
	entries := make([]model.TimetableEntry, 0, len(rows))
	var warnings []RowWarning

	skip := func(row int, field string, code WarningCode, detail string) {
		warnings = append(warnings, RowWarning{
			Source: sourceID,
			Row:    row,
			Field:  field,
			Code:   code,
			Detail: detail,
		})
	}

	for i, raw := range rows {
		rowNum := i + 1

		course := resolve(raw, "course_code")
		if course == "" {
			skip(rowNum, "course_code", WarnMissingRequiredField, "")
			continue
		}

		dayStr := resolve(raw, "day")
		if dayStr == "" {
			skip(rowNum, "day", WarnMissingRequiredField, "")
			continue
		}
		day, ok := model.ParseDay(dayStr)
		if !ok {
			skip(rowNum, "day", WarnMissingRequiredField, "unrecognized day "+dayStr)
			continue
		}

		start, end, err := ParseTimeRange(resolve(raw, "time"))
		if err != nil {
			skip(rowNum, "time", WarnMalformedTimeRange, err.Error())
			continue
		}

		section := resolve(raw, "section")
		dept := resolve(raw, "department")
		if dept == "" && len(section) >= 2 {
			// Section labels carry the department prefix ("CS-A" → "CS")
			// when no department column exists.
			dept = section[:2]
		}

		entries = append(entries, model.TimetableEntry{
			CourseCode: course,
			Section:    section,
			Day:        day,
			StartMin:   start,
			EndMin:     end,
			Room:       resolve(raw, "room"),
			Type:       parseType(resolve(raw, "type")),
			Instructor: resolve(raw, "instructor"),
			Department: dept,
		})
	}

	return entries, warnings
}

// resolve finds the first non-empty value among the field's accepted aliases.
func resolve(raw RawRow, field string) string {
	for _, alias := range fieldAliases[field] {
		if v := strings.TrimSpace(raw[alias]); v != "" {
			return v
		}
	}
	return ""
}

// parseType maps a type label to Theory or Lab. Absent or unrecognized
// labels default to Theory, matching the upstream timetable files.
func parseType(s string) model.ClassType {
	if strings.Contains(strings.ToLower(s), "lab") {
		return model.Lab
	}
	return model.Theory
}
