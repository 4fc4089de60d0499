package parser

import "fmt"

// DateRole names which date field of a row failed to decode.
type DateRole string

const (
	RoleStart DateRole = "start date"
	RoleEnd   DateRole = "end date"
)

// MalformedRecordError reports a data row with too few fields. Row is the
// 1-based position among the data rows; the header row is not counted.
type MalformedRecordError struct {
	Row    int
	Fields int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("row %d: record has %d fields, need at least %d",
		e.Row, e.Fields, minRecordFields)
}

// DateFormatError reports a date field that does not hold a valid
// MM/DD/YYYY date. It carries the raw text and the field role so the
// message shows the user exactly what was rejected and where.
type DateFormatError struct {
	Row   int
	Role  DateRole
	Value string
	Err   error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("row %d: invalid %s: %v", e.Row, e.Role, e.Err)
}

func (e *DateFormatError) Unwrap() error { return e.Err }
