package parser

import (
	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/date"
	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/location"
	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/models"
)

// Field positions in a work history row. The header names these columns
// Company, Job Title, Start Date, End Date, Address, Supervisor Name,
// Description and Reason for Leaving; decoding is positional, the header
// text itself is never inspected.
const (
	fieldCompany = iota
	fieldPosition
	fieldStartDate
	fieldEndDate
	fieldAddress
	fieldSupervisor
	fieldDescription
	fieldReason
)

// minRecordFields is how many leading fields a data row must carry,
// everything up to and including the description. The supervisor and
// reason columns are read past but never used.
const minRecordFields = fieldDescription + 1

// decodeRows converts raw rows into work history entries. The first row is
// the header and is skipped; the rest are decoded in source order and the
// first bad row aborts the whole decode.
func (p *Parser) decodeRows(rows [][]string) ([]models.WorkHistory, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	entries := make([]models.WorkHistory, 0, len(rows)-1)
	for i, row := range rows[1:] {
		entry, err := DecodeRow(row, i+1)
		if err != nil {
			return nil, err
		}
		p.logger.Debug("decoded row", "row", i+1, "company", entry.Company, "end_date", entry.EndDate)
		entries = append(entries, entry)
	}
	return entries, nil
}

// DecodeRow converts one raw data row into a work history entry. ordinal is
// the 1-based position of the row among the data rows, header excluded, and
// is carried into any decode error.
func DecodeRow(row []string, ordinal int) (models.WorkHistory, error) {
	if len(row) < minRecordFields {
		return models.WorkHistory{}, &MalformedRecordError{Row: ordinal, Fields: len(row)}
	}

	start, err := date.Parse(row[fieldStartDate])
	if err != nil {
		return models.WorkHistory{}, &DateFormatError{Row: ordinal, Role: RoleStart, Value: row[fieldStartDate], Err: err}
	}

	end, err := date.Parse(row[fieldEndDate])
	if err != nil {
		return models.WorkHistory{}, &DateFormatError{Row: ordinal, Role: RoleEnd, Value: row[fieldEndDate], Err: err}
	}

	return models.WorkHistory{
		Company:          row[fieldCompany],
		Position:         row[fieldPosition],
		StartDate:        start,
		EndDate:          end,
		Location:         location.Extract(row[fieldAddress]),
		Responsibilities: row[fieldDescription],
	}, nil
}
