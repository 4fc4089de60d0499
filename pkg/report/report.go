// Package report renders work history entries into the fixed text layout.
package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/models"
)

// Render produces the report for the given entries, in the order given.
// Blocks are numbered sequentially from 1 regardless of the source data and
// every block, the last included, is followed by one blank line. Field
// values pass through verbatim, so embedded newlines in responsibilities
// reshape the block rather than being escaped.
func Render(entries []models.WorkHistory) []byte {
	var buf bytes.Buffer
	for i, entry := range entries {
		fmt.Fprintf(&buf, "Work History %d\n", i+1)
		fmt.Fprintf(&buf, "Company: %s\n", entry.Company)
		fmt.Fprintf(&buf, "Position: %s\n", entry.Position)
		fmt.Fprintf(&buf, "Start Date: %s\n", entry.StartDate.MonthYear())
		fmt.Fprintf(&buf, "End Date: %s\n", entry.EndDate.MonthYear())
		fmt.Fprintf(&buf, "Location: %s\n", entry.Location)
		fmt.Fprintf(&buf, "Responsibilities: %s\n", entry.Responsibilities)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Write renders the entries and writes the result to w.
func Write(w io.Writer, entries []models.WorkHistory) error {
	if _, err := w.Write(Render(entries)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
