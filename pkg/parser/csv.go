package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// readCSVRows reads all rows, header included, from comma-separated data.
// Quoted fields keep embedded commas, quotes and newlines exactly as
// written. The field count is left flexible; short rows are caught by the
// decoder, which knows how many fields a record needs.
func readCSVRows(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}
