package parser

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"
)

// maxSheetRows caps how many rows are scanned out of a spreadsheet.
const maxSheetRows = 1000

// readXLSRows reads all rows, header included, from the first sheet of a
// legacy XLS workbook.
func readXLSRows(data []byte, charset string) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), charset)
	if err != nil {
		return nil, fmt.Errorf("error creating workbook: %w", err)
	}

	rows := workbook.ReadAllCells(maxSheetRows)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in sheet")
	}

	return padRows(rows), nil
}

// padRows pads every row out to the header width. Spreadsheet readers drop
// trailing empty cells, which would otherwise turn a blank description or
// reason column into a short row.
func padRows(rows [][]string) [][]string {
	width := len(rows[0])
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows
}
