// Package parser turns raw work history files into decoded entries. It
// detects the source format (CSV, legacy XLS or XLSX), reads the raw rows
// and decodes every data row in source order, stopping at the first bad one.
package parser

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/models"
)

// FileType identifies the source format of a work history file.
type FileType string

const (
	TypeCSV  FileType = "csv"
	TypeXLS  FileType = "xls"
	TypeXLSX FileType = "xlsx"
)

// Parser decodes work history files into entries.
type Parser struct {
	logger *log.Logger

	// XLSCharset is the codepage used for text cells in legacy XLS files.
	XLSCharset string
}

// New creates a new parser instance.
func New(logger *log.Logger) *Parser {
	return &Parser{
		logger:     logger,
		XLSCharset: "utf-8",
	}
}

// ProcessBytes decodes file contents into work history entries, in source
// order. The first row is the header and is never decoded. Entries come
// back unsorted; ordering is the caller's concern.
func (p *Parser) ProcessBytes(data []byte, filename string) ([]models.WorkHistory, error) {
	fileType := DetectType(filename, data)
	p.logger.Debug("detected file type", "filename", filename, "type", fileType)

	var (
		rows [][]string
		err  error
	)
	switch fileType {
	case TypeXLS:
		rows, err = readXLSRows(data, p.XLSCharset)
	case TypeXLSX:
		rows, err = readXLSXRows(data)
	default:
		rows, err = readCSVRows(data)
	}
	if err != nil {
		return nil, err
	}

	entries, err := p.decodeRows(rows)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("parsing complete", "filename", filename, "type", fileType, "entries", len(entries))
	return entries, nil
}

// DetectType identifies the file format, by content first and extension
// second. XLSX files start with the ZIP magic and legacy XLS files with the
// OLE2 compound document magic; anything else falls back to the filename
// extension and finally to CSV.
func DetectType(filename string, data []byte) FileType {
	if len(data) >= 4 {
		if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
			return TypeXLSX
		}
		if data[0] == 0xD0 && data[1] == 0xCF && data[2] == 0x11 && data[3] == 0xE0 {
			return TypeXLS
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return TypeXLSX
	case ".xls":
		return TypeXLS
	}
	return TypeCSV
}
