// Package service drives the formatting pipeline: read the source file,
// decode every row, sort the entries by end date and write the report.
// Each stage consumes the complete output of the previous one; nothing is
// written until every row has decoded successfully.
package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/k0kubun/pp/v3"

	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/config"
	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/models"
	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/parser"
	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/report"
)

// FilterFunc decides whether an entry is shown by Inspect.
type FilterFunc func(models.WorkHistory) bool

type Processor struct {
	config *config.Config
	logger *log.Logger
	parser *parser.Parser

	// out receives Inspect output, os.Stdout outside of tests.
	out io.Writer
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	p := parser.New(logger)
	p.XLSCharset = cfg.XLSCharset

	return &Processor{
		config: cfg,
		logger: logger,
		parser: p,
		out:    os.Stdout,
	}
}

// ProcessFile runs the whole pipeline for one file. An empty outputPath
// falls back to the configured default. The output file is only created
// after every row has decoded, so a decode failure leaves nothing at the
// destination.
func (p *Processor) ProcessFile(inputPath, outputPath string) error {
	if outputPath == "" {
		outputPath = p.config.Output
	}

	logger := p.logger.With("run", uuid.NewString())
	logger.Info("processing file", "input", inputPath, "output", outputPath)

	sorted, err := p.load(inputPath)
	if err != nil {
		return err
	}

	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := report.Write(output, sorted); err != nil {
		output.Close()
		return err
	}
	if err := output.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	logger.Info("processed file successfully", "entries", len(sorted), "output", outputPath)
	return nil
}

// Inspect decodes and sorts the file like ProcessFile, then pretty-prints
// the entries that pass the filter instead of writing a report. A nil
// filter shows everything.
func (p *Processor) Inspect(inputPath string, filter FilterFunc) error {
	sorted, err := p.load(inputPath)
	if err != nil {
		return err
	}

	printer := pp.New()
	printer.SetOutput(p.out)
	printer.SetColoringEnabled(false)

	shown := 0
	for _, entry := range sorted {
		if filter != nil && !filter(entry) {
			continue
		}
		printer.Println(entry)
		shown++
	}

	fmt.Fprintf(p.out, "%d of %d entries shown\n", shown, len(sorted))
	return nil
}

// load reads and decodes the input file and returns the entries sorted by
// end date, most recent first.
func (p *Processor) load(inputPath string) ([]models.WorkHistory, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	entries, err := p.parser.ProcessBytes(data, filepath.Base(inputPath))
	if err != nil {
		return nil, fmt.Errorf("failed to process %s: %w", inputPath, err)
	}

	return models.SortByEndDate(entries), nil
}
