package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/config"
	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/plan"
	"github.com/Andrew-James-Miller/csv-to-work-history-parser/pkg/service"
)

var (
	cliFilters filters
	cfgFile    string
	dryRun     bool
)

var rootCmd = &cobra.Command{
	Use:   "workhist <input_file> [output_file]",
	Short: "Format a work history file into a chronological report",
	Long: `workhist reads an employment history table (CSV, XLS or XLSX),
validates and normalizes every record, and writes a fixed-layout text
report ordered by end date, most recent first.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		inputPath := args[0]
		outputPath := cfg.Output
		if len(args) == 2 {
			outputPath = args[1]
		}

		if err := checkPaths(inputPath, outputPath); err != nil {
			return err
		}

		processor := service.NewProcessor(cfg, logger)
		if err := processor.ProcessFile(inputPath, outputPath); err != nil {
			return err
		}

		fmt.Printf("Successfully created %s\n", outputPath)
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] <input_file>",
	Short: "Decode a work history file and pretty-print the entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		filter, err := cliFilters.toFilterFunc()
		if err != nil {
			return err
		}

		if err := checkPaths(args[0], ""); err != nil {
			return err
		}

		processor := service.NewProcessor(cfg, logger)
		return processor.Inspect(args[0], filter)
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch [flags] <plan_file>",
	Short: "Format every file named by a YAML plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}

		if dryRun {
			fmt.Printf("Plan preview for %s\n", args[0])
			p.Print()
			return nil
		}

		processor := service.NewProcessor(cfg, logger)
		for _, job := range p.Jobs {
			outputPath := job.OutputPath()
			if err := checkPaths(job.Input, outputPath); err != nil {
				return err
			}
			if err := processor.ProcessFile(job.Input, outputPath); err != nil {
				return fmt.Errorf("job %s: %w", job.Input, err)
			}
			fmt.Printf("Successfully created %s\n", outputPath)
		}
		return nil
	},
}

// setup builds the configuration and the logger shared by every command.
func setup(cmd *cobra.Command) (*config.Config, *log.Logger, error) {
	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "workhist",
		Level:           level,
	})
	return cfg, logger, nil
}

// checkPaths verifies the input file and the output's parent directory
// before the pipeline runs, so path mistakes surface as path errors rather
// than read or create failures halfway through. An empty outputPath skips
// the output check.
func checkPaths(inputPath, outputPath string) error {
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input file %s does not exist", inputPath)
	}
	if outputPath != "" {
		if dir := filepath.Dir(outputPath); dir != "." {
			info, err := os.Stat(dir)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("output directory %s does not exist", dir)
			}
		}
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is workhist.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	inspectCmd.Flags().StringVar(&cliFilters.company, "company", "", "Only entries whose company contains this text (case insensitive)")
	inspectCmd.Flags().StringVar(&cliFilters.from, "from", "", "Only entries ending on or after this date (MM/DD/YYYY)")
	inspectCmd.Flags().StringVar(&cliFilters.to, "to", "", "Only entries ending on or before this date (MM/DD/YYYY)")

	batchCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan without running it")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
