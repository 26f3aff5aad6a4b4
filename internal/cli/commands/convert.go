package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hydrotools/insitulog/pkg/config"
	"github.com/hydrotools/insitulog/pkg/detector"
	"github.com/hydrotools/insitulog/pkg/output"
	"github.com/hydrotools/insitulog/pkg/reader"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ConvertOptions holds command-line options for the convert command.
type ConvertOptions struct {
	Config         string
	Format         string
	Output         string
	OutputFile     string
	Pretty         bool
	DateTimeLayout string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <log-file>",
		Short: "Convert an instrument log to JSON or CSV",
		Long: `Convert an instrument log export into a normalized table plus metadata.

The input format is detected from the file extension and content; use
--format to force one. Delimited exports with malformed rows still
produce output: good rows are converted, bad rows are reported on
stderr.

Exit codes:
  0 - Converted without problems
  1 - Converted, but some rows were dropped
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Configuration file (YAML)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Input format (csv|txt|html|zip); default: detect")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Output format (json|csv); default: json")
	cmd.Flags().StringVarP(&opts.OutputFile, "output-file", "o", "", "Write output to file instead of stdout")
	cmd.Flags().BoolVar(&opts.Pretty, "pretty", false, "Indent JSON output")
	cmd.Flags().StringVar(&opts.DateTimeLayout, "datetime-layout", "", "Go time layout for timestamp fields")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, opts *ConvertOptions) error {
	logFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(ctx, opts)
	if err != nil {
		return err
	}

	format, err := resolveFormat(ctx, cfg, logFile)
	if err != nil {
		return err
	}

	// #nosec G304 - path is provided by user via CLI
	file, err := os.Open(logFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer file.Close()

	r := reader.NewReader(cfg.DateTime.Parser(), cfg.ReaderOptions()...)

	result, err := r.Read(file, format)
	if err != nil {
		// A partial result is still worth emitting: keep the recovered
		// rows, report the dropped ones, and exit nonzero.
		var partial *reader.PartialResultError
		if !errors.As(err, &partial) {
			return fmt.Errorf("reading %s: %w", logFile, err)
		}
		result = partial.Data
		for _, rowErr := range partial.RowErrors {
			fmt.Fprintf(os.Stderr, "dropped row: %v\n", rowErr)
		}
		ExitCode = 1
	}

	formatter, err := output.New(cfg.Output.Format, output.FormatOptions{Pretty: cfg.Output.Pretty})
	if err != nil {
		return err
	}

	w, closeOutput, err := openOutput(opts.OutputFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	if err := formatter.Format(ctx, result, w); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}

// resolveConfig loads the config file when given and layers the
// command-line flags on top.
func resolveConfig(ctx context.Context, opts *ConvertOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.Config != "" {
		loaded, err := config.Load(ctx, opts.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.Output != "" {
		cfg.Output.Format = opts.Output
	}
	if opts.Pretty {
		cfg.Output.Pretty = true
	}
	if opts.DateTimeLayout != "" {
		cfg.DateTime.Layout = opts.DateTimeLayout
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveFormat returns the forced input format, or detects one from
// the file.
func resolveFormat(ctx context.Context, cfg *config.Config, logFile string) (reader.Format, error) {
	if cfg.Format != "" {
		return reader.ParseFormat(cfg.Format)
	}

	detected, err := detector.New().DetectFromFile(ctx, logFile)
	if err != nil {
		return "", fmt.Errorf("detecting format of %s: %w", logFile, err)
	}
	return detected.Format, nil
}

// openOutput opens the output destination. An empty path means stdout.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	// #nosec G304 - path is provided by user via CLI
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
