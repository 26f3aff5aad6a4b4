package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hydrotools/insitulog/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <log-file>",
		Short: "Detect the export format of a log file",
		Long: `Identify which export format a log file uses.

The file extension is checked first; unrecognized extensions fall back
to content sniffing (zip magic number, UTF-16LE byte order mark, HTML
prologue, delimited header line).

Example:
  insitulog detect sample.wsl
  insitulog detect -o json export.dat`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	logFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		return fmt.Errorf("log file not found: %s", logFile)
	}

	result, err := detector.New().DetectFromFile(ctx, logFile)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	switch opts.Output {
	case "json":
		return outputDetectJSON(cmd, result, logFile)
	default:
		return outputDetectText(cmd, result, logFile)
	}
}

func outputDetectText(cmd *cobra.Command, result *detector.Result, logFile string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "File: %s\n", logFile)
	fmt.Fprintf(w, "Format: %s\n", result.Format)
	fmt.Fprintf(w, "Detected by: %s (%s)\n", result.Source, result.Rule)
	return nil
}

// detectJSON is the JSON shape of a detection result.
type detectJSON struct {
	File   string `json:"file"`
	Format string `json:"format"`
	Source string `json:"source"`
	Rule   string `json:"rule"`
}

func outputDetectJSON(cmd *cobra.Command, result *detector.Result, logFile string) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(detectJSON{
		File:   logFile,
		Format: string(result.Format),
		Source: result.Source,
		Rule:   result.Rule,
	})
}
