// Package cli provides the command-line interface for insitulog.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hydrotools/insitulog/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "insitulog",
		Short: "Convert water-quality instrument logs to JSON or CSV",
		Long: `insitulog converts the log exports of In-Situ water-quality instruments
into a normalized table plus the log's metadata.

It reads:
  - Delimited exports (.csv)
  - Fixed-width text dumps (.txt, UTF-16LE)
  - Structured HTML reports (.htm/.html)
  - Zip-wrapped HTML reports (.zip)

The input format is detected from the file; use --format to force one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
