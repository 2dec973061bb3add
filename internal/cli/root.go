// Package cli implements the qagen command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/qagen/internal/version"
)

// NewRootCmd builds the qagen command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "qagen",
		Short: "Generate question/answer pairs from prose",
		Long: `qagen reads a document, splits it into paragraphs and derives
question/answer pairs from headings and key sentences. Each question gets
short, medium and long answer variants.

Supported inputs: .txt .json .md .html .csv .pdf .docx
Output formats:   json txt md html csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}
	root.SetVersionTemplate(fmt.Sprintf("qagen %s\n", version.String()))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline details to stderr")

	logger := func(w io.Writer) *slog.Logger {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	}

	root.AddCommand(newExtractCmd(logger))
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qagen %s\n", version.String())
		},
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}
