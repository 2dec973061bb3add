package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/qagen/internal/config"
	"github.com/dgallion1/qagen/internal/export"
	"github.com/dgallion1/qagen/internal/extract"
	"github.com/dgallion1/qagen/internal/parser"
	"github.com/dgallion1/qagen/internal/pipeline"
)

// stdinFilename is the name used when the document is read from stdin.
const stdinFilename = "stdin.txt"

type extractOptions struct {
	short, medium, long string
	format              string
	output              string
	lang                string
	inputType           string
	pace                time.Duration
	noProgress          bool
}

func newExtractCmd(logger func(io.Writer) *slog.Logger) *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract question/answer pairs from a document",
		Long: `Extract question/answer pairs from a document, or from stdin when no
file is given. The output format follows --format, else the extension of
--output, else JSON. Without --output the result is printed to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, opts, logger(cmd.ErrOrStderr()))
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.short, "short", "", "Short answer length in words (default 30)")
	f.StringVar(&opts.medium, "medium", "", "Medium answer length in words (default 50)")
	f.StringVar(&opts.long, "long", "", "Long answer length in words (default 75)")
	f.StringVarP(&opts.format, "format", "f", "", "Output format: json, txt, md, html, csv")
	f.StringVarP(&opts.output, "output", "o", "", "Write the result to this file")
	f.StringVarP(&opts.lang, "lang", "l", "", "Question language: tr or en (default from QAGEN_LANGUAGE, else tr)")
	f.StringVar(&opts.inputType, "input-type", "", "Parse the input as this file type, e.g. md or html")
	f.DurationVar(&opts.pace, "pace", 0, "Delay after each paragraph, e.g. 50ms")
	f.BoolVar(&opts.noProgress, "no-progress", false, "Do not draw the progress bar")
	return cmd
}

func runExtract(cmd *cobra.Command, args []string, opts extractOptions, log *slog.Logger) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	locale, err := cfg.Locale()
	if opts.lang != "" {
		locale, err = extract.LocaleFor(opts.lang)
	}
	if err != nil {
		return err
	}
	limits := cfg.WordLimits().Parse(opts.short, opts.medium, opts.long)

	format, err := chooseFormat(opts.format, opts.output)
	if err != nil {
		return err
	}

	source, text, err := readInput(cmd, args, opts.inputType, parser.Loader{
		Heading:              locale.Upper,
		PDFFallbackPdftotext: cfg.PDFFallbackPdftotext,
	})
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		printWarning(stderr, "the document contains no text; nothing to extract")
		return pipeline.ErrEmptyInput
	}
	log.Debug("loaded document", "source", source, "chars", len(text), "language", locale.Code, "limits", limits)

	pace := opts.pace
	if !cmd.Flags().Changed("pace") {
		pace = cfg.Pace
	}

	start := time.Now()
	run := pipeline.Start(text, limits, extract.Options{Locale: locale, Pace: pace})
	result, err := waitWithProgress(run, stderr, !opts.noProgress && isTerminal(stderr))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	log.Debug("extraction finished", "pairs", len(result), "duration_ms", elapsed.Milliseconds())

	if err := writeResult(stdout, opts.output, format, result); err != nil {
		return err
	}

	if len(result) == 0 {
		printWarning(stderr, "no question/answer pairs were produced")
	}
	fmt.Fprintln(stderr, formatSummary(summary{
		Source:  source,
		Pairs:   len(result),
		Answers: result.AnswerCount(),
		Elapsed: elapsed,
		Output:  opts.output,
		Format:  string(format),
	}))
	return nil
}

// chooseFormat resolves the output format from --format or the output path.
func chooseFormat(name, output string) (export.Format, error) {
	if name != "" {
		return export.ParseFormat(name)
	}
	if output != "" {
		f, err := export.FormatForPath(output)
		if err != nil {
			return "", fmt.Errorf("cannot infer format from %q, use --format: %w", output, err)
		}
		return f, nil
	}
	return export.FormatJSON, nil
}

// readInput loads the named file, or stdin when args is empty.
func readInput(cmd *cobra.Command, args []string, inputType string, loader parser.Loader) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		text, err := loader.Load(bytes.NewReader(data), inputName(stdinFilename, inputType))
		return "stdin", text, err
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	text, err := loader.Load(f, inputName(filepath.Base(path), inputType))
	return path, text, err
}

// inputName picks the name the parser is chosen by. --input-type replaces
// the extension; an unknown or missing extension is read as plain text.
func inputName(name, inputType string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if inputType != "" {
		return base + "." + strings.TrimPrefix(inputType, ".")
	}
	if !parser.IsSupportedExtension(name) {
		return name + ".txt"
	}
	return name
}

// waitWithProgress drains run, drawing the bar on w when show is set.
func waitWithProgress(run *pipeline.Run, w io.Writer, show bool) (extract.Result, error) {
	if !show {
		return run.Wait()
	}
	progress := run.Progress()
	for {
		select {
		case p, ok := <-progress:
			if !ok {
				progress = nil
				continue
			}
			drawProgress(w, p)
		case out := <-run.Done():
			clearProgress(w)
			return out.Result, out.Err
		}
	}
}

// writeResult renders result to path, or to stdout when path is empty.
// A failed file write removes the partial file.
func writeResult(stdout io.Writer, path string, format export.Format, result extract.Result) error {
	if path == "" {
		return export.Write(stdout, format, result)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	werr := export.Write(f, format, result)
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
