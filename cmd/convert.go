// Package cmd — convert command.
// Runs the compile pipeline on one document or a directory of documents:
// load → reduce → extract → render → write.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/gaurav-prasanna/tgmarkup/core"
	"github.com/gaurav-prasanna/tgmarkup/core/output"
	"github.com/gaurav-prasanna/tgmarkup/core/render"
	"github.com/gaurav-prasanna/tgmarkup/source"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagAll       bool
	flagJSON      bool
	flagHTML      bool
	flagMarkdown  bool
	flagPDF       bool
	flagOutputDir string
)

var convertCmd = &cobra.Command{
	Use:   "convert <path>",
	Short: "Compile a markup document to the specified output format",
	Long: `Convert loads a markup document, compiles it into a Telegram message and
writes it in the chosen format: Bot API JSON, Telegram HTML, a Markdown
preview or a PDF preview.

Examples:
  tgmarkup convert welcome.yaml --json
  tgmarkup convert welcome.yaml --html --output_dir ./out
  tgmarkup convert ./messages --all --markdown`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVar(&flagAll, "all", false, "Treat <path> as a directory and convert every document below it")

	// Output format flags (mutually exclusive).
	convertCmd.Flags().BoolVar(&flagJSON, "json", false, "Output Bot API JSON")
	convertCmd.Flags().BoolVar(&flagHTML, "html", false, "Output Telegram HTML")
	convertCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output a Markdown preview")
	convertCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output a PDF preview")

	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]

	if err := validateFlags(); err != nil {
		return err
	}
	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	if flagAll {
		return runAll(cmd, path, renderer, writer)
	}
	return runOnly(cmd, path, renderer, writer)
}

// runOnly converts a single document.
func runOnly(cmd *cobra.Command, path string, renderer core.Renderer, writer *output.Writer) error {
	data, err := processFile(path, renderer)
	if err != nil {
		return err
	}
	out, err := writer.Write(path, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), okf("✓ Written: %s", out))
	return nil
}

// runAll discovers every document below root and converts each one.
// Failures are reported per file; the command fails if any file failed.
func runAll(cmd *cobra.Command, root string, renderer core.Renderer, writer *output.Writer) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	fmt.Fprintln(stdout, infof("Discovering documents in %s...", root))

	files, err := source.DiscoverAll(root)
	if err != nil {
		return fmt.Errorf("discovering documents: %w", err)
	}
	fmt.Fprintf(stdout, "Found %d documents to process\n", len(files))

	var errCount int
	for i, path := range files {
		fmt.Fprintf(stdout, "[%d/%d] Processing %s\n", i+1, len(files), path)

		data, err := processFile(path, renderer)
		if err != nil {
			fmt.Fprintln(stderr, errf("  ✗ Error: %v", err))
			errCount++
			continue
		}

		out, err := writer.WriteAll(root, path, data, renderer.Extension())
		if err != nil {
			fmt.Fprintln(stderr, errf("  ✗ Write error: %v", err))
			errCount++
			continue
		}
		fmt.Fprintln(stdout, okf("  ✓ Written: %s", out))
	}

	if errCount > 0 {
		return fmt.Errorf("%d/%d documents failed", errCount, len(files))
	}
	return nil
}

// processFile runs a single document through the pipeline.
func processFile(path string, renderer core.Renderer) ([]byte, error) {
	doc, err := source.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	msg, err := doc.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	data, err := renderer.Render(msg)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	slog.Debug("document converted", "component", "cmd", "operation", "convert",
		"path", path, "text_length", msg.Text.Len(), "entities", len(msg.Text.Entities()), "keyboard", msg.Keyboard != nil)
	return data, nil
}

// validateFlags checks that exactly one output format is chosen.
func validateFlags() error {
	formatCount := 0
	for _, set := range []bool{flagJSON, flagHTML, flagMarkdown, flagPDF} {
		if set {
			formatCount++
		}
	}

	if formatCount == 0 {
		return fmt.Errorf("exactly one output format is required: --json, --html, --markdown, or --pdf")
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagJSON:
		return render.NewJSONRenderer(), nil
	case flagHTML:
		return render.NewHTMLRenderer(), nil
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("no output format selected")
	}
}
