package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/quizkey/quizkey/pkg/extract"
	"github.com/quizkey/quizkey/pkg/types"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	extractFormat      string
	extractInputFormat string
	extractColor       string
)

// styles holds color formatters for the human-readable answer table
type styles struct {
	heading  *color.Color
	matched  *color.Color
	notFound *color.Color
	banner   *color.Color
}

// newStyles creates color formatters for extract output
// enabled=false respects --color=never and the NO_COLOR env var
func newStyles(enabled bool) *styles {
	s := &styles{
		heading:  color.New(color.Bold),
		matched:  color.New(color.FgHiGreen),
		notFound: color.New(color.FgYellow),
		banner:   color.New(color.Bold, color.FgYellow),
	}

	if !enabled {
		s.heading.DisableColor()
		s.matched.DisableColor()
		s.notFound.DisableColor()
		s.banner.DisableColor()
	}

	return s
}

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract the answer key from a quiz document",
	Long: `Read a quiz document and report, for each question, which option slot
verifies against the stored answer hash. Reads from stdin when no file is
given or the file is "-".

Questions whose hash matches no option are reported as "not found"; this is
a warning, not an error, and the rest of the table still renders.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractFormat, "format", "human", "Output format: human, json")
	extractCmd.Flags().StringVar(&extractInputFormat, "input-format", "auto", "Input format: auto, json, yaml")
	extractCmd.Flags().StringVar(&extractColor, "color", "auto", "Color output: auto, always, never")
}

func runExtract(cmd *cobra.Command, args []string) error {
	raw, path, err := readQuizInput(cmd, args)
	if err != nil {
		return err
	}

	doc, err := parseQuizDocument(raw, path)
	if err != nil {
		return err
	}

	report, err := extract.New().ExtractDocument(doc)
	if err != nil {
		return err
	}

	switch extractFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case "human":
		return outputHuman(cmd, report)
	default:
		return fmt.Errorf("unknown output format: %s", extractFormat)
	}
}

// readQuizInput returns the raw document bytes and the source path
// ("" for stdin).
func readQuizInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
		return raw, "", nil
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("reading quiz file: %w", err)
	}
	return raw, args[0], nil
}

// parseQuizDocument picks the decoder from --input-format, falling back to
// the file extension, then JSON.
func parseQuizDocument(raw []byte, path string) (*types.Document, error) {
	format := extractInputFormat
	if format == "auto" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}

	switch format {
	case "json":
		return extract.ParseDocument(raw)
	case "yaml":
		return extract.ParseDocumentYAML(raw)
	default:
		return nil, fmt.Errorf("unknown input format: %s", format)
	}
}

// colorEnabled resolves --color against the terminal and NO_COLOR.
func colorEnabled() bool {
	switch extractColor {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}

func outputHuman(cmd *cobra.Command, report *extract.Report) error {
	out := cmd.OutOrStdout()
	s := newStyles(colorEnabled())

	fmt.Fprintf(out, "%s\n", s.heading.Sprint("QUESTION  CORRECT OPTION"))
	for _, r := range report.Results {
		if r.Matched() {
			fmt.Fprintf(out, "%8d  %s\n", r.Number, s.matched.Sprintf("option %d", *r.CorrectOption))
		} else {
			fmt.Fprintf(out, "%8d  %s\n", r.Number, s.notFound.Sprint("not found"))
		}
	}
	fmt.Fprintf(out, "\n%d questions, %d unmatched\n", len(report.Results), report.Unmatched)

	if report.HasUnmatched() && !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n",
			s.banner.Sprintf("warning: %d question(s) had no matching option", report.Unmatched))
	}
	return nil
}
