package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/grepview/grepview/pkg/grepline"
	"github.com/grepview/grepview/pkg/types"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var (
	parseFormat string
	parseColor  string
)

// styles holds color formatters for human parse output
type styles struct {
	path    *color.Color
	line    *color.Color
	window  *color.Color
	skipped *color.Color
}

// newStyles creates color formatters; enabled=false turns every style plain
// regardless of the terminal.
func newStyles(enabled bool) *styles {
	s := &styles{
		path:    color.New(color.Bold, color.FgHiBlue),
		line:    color.New(color.FgHiGreen),
		window:  color.New(color.FgHiBlack),
		skipped: color.New(color.FgYellow),
	}

	for _, c := range []*color.Color{s.path, s.line, s.window, s.skipped} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

// parseEntry is one argument in json and yaml output.
type parseEntry struct {
	grepline.Result `yaml:",inline"`
	Window          *types.Window `json:"window,omitempty" yaml:"window,omitempty"`
}

var parseCmd = &cobra.Command{
	Use:   "parse <path:line:column:content>...",
	Short: "Show how result lines are parsed without running the viewer",
	Long: `Parse each argument as a grep or ag result line and print the path, line
and display window grepview would use. Lines that would be skipped are listed
as skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "human", "Output format: human, json, yaml")
	parseCmd.Flags().StringVar(&parseColor, "color", "auto", "Color output: auto, always, never")
}

func runParse(cmd *cobra.Command, args []string) error {
	results := grepline.ParseAll(args)

	switch parseFormat {
	case "human":
		enabled, err := colorEnabled(parseColor, os.Stdout)
		if err != nil {
			return err
		}
		return outputParseHuman(cmd, results, newStyles(enabled))
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(parseEntries(results))
	case "yaml":
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)
		if err := encoder.Encode(parseEntries(results)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown output format: %s", parseFormat)
	}
}

// colorEnabled resolves a --color value; auto colors only terminals.
func colorEnabled(mode string, out *os.File) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return term.IsTerminal(int(out.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode: %s", mode)
	}
}

func parseEntries(results []grepline.Result) []parseEntry {
	entries := make([]parseEntry, 0, len(results))
	for _, r := range results {
		e := parseEntry{Result: r}
		if r.OK() {
			w := types.NewWindow(r.Location.Line)
			e.Window = &w
		}
		entries = append(entries, e)
	}
	return entries
}

func outputParseHuman(cmd *cobra.Command, results []grepline.Result, s *styles) error {
	out := cmd.OutOrStdout()

	parsed := 0
	for _, r := range results {
		if err := writeParseLine(out, r, s); err != nil {
			return err
		}
		if r.OK() {
			parsed++
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Parsed %d of %d lines\n", parsed, len(results))
	return nil
}

func writeParseLine(out io.Writer, r grepline.Result, s *styles) error {
	if !r.OK() {
		_, err := fmt.Fprintf(out, "%s %q\n", s.skipped.Sprint("skipped"), r.Raw)
		return err
	}

	w := types.NewWindow(r.Location.Line)
	_, err := fmt.Fprintf(out, "%s:%s %s\n",
		s.path.Sprint(r.Location.Path),
		s.line.Sprint(r.Location.Line),
		s.window.Sprintf("[%d-%d]", w.First, w.Last))
	return err
}
