package main

import (
	"github.com/grepview/grepview/pkg/grepline"
	"github.com/grepview/grepview/pkg/viewer"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grepview [path:line:column:content ...]",
	Short: "Preview grep and ag results with bat",
	Long: `grepview takes grep or ag result lines (path:line:column:content) as arguments
and shows each referenced file through bat, with 40 lines of context and the
matched line highlighted.

Arguments that are not result lines are skipped. Paths with a drive letter
(c:\src\main.go:10:1:...) are recognized.`,
	Args: cobra.ArbitraryArgs,
	// every argument is a result line, including ones starting with '-'
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE:               runRoot,
}

// newViewer builds the viewer for a command; tests replace it.
var newViewer = func(cmd *cobra.Command) *viewer.Viewer {
	return viewer.New(viewer.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()))
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	v := newViewer(cmd)
	for _, raw := range args {
		loc, ok := grepline.Parse(raw)
		if !ok {
			continue
		}
		if err := v.Invoke(cmd.Context(), loc); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
