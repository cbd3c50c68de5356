// Package cli provides the Cobra command structure for gomd2html.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomd2html/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

const layoutNotes = `Layouts:
  passes    (default) Runs the heading, list and paragraph rules over the
            whole document one after another and concatenates their output.
            Every line appears in each pass that does not convert it, and
            block order does not follow the source.
  document  Classifies each line once and emits blocks in source order.
            Blank lines and headings close the open paragraph or list.

Inline rules run over the combined block output in both layouts:
  [[text]]  becomes <b>text</b>
  ((text))  becomes text with every c and C removed

Exit codes:
  0   output written
  1   input missing (batch: some files failed)
  64  wrong arguments
  65  invalid configuration, or a heading without text with --strict-headings
  74  read or write failure`

// NewRootCommand creates the root gomd2html command with all subcommands.
// The root command itself converts one file: gomd2html INPUT OUTPUT.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	flags := &convertFlags{}

	rootCmd := &cobra.Command{
		Use:   "gomd2html INPUT OUTPUT",
		Short: "Convert a small Markdown subset to HTML",
		Long: `gomd2html converts a restricted Markdown dialect to HTML.

It understands "#" headings (h1 to h6), "* " and "- " list items, paragraphs,
and two inline forms: [[bold]] and ((strip)). Anything else passes through as
paragraph text. Use "gomd2html check" to find constructs outside the subset
and "gomd2html batch" to convert whole directory trees.

OUTPUT may be "-" to write to standard output.`,
		Example: `  gomd2html README.md README.html
  gomd2html --layout document notes.md -
  gomd2html --disable strip --indent "" in.md out.html`,
		Annotations: map[string]string{notesAnnotation: layoutNotes},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &UsageError{}
			}
			return nil
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, flags, args[0], args[1])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	flags.register(rootCmd)
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "convert and report without writing the output")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Msg: err.Error()}
	})

	// Add subcommands.
	rootCmd.AddCommand(newBatchCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
