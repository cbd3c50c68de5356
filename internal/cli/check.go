package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomd2html/internal/logging"
	"github.com/yaklabco/gomd2html/pkg/config"
	"github.com/yaklabco/gomd2html/pkg/reporter"
	"github.com/yaklabco/gomd2html/pkg/runner"
	"github.com/yaklabco/gomd2html/pkg/subset"
)

// checkFlags holds the flags for the check command.
type checkFlags struct {
	format    string
	strict    bool
	noContext bool
	ignore    []string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report Markdown constructs gomd2html does not convert",
		Long: `Parse Markdown files as GitHub Flavored Markdown and report every construct
outside the subset gomd2html converts: tables, code blocks, links, images,
blockquotes, nested or numbered lists, raw HTML, emphasis and the like.
Such constructs are not errors for the converter; they pass through as
paragraph text. Headings without text are reported as well.

Fenced code blocks without a language are labeled with a guessed language.`,
		Example: `  gomd2html check README.md
  gomd2html check --strict docs
  gomd2html check --format json .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit 1 when any construct is reported")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "do not print source lines under findings")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns of files to skip")

	return cmd
}

func runCheck(cmd *cobra.Command, flags *checkFlags, args []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return &UsageError{Msg: err.Error()}
	}

	cliCfg := &config.Config{}
	if cmd.Flags().Changed("ignore") {
		cliCfg.Ignore = flags.ignore
	}

	cfg, workDir, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	files, err := runner.Discover(ctx, runner.OptionsFromConfig(args, workDir, cfg))
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	logger.Debug("checking files", logging.FieldFiles, len(files))

	report, err := subset.New().CheckFiles(ctx, files)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	findings, err := rep.ReportCheck(ctx, report)
	if err != nil {
		return fmt.Errorf("report findings: %w", err)
	}

	logger.Debug("check finished",
		logging.FieldFindings, findings,
		logging.FieldFilesFailed, report.Errored(),
	)

	if report.Errored() > 0 {
		return ErrBatchFailures
	}
	if flags.strict && findings > 0 {
		return ErrUnsupportedConstructs
	}
	return nil
}
