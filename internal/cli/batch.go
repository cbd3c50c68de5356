package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomd2html/internal/logging"
	"github.com/yaklabco/gomd2html/pkg/config"
	"github.com/yaklabco/gomd2html/pkg/reporter"
	"github.com/yaklabco/gomd2html/pkg/runner"
)

// batchFlags holds the flags for the batch command.
type batchFlags struct {
	convert        convertFlags
	outDir         string
	jobs           int
	ignore         []string
	format         string
	followSymlinks bool
}

func newBatchCommand() *cobra.Command {
	flags := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch [paths...]",
		Short: "Convert every Markdown file under the given paths",
		Long: `Convert all Markdown files found under the given files and directories.
If no paths are given, the current directory is used.

Each file is written next to its input with the output extension (".html" by
default), or mirrored under --out-dir. Outputs whose content is unchanged are
left untouched. A failing file does not stop the others; the command exits 1
when any file failed.`,
		Example: `  gomd2html batch docs
  gomd2html batch --out-dir site --jobs 4 .
  gomd2html batch --format json --dry-run notes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, flags, args)
		},
	}

	flags.convert.register(cmd)
	cmd.Flags().BoolVar(&flags.convert.dryRun, "dry-run", false, "convert and report without writing any output")
	cmd.Flags().StringVarP(&flags.outDir, "out-dir", "o", "", "mirror outputs under this directory")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns of files to skip")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow symbolic links to directories")

	return cmd
}

func runBatch(cmd *cobra.Command, flags *batchFlags, args []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return &UsageError{Msg: err.Error()}
	}

	cliCfg := &config.Config{}
	flags.convert.apply(cmd, cliCfg)
	if cmd.Flags().Changed("out-dir") {
		cliCfg.Output.Dir = flags.outDir
	}
	if cmd.Flags().Changed("jobs") {
		cliCfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("ignore") {
		cliCfg.Ignore = flags.ignore
	}

	cfg, workDir, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	opts := runner.OptionsFromConfig(args, workDir, cfg)
	opts.FollowSymlinks = flags.followSymlinks

	logger.Debug("starting batch",
		logging.FieldPaths, args,
		logging.FieldJobs, opts.Jobs,
		logging.FieldOutDir, opts.OutDir,
		logging.FieldLayout, cfg.LayoutOrDefault(),
		logging.FieldDryRun, opts.DryRun,
	)

	result, err := runner.New(newPipeline(cmd)).Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	logger.Debug("batch finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesConverted, result.Stats.FilesConverted,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
		logging.FieldFilesUnchanged, result.Stats.FilesUnchanged,
		logging.FieldBytesWritten, result.Stats.BytesWritten,
		logging.FieldMalformedHeadings, result.Stats.MalformedHeadings,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: true,
		DryRun:      opts.DryRun,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.ReportBatch(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasFailures() {
		return ErrBatchFailures
	}
	return nil
}
