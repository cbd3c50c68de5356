package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomd2html/internal/configloader"
	"github.com/yaklabco/gomd2html/internal/logging"
	"github.com/yaklabco/gomd2html/pkg/config"
	"github.com/yaklabco/gomd2html/pkg/convert"
)

// convertFlags holds the conversion flags shared by the root and batch commands.
type convertFlags struct {
	layout         string
	indent         string
	strictHeadings bool
	keepStrip      bool
	dryRun         bool
	enable         []string
	disable        []string
}

func (f *convertFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.layout, "layout", string(config.LayoutPasses),
		"block layout: passes, document")
	cmd.Flags().StringVar(&f.indent, "indent", config.DefaultIndent,
		"prefix for list items and paragraph lines")
	cmd.Flags().BoolVar(&f.strictHeadings, "strict-headings", false,
		"fail on a heading marker without text instead of treating it as text")
	cmd.Flags().BoolVar(&f.keepStrip, "keep-strip-delimiters", false,
		"keep (( and )) around stripped text")
	cmd.Flags().StringSliceVar(&f.enable, "enable", nil, "enable rules by ID, name or alias")
	cmd.Flags().StringSliceVar(&f.disable, "disable", nil, "disable rules by ID, name or alias")
}

// apply copies the flags the user set into cfg. Unset flags leave the
// lower-precedence configuration in place.
func (f *convertFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("layout") {
		cfg.Layout = config.Layout(f.layout)
	}
	if changed("indent") {
		indent := f.indent
		cfg.Indent = &indent
	}
	cfg.Headings.Strict = f.strictHeadings
	cfg.Inline.KeepStripDelimiters = f.keepStrip
	cfg.DryRun = f.dryRun
	if changed("enable") {
		cfg.EnableRules = f.enable
	}
	if changed("disable") {
		cfg.DisableRules = f.disable
	}
}

// loadConfig resolves the configuration for cmd with cliCfg on top.
// It returns the merged config and the working directory it searched from.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, string, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	for _, path := range loadResult.LoadedFrom {
		logger.Debug("loaded configuration from", logging.FieldPath, path)
	}

	return loadResult.Config, workDir, nil
}

func newPipeline(cmd *cobra.Command) *convert.Pipeline {
	pipeline := convert.NewPipeline(convert.NewEngine(convert.DefaultRegistry))
	pipeline.Stdin = cmd.InOrStdin()
	pipeline.Stdout = cmd.OutOrStdout()
	return pipeline
}

func runConvert(cmd *cobra.Command, flags *convertFlags, input, output string) error {
	ctx := logging.WithFields(cmd.Context(), logging.FieldInput, input)
	logger := logging.FromContext(ctx)

	cliCfg := &config.Config{}
	flags.apply(cmd, cliCfg)

	cfg, _, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	logger.Debug("converting",
		logging.FieldOutput, output,
		logging.FieldLayout, cfg.LayoutOrDefault(),
		logging.FieldStrict, cfg.Headings.Strict,
	)

	result, err := newPipeline(cmd).ProcessFile(ctx, input, output, cfg,
		convert.ProcessOptionsFromConfig(cfg))
	if err != nil {
		return err
	}

	for _, line := range result.MalformedHeadings {
		logger.Warn("heading marker without text kept as plain text", logging.FieldLine, line)
	}

	logger.Debug("converted",
		logging.FieldRules, result.Rules,
		logging.FieldBytesWritten, result.BytesWritten,
	)

	if cfg.DryRun {
		logger.Info("dry run, nothing written",
			logging.FieldOutput, output,
			logging.FieldBytesWritten, result.BytesWritten,
		)
	}

	return nil
}
