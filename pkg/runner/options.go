// Package runner provides multi-file conversion orchestration.
package runner

import (
	"path/filepath"
	"strings"

	"github.com/yaklabco/gomd2html/pkg/config"
)

// Options controls multi-file conversion behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (with leading dot) considered
	// Markdown. Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories,
	// relative to WorkingDir.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// OutDir mirrors outputs under this directory. Empty writes each output
	// next to its input.
	OutDir string

	// OutputExtension replaces the input extension. Defaults to ".html".
	OutputExtension string

	// DryRun converts every file without writing output.
	DryRun bool

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// OptionsFromConfig fills the config-derived fields of Options.
func OptionsFromConfig(paths []string, workDir string, cfg *config.Config) Options {
	opts := Options{
		Paths:      paths,
		WorkingDir: workDir,
		Config:     cfg,
	}
	if cfg == nil {
		return opts
	}
	opts.Extensions = cfg.Extensions
	opts.ExcludeGlobs = cfg.Ignore
	opts.Jobs = cfg.Jobs
	opts.OutDir = cfg.Output.Dir
	opts.OutputExtension = cfg.OutputExtensionOrDefault()
	opts.DryRun = cfg.DryRun
	return opts
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// OutputPath maps an absolute input path to its output path.
//
// Without OutDir the output sits next to the input. With OutDir the input's
// path relative to workDir is recreated under OutDir; inputs outside workDir
// keep only their base name.
func (o Options) OutputPath(input, workDir string) string {
	ext := o.OutputExtension
	if ext == "" {
		ext = config.DefaultOutputExtension
	}
	renamed := strings.TrimSuffix(input, filepath.Ext(input)) + ext

	if o.OutDir == "" {
		return renamed
	}

	outDir := o.OutDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(workDir, outDir)
	}

	rel, err := filepath.Rel(workDir, renamed)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(renamed)
	}

	return filepath.Join(outDir, rel)
}
