// Package reporter renders check findings and batch conversion results.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gomd2html/pkg/runner"
	"github.com/yaklabco/gomd2html/pkg/subset"
)

// Reporter formats and writes command results.
type Reporter interface {
	// ReportCheck writes the findings of a check run.
	// It returns the number of findings reported.
	ReportCheck(ctx context.Context, report *subset.Report) (int, error)

	// ReportBatch writes the outcome of a batch conversion.
	ReportBatch(ctx context.Context, result *runner.Result) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
