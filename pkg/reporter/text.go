package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gomd2html/internal/ui/pretty"
	"github.com/yaklabco/gomd2html/pkg/runner"
	"github.com/yaklabco/gomd2html/pkg/subset"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// ReportCheck implements Reporter. Findings are grouped by file.
func (r *TextReporter) ReportCheck(_ context.Context, report *subset.Report) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report == nil || len(report.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to check."))
		}
		return 0, nil
	}

	total := 0
	for i := range report.Files {
		file := &report.Files[i]
		path := r.opts.displayPath(file.Path)

		if file.Err != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Err))
			continue
		}
		if len(file.Findings) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Findings)))
		for _, finding := range file.Findings {
			var source string
			if r.opts.ShowContext {
				source = file.SourceLine(finding.Line)
			}
			finding.Path = path
			fmt.Fprint(r.bw, r.styles.FormatFinding(&finding, source))
			total++
		}
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatCheckSummaryOneLine(total, report.FilesWithFindings(), len(report.Files)))
	}

	return total, nil
}

// ReportBatch implements Reporter. Only failures are listed per file.
func (r *TextReporter) ReportBatch(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return nil
	}

	for _, outcome := range result.Failed() {
		fmt.Fprint(r.bw, r.styles.FormatFileError(r.opts.displayPath(outcome.Path), outcome.Error))
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatBatchSummaryOneLine(result.Stats, r.opts.DryRun))
	}

	return nil
}
