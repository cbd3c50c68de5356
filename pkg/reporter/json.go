package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gomd2html/pkg/runner"
	"github.com/yaklabco/gomd2html/pkg/subset"
)

// jsonVersion is the schema version of the JSON documents.
const jsonVersion = "1.0.0"

// JSONCheckOutput is the top-level JSON structure of a check run.
type JSONCheckOutput struct {
	Version string           `json:"version"`
	Files   []JSONCheckFile  `json:"files"`
	Summary JSONCheckSummary `json:"summary"`
}

// JSONCheckFile represents a single checked file.
type JSONCheckFile struct {
	Path     string           `json:"path"`
	Findings []subset.Finding `json:"findings"`
	Error    string           `json:"error,omitempty"`
}

// JSONCheckSummary contains aggregate check statistics.
type JSONCheckSummary struct {
	FilesChecked      int `json:"filesChecked"`
	FilesWithFindings int `json:"filesWithFindings"`
	FilesErrored      int `json:"filesErrored"`
	TotalFindings     int `json:"totalFindings"`
}

// JSONBatchOutput is the top-level JSON structure of a batch run.
type JSONBatchOutput struct {
	Version string          `json:"version"`
	DryRun  bool            `json:"dryRun"`
	Files   []JSONBatchFile `json:"files"`
	Summary JSONBatchStats  `json:"summary"`
}

// JSONBatchFile represents a single converted file.
type JSONBatchFile struct {
	Input             string `json:"input"`
	Output            string `json:"output"`
	Written           bool   `json:"written"`
	Unchanged         bool   `json:"unchanged,omitempty"`
	Bytes             int    `json:"bytes"`
	MalformedHeadings []int  `json:"malformedHeadings,omitempty"`
	Error             string `json:"error,omitempty"`
}

// JSONBatchStats contains aggregate batch statistics.
type JSONBatchStats struct {
	FilesDiscovered   int `json:"filesDiscovered"`
	FilesConverted    int `json:"filesConverted"`
	FilesWritten      int `json:"filesWritten"`
	FilesUnchanged    int `json:"filesUnchanged"`
	FilesErrored      int `json:"filesErrored"`
	BytesWritten      int `json:"bytesWritten"`
	MalformedHeadings int `json:"malformedHeadings"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// ReportCheck implements Reporter.
func (r *JSONReporter) ReportCheck(_ context.Context, report *subset.Report) (int, error) {
	output := r.buildCheckOutput(report)
	if err := r.encode(output); err != nil {
		return 0, err
	}
	return output.Summary.TotalFindings, nil
}

// ReportBatch implements Reporter.
func (r *JSONReporter) ReportBatch(_ context.Context, result *runner.Result) error {
	return r.encode(r.buildBatchOutput(result))
}

func (r *JSONReporter) encode(v any) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func (r *JSONReporter) buildCheckOutput(report *subset.Report) *JSONCheckOutput {
	output := &JSONCheckOutput{
		Version: jsonVersion,
		Files:   make([]JSONCheckFile, 0),
	}
	if report == nil {
		return output
	}

	for _, file := range report.Files {
		path := r.opts.displayPath(file.Path)
		entry := JSONCheckFile{
			Path:     path,
			Findings: make([]subset.Finding, 0, len(file.Findings)),
		}

		if file.Err != nil {
			entry.Error = file.Err.Error()
			output.Summary.FilesErrored++
		}

		for _, finding := range file.Findings {
			finding.Path = path
			entry.Findings = append(entry.Findings, finding)
		}

		if len(entry.Findings) > 0 {
			output.Summary.FilesWithFindings++
		}
		output.Summary.TotalFindings += len(entry.Findings)
		output.Summary.FilesChecked++
		output.Files = append(output.Files, entry)
	}

	return output
}

func (r *JSONReporter) buildBatchOutput(result *runner.Result) *JSONBatchOutput {
	output := &JSONBatchOutput{
		Version: jsonVersion,
		DryRun:  r.opts.DryRun,
		Files:   make([]JSONBatchFile, 0),
	}
	if result == nil {
		return output
	}

	for _, outcome := range result.Files {
		entry := JSONBatchFile{
			Input:  r.opts.displayPath(outcome.Path),
			Output: r.opts.displayPath(outcome.Output),
		}
		if outcome.Error != nil {
			entry.Error = outcome.Error.Error()
		}
		if fr := outcome.Result; fr != nil {
			entry.Written = fr.Written
			entry.Unchanged = fr.Unchanged
			entry.Bytes = fr.BytesWritten
			entry.MalformedHeadings = fr.MalformedHeadings
		}
		output.Files = append(output.Files, entry)
	}

	stats := result.Stats
	output.Summary = JSONBatchStats{
		FilesDiscovered:   stats.FilesDiscovered,
		FilesConverted:    stats.FilesConverted,
		FilesWritten:      stats.FilesWritten,
		FilesUnchanged:    stats.FilesUnchanged,
		FilesErrored:      stats.FilesErrored,
		BytesWritten:      stats.BytesWritten,
		MalformedHeadings: stats.MalformedHeadings,
	}

	return output
}
