package subset

import (
	"context"
	"fmt"

	"github.com/yaklabco/gomd2html/pkg/convert"
	"github.com/yaklabco/gomd2html/pkg/fsutil"
)

// FileReport holds the findings for one checked file.
type FileReport struct {
	// Path is the checked file.
	Path string

	// Findings are sorted by line.
	Findings []Finding

	// Document holds the file's lines for source context. Nil on error.
	Document *convert.Document

	// Err is set if the file could not be read or checked.
	Err error
}

// SourceLine returns the 1-based line without its terminator.
func (r *FileReport) SourceLine(line int) string {
	return r.Document.Text(line - 1)
}

// Report is the result of checking several files.
type Report struct {
	// Files are in the order they were given.
	Files []FileReport
}

// Total returns the number of findings across all files.
func (r *Report) Total() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, f := range r.Files {
		total += len(f.Findings)
	}
	return total
}

// FilesWithFindings returns the number of files with at least one finding.
func (r *Report) FilesWithFindings() int {
	if r == nil {
		return 0
	}
	count := 0
	for _, f := range r.Files {
		if len(f.Findings) > 0 {
			count++
		}
	}
	return count
}

// Errored returns the number of files that could not be checked.
func (r *Report) Errored() int {
	if r == nil {
		return 0
	}
	count := 0
	for _, f := range r.Files {
		if f.Err != nil {
			count++
		}
	}
	return count
}

// CheckFiles reads and checks each path. A failing file is recorded in its
// FileReport and does not stop the others; only cancellation aborts.
func (c *Checker) CheckFiles(ctx context.Context, paths []string) (*Report, error) {
	report := &Report{Files: make([]FileReport, 0, len(paths))}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("check cancelled: %w", err)
		}

		fr := FileReport{Path: path}

		content, _, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			fr.Err = err
			report.Files = append(report.Files, fr)
			continue
		}

		fr.Document = convert.NewDocument(path, content)
		fr.Findings, fr.Err = c.Check(ctx, path, content)
		report.Files = append(report.Files, fr)
	}

	return report, nil
}
