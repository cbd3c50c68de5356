package runner

import "github.com/yaklabco/gomd2html/pkg/convert"

// FileOutcome records what happened to one discovered file.
type FileOutcome struct {
	// Path is the input file path.
	Path string

	// Output is the output path the file maps to.
	Output string

	// Result contains the pipeline result for this file.
	// Nil if the file failed.
	Result *convert.FileResult

	// Error is set if the file could not be converted.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesConverted is the number of files converted without error.
	FilesConverted int

	// FilesWritten is the number of outputs written.
	FilesWritten int

	// FilesUnchanged is the number of outputs that already matched.
	FilesUnchanged int

	// FilesErrored is the number of files that failed.
	FilesErrored int

	// BytesWritten is the total size of written outputs.
	BytesWritten int

	// MalformedHeadings counts heading markers without text across all files.
	MalformedHeadings int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed to convert.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// Failed returns the outcomes that carry an error.
func (r *Result) Failed() []FileOutcome {
	if r == nil {
		return nil
	}
	var failed []FileOutcome
	for _, outcome := range r.Files {
		if outcome.Error != nil {
			failed = append(failed, outcome)
		}
	}
	return failed
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesConverted++
	r.Stats.MalformedHeadings += len(outcome.Result.MalformedHeadings)

	switch {
	case outcome.Result.Written:
		r.Stats.FilesWritten++
		r.Stats.BytesWritten += outcome.Result.BytesWritten
	case outcome.Result.Unchanged:
		r.Stats.FilesUnchanged++
	}
}
