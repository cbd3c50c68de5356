package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomd2html/pkg/convert"
	"github.com/yaklabco/gomd2html/pkg/reporter"
	"github.com/yaklabco/gomd2html/pkg/runner"
	"github.com/yaklabco/gomd2html/pkg/subset"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "unknown format", input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	assert.True(t, reporter.FormatText.IsValid())
	assert.True(t, reporter.FormatJSON.IsValid())
	assert.False(t, reporter.Format("").IsValid())
	assert.False(t, reporter.Format("xml").IsValid())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: tt.format})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func sampleCheckReport(dir string) *subset.Report {
	path := filepath.Join(dir, "docs", "guide.md")
	return &subset.Report{
		Files: []subset.FileReport{
			{
				Path:     path,
				Document: convert.NewDocument(path, []byte("intro\n\n> quoted\n")),
				Findings: []subset.Finding{{
					Path:      path,
					Line:      3,
					Construct: subset.ConstructBlockquote,
					Message:   `">" quotes are converted as paragraph text`,
				}},
			},
			{Path: filepath.Join(dir, "clean.md"), Document: convert.NewDocument("clean.md", []byte("# ok\n"))},
			{Path: filepath.Join(dir, "gone.md"), Err: errors.New("file not found")},
		},
	}
}

func TestTextReporter_ReportCheck(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer

	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowContext: true,
		ShowSummary: true,
		WorkingDir:  dir,
	})

	count, err := rep.ReportCheck(context.Background(), sampleCheckReport(dir))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	out := buf.String()
	guide := filepath.Join("docs", "guide.md")
	assert.Contains(t, out, guide+" (1 finding)")
	assert.Contains(t, out, guide+":3")
	assert.Contains(t, out, "> quoted")
	assert.Contains(t, out, "(blockquote)")
	assert.Contains(t, out, "gone.md: error: file not found")
	assert.Contains(t, out, "1 finding in 1 file (3 files checked)")
	assert.NotContains(t, out, "clean.md")
}

func TestTextReporter_ReportCheck_Empty(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	count, err := rep.ReportCheck(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, "No files to check.\n", buf.String())
}

func TestJSONReporter_ReportCheck(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer

	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, WorkingDir: dir})

	count, err := rep.ReportCheck(context.Background(), sampleCheckReport(dir))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var output reporter.JSONCheckOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0.0", output.Version)
	require.Len(t, output.Files, 3)
	assert.Equal(t, filepath.Join("docs", "guide.md"), output.Files[0].Path)
	assert.Equal(t, filepath.Join("docs", "guide.md"), output.Files[0].Findings[0].Path)
	assert.Equal(t, subset.ConstructBlockquote, output.Files[0].Findings[0].Construct)
	assert.NotNil(t, output.Files[1].Findings, "files without findings encode an empty list")
	assert.Equal(t, "file not found", output.Files[2].Error)
	assert.Equal(t, reporter.JSONCheckSummary{
		FilesChecked:      3,
		FilesWithFindings: 1,
		FilesErrored:      1,
		TotalFindings:     1,
	}, output.Summary)
}

func sampleBatchResult(dir string) *runner.Result {
	in := filepath.Join(dir, "a.md")
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:   in,
				Output: filepath.Join(dir, "a.html"),
				Result: &convert.FileResult{
					Result:       &convert.Result{MalformedHeadings: []int{2}},
					Input:        in,
					Written:      true,
					BytesWritten: 42,
				},
			},
			{
				Path:   filepath.Join(dir, "b.md"),
				Output: filepath.Join(dir, "b.html"),
				Error:  errors.New("line 1: heading \"#\" has no text"),
			},
		},
		Stats: runner.Stats{
			FilesDiscovered:   2,
			FilesConverted:    1,
			FilesWritten:      1,
			FilesErrored:      1,
			BytesWritten:      42,
			MalformedHeadings: 1,
		},
	}
}

func TestTextReporter_ReportBatch(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer

	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		WorkingDir:  dir,
	})

	require.NoError(t, rep.ReportBatch(context.Background(), sampleBatchResult(dir)))

	assert.Equal(t,
		"b.md: error: line 1: heading \"#\" has no text\n"+
			"Converted 1 file (1 written, 42 B), 1 malformed heading, 1 failed\n",
		buf.String())
}

func TestJSONReporter_ReportBatch(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer

	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, WorkingDir: dir, Compact: true})
	require.NoError(t, rep.ReportBatch(context.Background(), sampleBatchResult(dir)))

	var output reporter.JSONBatchOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	require.Len(t, output.Files, 2)
	assert.Equal(t, reporter.JSONBatchFile{
		Input:             "a.md",
		Output:            "a.html",
		Written:           true,
		Bytes:             42,
		MalformedHeadings: []int{2},
	}, output.Files[0])
	assert.NotEmpty(t, output.Files[1].Error)
	assert.Equal(t, 1, output.Summary.FilesErrored)
	assert.Equal(t, 42, output.Summary.BytesWritten)
}
