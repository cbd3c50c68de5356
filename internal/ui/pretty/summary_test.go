package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomd2html/internal/ui/pretty"
	"github.com/yaklabco/gomd2html/pkg/runner"
)

func TestFormatBatchSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name   string
		stats  runner.Stats
		dryRun bool
		want   string
	}{
		{
			name:  "no files",
			stats: runner.Stats{},
			want:  "No Markdown files found\n",
		},
		{
			name: "written and unchanged",
			stats: runner.Stats{
				FilesDiscovered: 3, FilesConverted: 3, FilesWritten: 2, FilesUnchanged: 1, BytesWritten: 2048,
			},
			want: "Converted 3 files (2 written, 1 unchanged, 2.0 KiB)\n",
		},
		{
			name:   "dry run",
			stats:  runner.Stats{FilesDiscovered: 1, FilesConverted: 1},
			dryRun: true,
			want:   "Converted 1 file (dry run, nothing written)\n",
		},
		{
			name: "failures and malformed headings",
			stats: runner.Stats{
				FilesDiscovered: 2, FilesConverted: 1, FilesWritten: 1, FilesErrored: 1,
				BytesWritten: 10, MalformedHeadings: 1,
			},
			want: "Converted 1 file (1 written, 10 B), 1 malformed heading, 1 failed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatBatchSummaryOneLine(tt.stats, tt.dryRun))
		})
	}
}

func TestFormatBatchSummary(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatBatchSummary(runner.Stats{
		FilesDiscovered: 4,
		FilesConverted:  3,
		FilesWritten:    3,
		FilesErrored:    1,
		BytesWritten:    512,
	})

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files found:")
	assert.Contains(t, result, "Files failed:")
	assert.Contains(t, result, "512 B")
	assert.Contains(t, result, "Batch finished with failures")
	assert.NotContains(t, result, "Malformed headings:")
}

func TestFormatCheckSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t,
		"Everything is within the supported subset (1 file checked)\n",
		styles.FormatCheckSummaryOneLine(0, 0, 1))
	assert.Equal(t,
		"4 findings in 2 files (5 files checked)\n",
		styles.FormatCheckSummaryOneLine(4, 2, 5))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 B", pretty.FormatBytes(0))
	assert.Equal(t, "1023 B", pretty.FormatBytes(1023))
	assert.Equal(t, "1.0 KiB", pretty.FormatBytes(1024))
	assert.Equal(t, "1.5 MiB", pretty.FormatBytes(1536*1024))
}
