package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gomd2html/pkg/runner"
)

const summaryDividerWidth = 40

// FormatBatchSummaryOneLine formats batch statistics as a single line.
// Example: "Converted 3 files (2 written, 1 unchanged, 1.2 KiB), 1 failed".
func (s *Styles) FormatBatchSummaryOneLine(stats runner.Stats, dryRun bool) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No Markdown files found") + "\n"
	}

	var detail []string
	switch {
	case dryRun:
		detail = append(detail, "dry run, nothing written")
	default:
		detail = append(detail, fmt.Sprintf("%d written", stats.FilesWritten))
		if stats.FilesUnchanged > 0 {
			detail = append(detail, fmt.Sprintf("%d unchanged", stats.FilesUnchanged))
		}
		detail = append(detail, FormatBytes(stats.BytesWritten))
	}

	headline := fmt.Sprintf("Converted %d %s", stats.FilesConverted, plural(stats.FilesConverted, "file", "files"))
	if stats.FilesErrored == 0 {
		headline = s.Success.Render(headline)
	}

	parts := []string{headline + s.Dim.Render(" ("+strings.Join(detail, ", ")+")")}

	if stats.MalformedHeadings > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d malformed %s",
			stats.MalformedHeadings, plural(stats.MalformedHeadings, "heading", "headings"))))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatBatchSummary formats batch statistics as a summary block.
func (s *Styles) FormatBatchSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row := func(label string, value string) {
		fmt.Fprintf(&builder, "  %-20s%s\n", label+":", value)
	}

	row("Files found", s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)))
	row("Files converted", s.SummaryValue.Render(strconv.Itoa(stats.FilesConverted)))
	row("Files written", s.Success.Render(strconv.Itoa(stats.FilesWritten)))
	if stats.FilesUnchanged > 0 {
		row("Files unchanged", s.Dim.Render(strconv.Itoa(stats.FilesUnchanged)))
	}
	if stats.FilesErrored > 0 {
		row("Files failed", s.Failure.Render(strconv.Itoa(stats.FilesErrored)))
	}
	row("Bytes written", s.SummaryValue.Render(FormatBytes(stats.BytesWritten)))
	if stats.MalformedHeadings > 0 {
		row("Malformed headings", s.Warning.Render(strconv.Itoa(stats.MalformedHeadings)))
	}

	builder.WriteString("\n")
	if stats.FilesErrored > 0 {
		builder.WriteString(s.Failure.Render("Batch finished with failures"))
	} else {
		builder.WriteString(s.Success.Render("Batch finished"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatCheckSummaryOneLine summarizes a check run.
// Example: "4 findings in 2 files (5 files checked)".
func (s *Styles) FormatCheckSummaryOneLine(findings, filesWithFindings, filesChecked int) string {
	checked := s.Dim.Render(fmt.Sprintf(" (%d %s checked)", filesChecked, plural(filesChecked, "file", "files")))
	if findings == 0 {
		return s.Success.Render("Everything is within the supported subset") + checked + "\n"
	}
	return s.Warning.Render(fmt.Sprintf("%d %s", findings, plural(findings, "finding", "findings"))) +
		fmt.Sprintf(" in %d %s", filesWithFindings, plural(filesWithFindings, "file", "files")) +
		checked + "\n"
}

// FormatBytes renders a byte count with a binary unit.
func FormatBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
