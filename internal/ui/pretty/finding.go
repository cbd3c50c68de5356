package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomd2html/pkg/subset"
)

// FormatFinding formats a single check finding for terminal output.
//
//	path:line  message  (construct)
//	    source line
//	    Suggestion: ...
func (s *Styles) FormatFinding(f *subset.Finding, sourceLine string) string {
	var builder strings.Builder

	location := s.FilePath.Render(f.Path) + s.Location.Render(fmt.Sprintf(":%d", f.Line))

	fmt.Fprintf(&builder, "  %s  %s  %s\n",
		location,
		s.Message.Render(f.Message),
		s.Construct.Render("("+string(f.Construct)+")"),
	)

	if sourceLine != "" {
		builder.WriteString("      " + s.SourceLine.Render(sourceLine) + "\n")
	}

	if f.Suggestion != "" {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(f.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, count int) string {
	header := s.FilePath.Render(path)
	if count > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", count, plural(count, "finding", "findings")))
	}
	return header
}

// FormatFileError formats a file that could not be processed.
func (s *Styles) FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s: %s\n", s.FilePath.Render(path), s.Error.Render("error: "+err.Error()))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
