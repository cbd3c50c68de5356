// Package convert provides the conversion engine, rule contracts, and registry for gomd2html.
package convert

import "strings"

// Document is the read-only input to a conversion: an ordered sequence of
// raw lines. Every line keeps its terminator ("\n" or "\r\n") except a final
// unterminated line.
type Document struct {
	// Path identifies the source for error messages. It may be empty.
	Path string

	// Lines holds the raw lines, terminators included.
	Lines []string
}

// NewDocument splits content into lines, keeping each line's terminator.
// Content ending in a newline does not produce a trailing empty line.
func NewDocument(path string, content []byte) *Document {
	return &Document{
		Path:  path,
		Lines: splitLines(content),
	}
}

// Len returns the number of lines in the document.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}

// Text returns the 0-based line idx without its terminator.
// Returns "" if idx is out of range.
func (d *Document) Text(idx int) string {
	if d == nil || idx < 0 || idx >= len(d.Lines) {
		return ""
	}
	return TrimTerminator(d.Lines[idx])
}

// TrimTerminator removes a trailing "\n" or "\r\n" from line.
func TrimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// splitLines handles both LF and CRLF line endings.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return []string{}
	}

	var lines []string
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			lines = append(lines, string(content[lineStart:idx+1]))
			lineStart = idx + 1
		}
	}

	// Last line without a trailing newline.
	if lineStart < len(content) {
		lines = append(lines, string(content[lineStart:]))
	}

	return lines
}
