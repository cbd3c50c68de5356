package convert

import "strconv"

// Block tags emitted by the list and paragraph rules.
const (
	TagUnorderedOpen  = "<ul>"
	TagUnorderedClose = "</ul>"
	TagOrderedOpen    = "<ol>"
	TagOrderedClose   = "</ol>"
	TagParagraphOpen  = "<p>"
	TagParagraphClose = "</p>"
)

// HeadingTag returns "<hN>text</hN>". Levels outside 1..6 are clamped.
func HeadingTag(level int, text string) string {
	if level < 1 {
		level = 1
	}
	if level > MaxHeadingLevel {
		level = MaxHeadingLevel
	}
	n := strconv.Itoa(level)
	return "<h" + n + ">" + text + "</h" + n + ">"
}

// ListItem returns an indented "<li>text</li>" line.
func ListItem(indent, text string) string {
	return indent + "<li>" + text + "</li>"
}

// ParagraphLine returns an indented paragraph content line.
func ParagraphLine(indent, text string) string {
	return indent + text
}
