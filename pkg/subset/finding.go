// Package subset reports Markdown constructs that gomd2html does not
// convert, so authors can see which parts of a document will pass through
// as plain text.
package subset

import "cmp"

// Construct identifies a kind of unsupported Markdown construct.
type Construct string

// Constructs reported by the checker.
const (
	ConstructMalformedHeading Construct = "malformed-heading"
	ConstructSetextHeading    Construct = "setext-heading"
	ConstructNumberedList     Construct = "numbered-list"
	ConstructPlusList         Construct = "plus-list"
	ConstructNestedList       Construct = "nested-list"
	ConstructTaskItem         Construct = "task-item"
	ConstructBlockquote       Construct = "blockquote"
	ConstructFencedCode       Construct = "fenced-code"
	ConstructIndentedCode     Construct = "indented-code"
	ConstructThematicBreak    Construct = "thematic-break"
	ConstructHTML             Construct = "html"
	ConstructTable            Construct = "table"
	ConstructEmphasis         Construct = "emphasis"
	ConstructStrikethrough    Construct = "strikethrough"
	ConstructCodeSpan         Construct = "code-span"
	ConstructLink             Construct = "link"
	ConstructImage            Construct = "image"
)

// Finding is one unsupported construct in a document.
type Finding struct {
	// Path is the document path.
	Path string `json:"path"`

	// Line is the 1-based line the construct starts on.
	Line int `json:"line"`

	// Construct identifies what was found.
	Construct Construct `json:"construct"`

	// Message explains how the converter treats the construct.
	Message string `json:"message"`

	// Suggestion is an optional rewrite within the supported subset.
	Suggestion string `json:"suggestion,omitempty"`
}

// compareFindings orders findings by path, line, then construct.
func compareFindings(a, b Finding) int {
	return cmp.Or(
		cmp.Compare(a.Path, b.Path),
		cmp.Compare(a.Line, b.Line),
		cmp.Compare(a.Construct, b.Construct),
	)
}
