package subset

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gomd2html/pkg/convert"
	"github.com/yaklabco/gomd2html/pkg/langdetect"
)

// Checker parses documents as GitHub Flavored Markdown and reports the
// constructs the converter leaves unconverted.
// A Checker is safe for concurrent use.
type Checker struct {
	md goldmark.Markdown
}

// New creates a Checker backed by goldmark with the GFM extensions.
func New() *Checker {
	return &Checker{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// Check returns the findings for content, sorted by line.
func (c *Checker) Check(ctx context.Context, path string, content []byte) ([]Finding, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("check cancelled: %w", err)
	}

	root := c.md.Parser().Parse(text.NewReader(content), parser.WithContext(parser.NewContext()))

	v := &visitor{
		path:    path,
		source:  content,
		doc:     convert.NewDocument(path, content),
		starts:  lineStarts(content),
		current: -1,
	}

	if err := ast.Walk(root, v.visit); err != nil {
		return nil, fmt.Errorf("walk %s: %w", path, err)
	}
	v.malformedHeadings()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("check cancelled: %w", err)
	}

	slices.SortFunc(v.findings, compareFindings)
	return v.findings, nil
}

// visitor collects findings during one AST walk.
type visitor struct {
	path     string
	source   []byte
	doc      *convert.Document
	starts   []int
	current  int // furthest known source offset, -1 before the first
	findings []Finding
}

func (v *visitor) add(line int, construct Construct, msg, suggestion string) {
	v.findings = append(v.findings, Finding{
		Path:       v.path,
		Line:       line,
		Construct:  construct,
		Message:    msg,
		Suggestion: suggestion,
	})
}

//nolint:cyclop,funlen // one case per construct
func (v *visitor) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	if off, ok := directOffset(n); ok && off > v.current {
		v.current = off
	}

	switch node := n.(type) {
	case *ast.Heading:
		if line, ok := v.line(n); ok && !strings.HasPrefix(strings.TrimSpace(v.doc.Text(line-1)), "#") {
			v.add(line, ConstructSetextHeading,
				"underlined headings are converted as paragraph text",
				fmt.Sprintf("use %q for a level %d heading", strings.Repeat("#", node.Level)+" ", node.Level))
		}

	case *ast.List:
		line := v.lineOr(n)
		switch {
		case node.IsOrdered():
			v.add(line, ConstructNumberedList, "numbered items are converted as paragraph text",
				`start items with "- " for an ordered list`)
		case node.Marker == '+':
			v.add(line, ConstructPlusList, `"+" items are converted as paragraph text`,
				`start items with "* " for an unordered list`)
		}
		if _, nested := n.Parent().(*ast.ListItem); nested {
			v.add(line, ConstructNestedList, "nested lists are flattened", "")
		}

	case *east.TaskCheckBox:
		state := "[ ]"
		if node.IsChecked {
			state = "[x]"
		}
		v.add(v.lineOr(n), ConstructTaskItem, state+" is kept as literal item text", "")

	case *ast.Blockquote:
		v.add(v.lineOr(n), ConstructBlockquote, `">" quotes are converted as paragraph text`, "")

	case *ast.FencedCodeBlock:
		v.fencedCode(node)
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		v.add(v.lineOr(n), ConstructIndentedCode, "indented code is trimmed into paragraph text", "")
		return ast.WalkSkipChildren, nil

	case *ast.ThematicBreak:
		v.add(v.scanFrom(isThematicBreak), ConstructThematicBreak,
			"horizontal rules are converted as paragraph text", "")

	case *ast.HTMLBlock:
		v.add(v.lineOr(n), ConstructHTML, "raw HTML is copied without escaping", "")
		return ast.WalkSkipChildren, nil

	case *ast.RawHTML:
		line := v.lineAtCurrent()
		if node.Segments != nil && node.Segments.Len() > 0 {
			line = v.lineOf(node.Segments.At(0).Start)
		}
		v.add(line, ConstructHTML, "inline HTML is copied without escaping", "")

	case *east.Table:
		v.add(v.lineOr(n), ConstructTable, "table rows are converted as paragraph text", "")
		return ast.WalkSkipChildren, nil

	case *ast.Emphasis:
		if node.Level >= 2 {
			v.add(v.lineOr(n), ConstructEmphasis, "strong emphasis is not converted", "use [[text]] for bold")
		} else {
			v.add(v.lineOr(n), ConstructEmphasis, "emphasis is not converted", "")
		}

	case *east.Strikethrough:
		v.add(v.lineOr(n), ConstructStrikethrough, "strikethrough is not converted", "")

	case *ast.CodeSpan:
		v.add(v.lineOr(n), ConstructCodeSpan, "code spans are not converted", "")
		return ast.WalkSkipChildren, nil

	case *ast.Link:
		v.add(v.lineOr(n), ConstructLink, "links are kept as literal text", "")

	case *ast.AutoLink:
		v.add(v.locate(node.URL(v.source)), ConstructLink, "autolinks are kept as literal text", "")

	case *ast.Image:
		v.add(v.lineOr(n), ConstructImage, "images are kept as literal text", "")
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

func (v *visitor) fencedCode(node *ast.FencedCodeBlock) {
	var line int
	switch {
	case node.Info != nil:
		line = v.lineOf(node.Info.Segment.Start)
	case node.Lines().Len() > 0:
		line = v.lineOf(node.Lines().At(0).Start) - 1
	default:
		line = v.scanFrom(isFence)
	}

	label := string(node.Language(v.source))
	switch {
	case label == "":
		var code bytes.Buffer
		for i := range node.Lines().Len() {
			seg := node.Lines().At(i)
			code.Write(seg.Value(v.source))
		}
		suggestion := ""
		if lang := langdetect.Detect(code.Bytes()); lang != langdetect.Unknown {
			suggestion = fmt.Sprintf("content looks like %s; label the fence \"```%s\"", lang, lang)
		}
		v.add(line, ConstructFencedCode, "code fences are converted as paragraph text", suggestion)
	case !langdetect.Known(label):
		v.add(line, ConstructFencedCode,
			fmt.Sprintf("code fences are converted as paragraph text; unknown language %q", label), "")
	default:
		v.add(line, ConstructFencedCode, "code fences are converted as paragraph text", "")
	}
}

// malformedHeadings reports "#" lines the converter cannot turn into headings.
func (v *visitor) malformedHeadings() {
	for i := range v.doc.Len() {
		c := convert.Classify(v.doc.Lines[i])
		if !c.Malformed {
			continue
		}
		v.add(i+1, ConstructMalformedHeading, "heading marker has no text; the line is kept as plain text",
			`separate the marker from the text with a space, e.g. "# Title"`)
	}
}

// directOffset returns the source offset a node carries itself.
func directOffset(n ast.Node) (int, bool) {
	if t, ok := n.(*ast.Text); ok {
		return t.Segment.Start, true
	}
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start, true
	}
	return 0, false
}

// firstOffset returns the offset of n or of its first positioned descendant.
func firstOffset(n ast.Node) (int, bool) {
	if off, ok := directOffset(n); ok {
		return off, true
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if off, ok := firstOffset(child); ok {
			return off, true
		}
	}
	return 0, false
}

func (v *visitor) line(n ast.Node) (int, bool) {
	off, ok := firstOffset(n)
	if !ok {
		return 0, false
	}
	return v.lineOf(off), true
}

// lineOr falls back to the furthest known position for nodes without one.
func (v *visitor) lineOr(n ast.Node) int {
	if line, ok := v.line(n); ok {
		return line
	}
	return v.lineAtCurrent()
}

func (v *visitor) lineAtCurrent() int {
	return v.lineOf(max(v.current, 0))
}

// lineOf maps a byte offset to a 1-based line number.
func (v *visitor) lineOf(off int) int {
	idx, found := slices.BinarySearch(v.starts, off)
	if found {
		return idx + 1
	}
	return idx
}

// scanFrom returns the first line at or after the current position that
// satisfies match, or the current line if none does.
func (v *visitor) scanFrom(match func(string) bool) int {
	start := 0
	if v.current >= 0 {
		start = v.lineOf(v.current) - 1
	}
	for i := start; i < v.doc.Len(); i++ {
		if match(v.doc.Text(i)) {
			return i + 1
		}
	}
	return v.lineAtCurrent()
}

// locate returns the line of the first occurrence of needle at or after the
// current position.
func (v *visitor) locate(needle []byte) int {
	from := max(v.current, 0)
	if idx := bytes.Index(v.source[from:], needle); idx >= 0 && len(needle) > 0 {
		return v.lineOf(from + idx)
	}
	return v.lineAtCurrent()
}

func lineStarts(content []byte) []int {
	starts := []int{0}
	for i, b := range content {
		if b == '\n' && i+1 < len(content) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func isFence(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// isThematicBreak matches three or more of the same "-", "*" or "_",
// optionally separated by spaces.
func isThematicBreak(line string) bool {
	compact := strings.ReplaceAll(strings.TrimSpace(line), " ", "")
	if len(compact) < 3 {
		return false
	}
	marker := compact[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	return strings.Count(compact, string(marker)) == len(compact)
}
