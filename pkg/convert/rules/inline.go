package rules

import (
	"strings"

	"github.com/yaklabco/gomd2html/pkg/convert"
)

// Inline delimiters.
const (
	boldOpen   = "[["
	boldClose  = "]]"
	stripOpen  = "(("
	stripClose = "))"
)

// BoldRule turns [[text]] into <b>text</b>.
type BoldRule struct {
	convert.BaseRule
}

// NewBoldRule creates a new inline bold rule.
func NewBoldRule() *BoldRule {
	return &BoldRule{
		BaseRule: convert.NewBaseRule(
			"I001",
			"inline-bold",
			"[[text]] becomes <b>text</b>",
			convert.StageInline,
			10,
		),
	}
}

// Apply rewrites every line independently.
func (r *BoldRule) Apply(ctx *convert.RuleContext) ([]string, error) {
	return mapLines(ctx, func(line string) string {
		return replaceDelimited(line, boldOpen, boldClose, func(text string) string {
			return "<b>" + text + "</b>"
		})
	})
}

// StripRule removes every c and C from ((text)).
type StripRule struct {
	convert.BaseRule
}

// NewStripRule creates a new inline strip rule.
func NewStripRule() *StripRule {
	return &StripRule{
		BaseRule: convert.NewBaseRule(
			"I002",
			"inline-strip",
			"((text)) has every c and C removed",
			convert.StageInline,
			20,
		),
	}
}

// Apply rewrites every line independently. The (( )) markers are dropped
// unless KeepStripDelimiters is set.
func (r *StripRule) Apply(ctx *convert.RuleContext) ([]string, error) {
	keep := ctx.Options.KeepStripDelimiters
	return mapLines(ctx, func(line string) string {
		return replaceDelimited(line, stripOpen, stripClose, func(text string) string {
			text = StripC(text)
			if keep {
				return stripOpen + text + stripClose
			}
			return text
		})
	})
}

// StripC removes every 'c' and 'C' from s.
func StripC(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 'c' || r == 'C' {
			return -1
		}
		return r
	}, s)
}

func mapLines(ctx *convert.RuleContext, fn func(string) string) ([]string, error) {
	out := make([]string, 0, len(ctx.Lines))
	for _, line := range ctx.Lines {
		if ctx.Cancelled() {
			return nil, ctx.Ctx.Err()
		}
		out = append(out, fn(line))
	}
	return out, nil
}

// replaceDelimited replaces every opener+text+closer span in line with
// replace(text). Spans are matched left to right, text is non-empty and
// ends at the first closer after its first character. An opener without a
// matching closer is left verbatim.
func replaceDelimited(line, opener, closer string, replace func(string) string) string {
	var sb strings.Builder
	pos := 0

	for {
		start := strings.Index(line[pos:], opener)
		if start < 0 {
			break
		}
		start += pos

		textStart := start + len(opener)
		if textStart >= len(line) {
			break
		}

		end := strings.Index(line[textStart+1:], closer)
		if end < 0 {
			break
		}
		end += textStart + 1

		sb.WriteString(line[pos:start])
		sb.WriteString(replace(line[textStart:end]))
		pos = end + len(closer)
	}

	if pos == 0 {
		return line
	}

	sb.WriteString(line[pos:])
	return sb.String()
}
