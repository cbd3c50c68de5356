package rules

import (
	"strings"

	"github.com/yaklabco/gomd2html/pkg/convert"
)

// ParagraphRule wraps runs of contentful lines in <p>.
// Every input line appears in its output, so headings and list lines are
// repeated here as paragraph text in the passes layout.
type ParagraphRule struct {
	convert.BaseRule
}

// NewParagraphRule creates a new paragraph rule.
func NewParagraphRule() *ParagraphRule {
	return &ParagraphRule{
		BaseRule: convert.NewBaseRule(
			"B003",
			"paragraph",
			"Runs of non-blank lines become <p> blocks separated by blank lines",
			convert.StageBlock,
			30,
		),
	}
}

// Kinds returns the line kinds this rule converts.
func (r *ParagraphRule) Kinds() []convert.Kind {
	return []convert.Kind{convert.KindPlain}
}

// Apply emits paragraph markup. Blank lines close the open paragraph and
// are kept as empty separator lines.
func (r *ParagraphRule) Apply(ctx *convert.RuleContext) ([]string, error) {
	out := []string{}
	open := false

	for _, line := range ctx.Lines {
		if ctx.Cancelled() {
			return nil, ctx.Ctx.Err()
		}

		text := strings.TrimSpace(convert.TrimTerminator(line))
		if text == "" {
			if open {
				out = append(out, convert.TagParagraphClose)
				open = false
			}
			out = append(out, "")
			continue
		}

		if !open {
			out = append(out, convert.TagParagraphOpen)
			open = true
		}
		out = append(out, convert.ParagraphLine(ctx.Options.Indent, text))
	}

	if open {
		out = append(out, convert.TagParagraphClose)
	}

	return out, nil
}
