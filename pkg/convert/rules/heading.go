package rules

import (
	"strings"

	"github.com/yaklabco/gomd2html/pkg/convert"
)

// HeadingRule converts "#" lines to heading tags.
type HeadingRule struct {
	convert.BaseRule
}

// NewHeadingRule creates a new heading rule.
func NewHeadingRule() *HeadingRule {
	return &HeadingRule{
		BaseRule: convert.NewBaseRule(
			"B001",
			"heading",
			"Lines starting with # become <h1> through <h6>",
			convert.StageBlock,
			10,
		),
	}
}

// Kinds returns the line kinds this rule converts.
func (r *HeadingRule) Kinds() []convert.Kind {
	return []convert.Kind{convert.KindHeading}
}

// Apply emits one heading tag per heading line and nothing for other lines.
// A marker without text is an error in strict mode and is reported and
// skipped otherwise.
func (r *HeadingRule) Apply(ctx *convert.RuleContext) ([]string, error) {
	out := []string{}

	for idx, line := range ctx.Lines {
		if ctx.Cancelled() {
			return nil, ctx.Ctx.Err()
		}

		trimmed := strings.TrimSpace(convert.TrimTerminator(line))
		if trimmed == "" || trimmed[0] != convert.HeadingMarker {
			continue
		}

		level, text, err := convert.ParseHeading(line, idx+1)
		if err != nil {
			if ctx.Options.StrictHeadings {
				return nil, err
			}
			ctx.ReportMalformedHeading(idx + 1)
			continue
		}

		out = append(out, convert.HeadingTag(level, text))
	}

	return out, nil
}
