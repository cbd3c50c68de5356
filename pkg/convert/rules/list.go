package rules

import (
	"strings"

	"github.com/yaklabco/gomd2html/pkg/convert"
)

// ListRule groups "* " runs into <ul> and "- " runs into <ol>.
//
// The two runs are tracked independently: a "- " line does not close an
// open <ul>, and the reverse. Any other line closes both.
type ListRule struct {
	convert.BaseRule
}

// NewListRule creates a new list rule.
func NewListRule() *ListRule {
	return &ListRule{
		BaseRule: convert.NewBaseRule(
			"B002",
			"list",
			`Runs of "* " lines become <ul>, runs of "- " lines become <ol>`,
			convert.StageBlock,
			20,
		),
	}
}

// Kinds returns the line kinds this rule converts.
func (r *ListRule) Kinds() []convert.Kind {
	return []convert.Kind{convert.KindUnordered, convert.KindOrdered}
}

// listRun is the per-call run state.
type listRun struct {
	indent    string
	unordered bool
	ordered   bool
	out       []string
}

func (l *listRun) item(open *bool, openTag, text string) {
	if !*open {
		l.out = append(l.out, openTag)
		*open = true
	}
	l.out = append(l.out, convert.ListItem(l.indent, strings.TrimSpace(text)))
}

func (l *listRun) closeAll() {
	if l.unordered {
		l.out = append(l.out, convert.TagUnorderedClose)
		l.unordered = false
	}
	if l.ordered {
		l.out = append(l.out, convert.TagOrderedClose)
		l.ordered = false
	}
}

// Apply emits list markup for list lines and closing tags where runs end.
func (r *ListRule) Apply(ctx *convert.RuleContext) ([]string, error) {
	run := &listRun{
		indent: ctx.Options.Indent,
		out:    []string{},
	}

	for _, line := range ctx.Lines {
		if ctx.Cancelled() {
			return nil, ctx.Ctx.Err()
		}

		text := convert.TrimTerminator(line)

		if rest, ok := strings.CutPrefix(text, convert.UnorderedMarker); ok {
			run.item(&run.unordered, convert.TagUnorderedOpen, rest)
			continue
		}
		if rest, ok := strings.CutPrefix(text, convert.OrderedMarker); ok {
			run.item(&run.ordered, convert.TagOrderedOpen, rest)
			continue
		}

		run.closeAll()
	}

	run.closeAll()
	return run.out, nil
}
