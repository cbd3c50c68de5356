package convert

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/gomd2html/pkg/config"
)

// Section is the output of one block rule in the passes layout.
type Section struct {
	// RuleID identifies the rule that produced the lines.
	RuleID string

	// Lines are the rule's output before inline rules ran.
	Lines []string
}

// Result contains the output of converting a single document.
type Result struct {
	// Path is the source document path.
	Path string

	// Layout is the layout used to arrange block output.
	Layout config.Layout

	// Lines are the final output lines, without terminators.
	Lines []string

	// Sections holds per-rule block output (passes layout only).
	Sections []Section

	// Rules lists the IDs of the rules that ran, in order.
	Rules []string

	// MalformedHeadings lists 1-based line numbers of heading markers
	// without text that were treated as plain text.
	MalformedHeadings []int
}

// HTML serializes the output, terminating every line with "\n".
// An empty result serializes to an empty slice.
func (r *Result) HTML() []byte {
	if r == nil || len(r.Lines) == 0 {
		return []byte{}
	}

	var sb strings.Builder
	for _, line := range r.Lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// Engine coordinates rule execution for conversion.
// An Engine holds no per-call state and is safe for concurrent use.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// Convert runs the enabled rules over doc and returns the emitted lines.
// It performs no filesystem access.
func (e *Engine) Convert(ctx context.Context, doc *Document, cfg *config.Config) (*Result, error) {
	if doc == nil {
		doc = NewDocument("", nil)
	}

	opts := OptionsFromConfig(cfg)
	if !opts.Layout.IsValid() {
		return nil, fmt.Errorf("unknown layout %q", opts.Layout)
	}

	resolved := ResolveRules(e.Registry, cfg)

	var blocks, inlines []ResolvedRule
	for _, rr := range resolved {
		if rr.Rule.Stage() == StageInline {
			inlines = append(inlines, rr)
		} else {
			blocks = append(blocks, rr)
		}
	}

	result := &Result{
		Path:   doc.Path,
		Layout: opts.Layout,
	}

	var (
		lines []string
		err   error
	)

	switch opts.Layout {
	case config.LayoutDocument:
		lines, err = e.foldDocument(ctx, doc, blocks, opts, result)
	default:
		lines, err = e.runPasses(ctx, doc, blocks, opts, result)
	}
	if err != nil {
		return nil, err
	}

	for _, rr := range inlines {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("conversion cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, doc.Path, lines, opts)
		ruleCtx.Config = rr.Config

		lines, err = rr.Rule.Apply(ruleCtx)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rr.Rule.ID(), err)
		}
		result.Rules = append(result.Rules, rr.Rule.ID())
	}

	result.Lines = lines
	return result, nil
}

// runPasses runs every block rule over the whole document and concatenates
// their outputs in rule order.
func (e *Engine) runPasses(
	ctx context.Context,
	doc *Document,
	blocks []ResolvedRule,
	opts Options,
	result *Result,
) ([]string, error) {
	lines := []string{}

	for _, rr := range blocks {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("conversion cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, doc.Path, doc.Lines, opts)
		ruleCtx.Config = rr.Config

		out, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rr.Rule.ID(), err)
		}

		result.Sections = append(result.Sections, Section{RuleID: rr.Rule.ID(), Lines: out})
		result.Rules = append(result.Rules, rr.Rule.ID())
		result.MalformedHeadings = append(result.MalformedHeadings, ruleCtx.MalformedHeadings()...)
		lines = append(lines, out...)
	}

	slices.Sort(result.MalformedHeadings)
	result.MalformedHeadings = slices.Compact(result.MalformedHeadings)

	return lines, nil
}
