package convert

import (
	"context"
	"slices"

	"github.com/yaklabco/gomd2html/pkg/config"
)

// Options are the conversion settings resolved from a Config.
type Options struct {
	// Layout selects how block outputs are arranged.
	Layout config.Layout

	// Indent prefixes list items and paragraph lines.
	Indent string

	// StrictHeadings makes a heading marker without text an error.
	StrictHeadings bool

	// KeepStripDelimiters keeps (( and )) around stripped text.
	KeepStripDelimiters bool
}

// OptionsFromConfig resolves Options from cfg. A nil cfg yields the defaults.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{
			Layout: config.LayoutPasses,
			Indent: config.DefaultIndent,
		}
	}
	return Options{
		Layout:              cfg.LayoutOrDefault(),
		Indent:              cfg.IndentOrDefault(),
		StrictHeadings:      cfg.Headings.Strict,
		KeepStripDelimiters: cfg.Inline.KeepStripDelimiters,
	}
}

// RuleContext provides all context needed by a rule to produce output.
//
// RuleContext stores context.Context as a field (Ctx) because it is a
// short-lived parameter object created per rule invocation.
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// Path is the source document path. It may be empty.
	Path string

	// Lines is the rule input: raw document lines for block rules,
	// emitted lines for inline rules.
	Lines []string

	// Options are the resolved conversion settings.
	Options Options

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig

	malformed []int
}

// NewRuleContext creates a RuleContext over lines.
func NewRuleContext(ctx context.Context, path string, lines []string, opts Options) *RuleContext {
	return &RuleContext{
		Ctx:     ctx,
		Path:    path,
		Lines:   lines,
		Options: opts,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// ReportMalformedHeading records a 1-based line number whose heading
// marker carried no text.
func (rc *RuleContext) ReportMalformedHeading(line int) {
	rc.malformed = append(rc.malformed, line)
}

// MalformedHeadings returns the line numbers reported so far.
func (rc *RuleContext) MalformedHeadings() []int {
	return slices.Clone(rc.malformed)
}
