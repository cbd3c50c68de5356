package convert

// Stage groups rules by the input they consume.
type Stage int

const (
	// StageBlock rules read the raw document lines and emit block markup.
	StageBlock Stage = iota

	// StageInline rules rewrite already emitted lines one at a time.
	StageInline
)

// String returns the lowercase stage name.
func (s Stage) String() string {
	switch s {
	case StageBlock:
		return "block"
	case StageInline:
		return "inline"
	default:
		return "unknown"
	}
}

// Rule defines the interface that all conversion rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "B001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a short description of what the rule emits.
	Description() string

	// Stage returns the stage the rule runs in.
	Stage() Stage

	// Order positions the rule within its stage. Lower runs first.
	Order() int

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// Apply runs the rule over ctx.Lines and returns its output lines.
	//
	// Rules must:
	//   - Treat ctx.Lines as read-only.
	//   - Keep all run state local to the call.
	//   - Respect context cancellation.
	Apply(ctx *RuleContext) ([]string, error)
}

// KindRule is implemented by block rules that own line kinds. The document
// layout consults it to decide which classifications a rule emits markup for.
type KindRule interface {
	Rule

	// Kinds returns the line kinds this rule converts.
	Kinds() []Kind
}
