package convert

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id    string // Unique identifier (e.g., "B001")
	name  string // Human-readable name
	desc  string // Short description
	stage Stage
	order int
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, stage Stage, order int) BaseRule {
	return BaseRule{
		id:    id,
		name:  name,
		desc:  desc,
		stage: stage,
		order: order,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a short description of what the rule emits.
func (r *BaseRule) Description() string {
	return r.desc
}

// Stage returns the stage the rule runs in.
func (r *BaseRule) Stage() Stage {
	return r.stage
}

// Order positions the rule within its stage.
func (r *BaseRule) Order() int {
	return r.order
}

// DefaultEnabled returns whether the rule is enabled by default.
// Override this method to change the default.
func (r *BaseRule) DefaultEnabled() bool {
	return true
}

// Apply must be overridden by concrete rule implementations.
// The default implementation passes the input through unchanged.
func (r *BaseRule) Apply(ctx *RuleContext) ([]string, error) {
	return ctx.Lines, nil
}
