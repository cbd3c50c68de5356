package convert

import (
	"slices"

	"github.com/yaklabco/gomd2html/pkg/config"
)

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run based on registry and config.
// Returns only enabled rules, in registry execution order.
func ResolveRules(registry *Registry, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range registry.Rules() {
		rr := resolveRule(registry, rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule.
// Precedence: default < rules.<ID>.enabled < --enable < --disable.
func resolveRule(registry *Registry, rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:    rule,
		Enabled: rule.DefaultEnabled(),
	}

	if cfg == nil {
		return rr
	}

	if ruleCfg, ok := cfg.Rules[rule.ID()]; ok {
		rr.Config = &ruleCfg
		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
	}

	if slices.ContainsFunc(cfg.EnableRules, func(key string) bool { return matchesRule(registry, rule, key) }) {
		rr.Enabled = true
	}
	if slices.ContainsFunc(cfg.DisableRules, func(key string) bool { return matchesRule(registry, rule, key) }) {
		rr.Enabled = false
	}

	return rr
}

// matchesRule reports whether key names rule by ID, name or alias.
func matchesRule(registry *Registry, rule Rule, key string) bool {
	if key == rule.ID() || key == rule.Name() {
		return true
	}
	id, _, ok := registry.Resolve(key)
	return ok && id == rule.ID()
}
