package config

import (
	"bytes"
	"fmt"
)

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Stage       string
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the convert package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the rules package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Rules overrides DefaultRuleInfoProvider when set.
	Rules []RuleInfo
}

// GenerateTemplate creates a commented configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	rules := opts.Rules
	if rules == nil && DefaultRuleInfoProvider != nil {
		rules = DefaultRuleInfoProvider()
	}

	var buf bytes.Buffer

	buf.WriteString(`# gomd2html configuration
# See: https://github.com/yaklabco/gomd2html

# Block layout:
#   passes   - headings, then lists, then paragraphs, each over the whole file
#   document - one pass, blocks in source order
layout: passes

# Prefix written before list items and paragraph lines.
indent: "  "

headings:
  # Fail on a "#" line with no text instead of treating it as plain text.
  strict: false

inline:
  # Keep the (( )) markers around text with c/C removed.
  keep_strip_delimiters: false

# File patterns skipped by batch and check (glob patterns).
# ignore:
#   - "vendor/**"

# Extensions treated as Markdown by batch and check.
# extensions: [".md", ".markdown"]

# output:
#   dir: site
#   extension: .html
`)

	if len(rules) == 0 {
		return buf.Bytes(), nil
	}

	buf.WriteString("\n# Per-rule settings, keyed by rule ID or name.\nrules:\n")
	for _, rule := range rules {
		if _, err := fmt.Fprintf(&buf, "  # %s (%s stage): %s\n  %s:\n    enabled: true\n",
			rule.Name, rule.Stage, rule.Description, rule.ID); err != nil {
			return nil, fmt.Errorf("write rule %s: %w", rule.ID, err)
		}
	}

	return buf.Bytes(), nil
}
