package rules

import (
	"github.com/yaklabco/gomd2html/pkg/config"
	"github.com/yaklabco/gomd2html/pkg/convert"
)

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *convert.Registry) {
	// Block rules
	registry.Register(NewHeadingRule())   // B001
	registry.Register(NewListRule())      // B002
	registry.Register(NewParagraphRule()) // B003

	// Inline rules
	registry.Register(NewBoldRule())  // I001
	registry.Register(NewStripRule()) // I002
}

// RegisterAliases registers the short names accepted by --enable, --disable
// and the rules: config section in addition to IDs and canonical names.
func RegisterAliases(registry *convert.Registry) {
	registry.RegisterAlias("headings", "B001")
	registry.RegisterAlias("lists", "B002")
	registry.RegisterAlias("paragraphs", "B003")
	registry.RegisterAlias("bold", "I001")
	registry.RegisterAlias("strip", "I002")
}

// RuleInfos returns template metadata for the rules in registry.
func RuleInfos(registry *convert.Registry) []config.RuleInfo {
	rules := registry.Rules()
	infos := make([]config.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, config.RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Stage:       rule.Stage().String(),
		})
	}
	return infos
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(convert.DefaultRegistry)
	RegisterAliases(convert.DefaultRegistry)

	config.DefaultRuleInfoProvider = func() []config.RuleInfo {
		return RuleInfos(convert.DefaultRegistry)
	}
}
