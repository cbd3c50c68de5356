package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/gomd2html/pkg/config"
	"github.com/yaklabco/gomd2html/pkg/convert"
)

func TestRegisterAll(t *testing.T) {
	t.Parallel()

	registry := convert.NewRegistry()
	RegisterAll(registry)

	ids := make([]string, 0)
	for _, rule := range registry.Rules() {
		ids = append(ids, rule.ID())
	}
	assert.Equal(t, []string{"B001", "B002", "B003", "I001", "I002"}, ids)

	rule, ok := registry.Get("paragraph")
	require.True(t, ok)
	assert.Equal(t, "B003", rule.ID())
}

func TestRegisterAliases(t *testing.T) {
	t.Parallel()

	registry := convert.NewRegistry()
	RegisterAll(registry)
	RegisterAliases(registry)

	tests := []struct {
		alias  string
		wantID string
	}{
		{alias: "headings", wantID: "B001"},
		{alias: "lists", wantID: "B002"},
		{alias: "paragraphs", wantID: "B003"},
		{alias: "bold", wantID: "I001"},
		{alias: "strip", wantID: "I002"},
		{alias: "inline-strip", wantID: "I002"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			t.Parallel()

			id, _, ok := registry.Resolve(tt.alias)
			require.True(t, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestBlockRulesOwnKinds(t *testing.T) {
	t.Parallel()

	owned := map[convert.Kind]string{}
	for _, rule := range []convert.KindRule{NewHeadingRule(), NewListRule(), NewParagraphRule()} {
		for _, kind := range rule.Kinds() {
			_, dup := owned[kind]
			assert.False(t, dup, "kind %s owned twice", kind)
			owned[kind] = rule.ID()
		}
	}
	assert.Len(t, owned, 4)
}

func TestDefaultRuleInfoProvider(t *testing.T) {
	t.Parallel()

	require.NotNil(t, config.DefaultRuleInfoProvider)

	infos := config.DefaultRuleInfoProvider()
	require.Len(t, infos, 5)
	assert.Equal(t, "B001", infos[0].ID)
	assert.Equal(t, "block", infos[0].Stage)
	assert.Equal(t, "inline", infos[4].Stage)
}
