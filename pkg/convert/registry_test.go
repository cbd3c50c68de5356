package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaklabco/gomd2html/pkg/convert"
)

// mockRule is a test rule with configurable metadata and output.
type mockRule struct {
	convert.BaseRule
	enabled bool
	out     []string
}

func newMockRule(id, name string, stage convert.Stage, order int) *mockRule {
	return &mockRule{
		BaseRule: convert.NewBaseRule(id, name, "mock rule", stage, order),
		enabled:  true,
	}
}

func (m *mockRule) DefaultEnabled() bool {
	return m.enabled
}

func (m *mockRule) Apply(ctx *convert.RuleContext) ([]string, error) {
	if m.out != nil {
		return m.out, nil
	}
	return ctx.Lines, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := convert.NewRegistry()
	registry.Register(newMockRule("X001", "first", convert.StageBlock, 1))

	rule, ok := registry.Get("X001")
	require.True(t, ok)
	assert.Equal(t, "first", rule.Name())

	rule, ok = registry.Get("first")
	require.True(t, ok)
	assert.Equal(t, "X001", rule.ID())

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	registry := convert.NewRegistry()
	registry.Register(newMockRule("X001", "first", convert.StageBlock, 1))
	registry.RegisterAlias("one", "X001")
	registry.RegisterAlias("dangling", "X999")

	for _, key := range []string{"X001", "first", "one"} {
		id, _, ok := registry.Resolve(key)
		require.True(t, ok, key)
		assert.Equal(t, "X001", id)
	}

	_, _, ok := registry.Resolve("dangling")
	assert.False(t, ok)
}

func TestRegistry_Aliases(t *testing.T) {
	t.Parallel()

	registry := convert.NewRegistry()
	registry.Register(newMockRule("X001", "first", convert.StageBlock, 1))
	registry.RegisterAlias("uno", "X001")
	registry.RegisterAlias("one", "X001")
	registry.RegisterAlias("two", "X002")

	assert.Equal(t, []string{"one", "uno"}, registry.Aliases("X001"))
	assert.Empty(t, registry.Aliases("X003"))
}

func TestRegistry_RulesOrder(t *testing.T) {
	t.Parallel()

	registry := convert.NewRegistry()
	registry.Register(newMockRule("I900", "inline-late", convert.StageInline, 5))
	registry.Register(newMockRule("B200", "block-b", convert.StageBlock, 20))
	registry.Register(newMockRule("B100", "block-a", convert.StageBlock, 20))
	registry.Register(newMockRule("B300", "block-first", convert.StageBlock, 1))

	var ids []string
	for _, rule := range registry.Rules() {
		ids = append(ids, rule.ID())
	}

	assert.Equal(t, []string{"B300", "B100", "B200", "I900"}, ids)
	assert.Equal(t, []string{"B100", "B200", "B300", "I900"}, registry.IDs())
}

func TestRegistry_ReplaceByID(t *testing.T) {
	t.Parallel()

	registry := convert.NewRegistry()
	registry.Register(newMockRule("X001", "old", convert.StageBlock, 1))
	registry.Register(newMockRule("X001", "new", convert.StageBlock, 1))

	rules := registry.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, "new", rules[0].Name())
}
