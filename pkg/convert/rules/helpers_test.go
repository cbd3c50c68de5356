package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yaklabco/gomd2html/pkg/config"
	"github.com/yaklabco/gomd2html/pkg/convert"
)

func defaultOptions() convert.Options {
	return convert.Options{
		Layout: config.LayoutPasses,
		Indent: config.DefaultIndent,
	}
}

// applyRule runs rule over the lines of content with opts.
func applyRule(t *testing.T, rule convert.Rule, content string, opts convert.Options) ([]string, *convert.RuleContext) {
	t.Helper()

	doc := convert.NewDocument("test.md", []byte(content))
	ctx := convert.NewRuleContext(context.Background(), doc.Path, doc.Lines, opts)

	out, err := rule.Apply(ctx)
	require.NoError(t, err)
	return out, ctx
}
