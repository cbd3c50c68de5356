package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomd2html/internal/cli"
	"github.com/yaklabco/gomd2html/internal/configloader"
	"github.com/yaklabco/gomd2html/pkg/config"
)

func TestInit_WritesLoadableTemplate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", ".gomd2html.yml")

	res := execute(t, "init", "--output", path)
	require.NoError(t, res.err)

	cfg, validation, err := configloader.LoadFile(path)
	require.NoError(t, err)
	assert.True(t, validation.Valid(), validation.AllMessages())
	assert.False(t, validation.HasWarnings(), validation.AllMessages())
	assert.Equal(t, config.LayoutPasses, cfg.LayoutOrDefault())

	content := readFile(t, path)
	for _, id := range []string{"B001", "B002", "B003", "I001", "I002"} {
		assert.Contains(t, content, id)
	}
}

//nolint:paralleltest // Replaces the package-level terminal check.
func TestInit_RefusesOverwriteWithoutTerminal(t *testing.T) {
	restore := cli.SetIsTerminal(func() bool { return false })
	defer restore()

	path := writeFile(t, t.TempDir(), ".gomd2html.yml", "layout: document\n")

	res := execute(t, "init", "--output", path)

	var usageErr *cli.UsageError
	require.ErrorAs(t, res.err, &usageErr)
	assert.Contains(t, usageErr.Msg, "--force")
	assert.Equal(t, "layout: document\n", readFile(t, path))
}

func TestInit_Force(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), ".gomd2html.yml", "layout: document\n")

	res := execute(t, "init", "--force", "--output", path)
	require.NoError(t, res.err)

	assert.NotEqual(t, "layout: document\n", readFile(t, path))
}

//nolint:paralleltest // Replaces the package-level terminal check.
func TestInit_Prompt(t *testing.T) {
	restore := cli.SetIsTerminal(func() bool { return true })
	defer restore()

	tests := []struct {
		name      string
		answer    string
		overwrite bool
	}{
		{name: "yes", answer: "y\n", overwrite: true},
		{name: "full yes", answer: "YES\n", overwrite: true},
		{name: "no", answer: "n\n", overwrite: false},
		{name: "empty", answer: "\n", overwrite: false},
		{name: "eof", answer: "", overwrite: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), ".gomd2html.yml", "layout: document\n")

			cmd := cli.NewRootCommand(testInfo())
			var stdout, stderr bytes.Buffer
			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)
			cmd.SetIn(bytes.NewBufferString(tt.answer))
			cmd.SetArgs([]string{"init", "--output", path})

			require.NoError(t, cmd.Execute())
			assert.Contains(t, stderr.String(), "Overwrite?")

			if tt.overwrite {
				assert.NotEqual(t, "layout: document\n", readFile(t, path))
			} else {
				assert.Equal(t, "layout: document\n", readFile(t, path))
			}
		})
	}
}
