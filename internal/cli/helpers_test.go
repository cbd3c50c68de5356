package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomd2html/internal/cli"
)

// scenario is the three-block sample document.
const scenario = "# Title\n\n* item one\n- item two\n\nplain text\n"

// scenarioPasses is scenario converted with the default passes layout.
const scenarioPasses = "<h1>Title</h1>\n" +
	"<ul>\n" +
	"  <li>item one</li>\n" +
	"<ol>\n" +
	"  <li>item two</li>\n" +
	"</ul>\n" +
	"</ol>\n" +
	"<p>\n" +
	"  # Title\n" +
	"</p>\n" +
	"\n" +
	"<p>\n" +
	"  * item one\n" +
	"  - item two\n" +
	"</p>\n" +
	"\n" +
	"<p>\n" +
	"  plain text\n" +
	"</p>\n"

// scenarioDocument is scenario converted with the document layout.
const scenarioDocument = "<h1>Title</h1>\n" +
	"\n" +
	"<ul>\n" +
	"  <li>item one</li>\n" +
	"</ul>\n" +
	"<ol>\n" +
	"  <li>item two</li>\n" +
	"</ol>\n" +
	"\n" +
	"<p>\n" +
	"  plain text\n" +
	"</p>\n"

type execResult struct {
	stdout string
	stderr string
	err    error
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) execResult {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(&bytes.Buffer{})
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()

	return execResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// writeFile writes content to dir/name, creating parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// writeConfig writes a config file that shadows any project config.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	if content == "" {
		content = "layout: passes\n"
	}
	return writeFile(t, t.TempDir(), ".gomd2html.yml", content)
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}
