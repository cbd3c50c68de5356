package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yaklabco/gomd2html/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "shebang bash", content: "#!/bin/bash\necho hello", want: "bash"},
		{name: "shebang sh normalizes to bash", content: "#!/bin/sh\necho hello", want: "bash"},
		{name: "shebang beats probes", content: "#!/bin/bash\ndef foo():\n    pass", want: "bash"},
		{name: "go", content: "package main\n\nfunc main() {}", want: "go"},
		{name: "python", content: "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()", want: "python"},
		{name: "javascript", content: "const x = () => 42;\nconsole.log(x());", want: "javascript"},
		{name: "json", content: `{"key": "value"}`, want: "json"},
		{name: "yaml", content: "key: value\nother: 123\nlist:\n  - item1", want: "yaml"},
		{name: "rust", content: "fn main() {\n    println!(\"hi\");\n}", want: "rust"},
		{name: "sql", content: "select * from users;", want: "sql"},
		{name: "html", content: "<!DOCTYPE html>\n<html></html>", want: "html"},
		{name: "dockerfile", content: "FROM golang:1.25\nRUN go build", want: "dockerfile"},
		{name: "plain text", content: "just some text without any code patterns", want: langdetect.Unknown},
		{name: "empty", content: "", want: langdetect.Unknown},
		{name: "whitespace only", content: " \n\t\n", want: langdetect.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, langdetect.Detect([]byte(tt.content)))
		})
	}
}

func TestKnown(t *testing.T) {
	t.Parallel()

	assert.True(t, langdetect.Known("go"))
	assert.True(t, langdetect.Known("python"))
	assert.False(t, langdetect.Known(""))
	assert.False(t, langdetect.Known("definitely-not-a-language"))
}

func BenchmarkDetect(b *testing.B) {
	code := []byte("package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n")
	for b.Loop() {
		langdetect.Detect(code)
	}
}
