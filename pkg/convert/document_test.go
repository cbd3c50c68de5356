package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yaklabco/gomd2html/pkg/convert"
)

func TestNewDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: []string{}},
		{name: "terminated", content: "a\nb\n", want: []string{"a\n", "b\n"}},
		{name: "unterminated last line", content: "a\nb", want: []string{"a\n", "b"}},
		{name: "crlf", content: "a\r\nb\r\n", want: []string{"a\r\n", "b\r\n"}},
		{name: "blank lines", content: "\n\n", want: []string{"\n", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := convert.NewDocument("x.md", []byte(tt.content))
			assert.Equal(t, tt.want, doc.Lines)
			assert.Equal(t, len(tt.want), doc.Len())
		})
	}
}

func TestDocumentText(t *testing.T) {
	t.Parallel()

	doc := convert.NewDocument("", []byte("one\r\ntwo\n"))
	assert.Equal(t, "one", doc.Text(0))
	assert.Equal(t, "two", doc.Text(1))
	assert.Empty(t, doc.Text(2))
	assert.Empty(t, doc.Text(-1))

	var nilDoc *convert.Document
	assert.Zero(t, nilDoc.Len())
}
