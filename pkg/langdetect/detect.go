// Package langdetect guesses the language of code snippets found in
// Markdown documents so check findings can suggest a fence label.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be guessed.
const Unknown = "text"

// classifierCandidates limits the enry classifier to languages commonly
// pasted into documentation.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// probe recognizes one language from a cheap textual signature.
type probe struct {
	lang  string
	match func(s snippet) bool
}

// snippet holds the views of the content the probes look at.
type snippet struct {
	raw     []byte
	text    string
	trimmed string
}

// probes run in order; the first match wins.
var probes = []probe{
	{"go", func(s snippet) bool { return strings.HasPrefix(s.trimmed, "package ") }},
	{"python", looksLikePython},
	{"html", func(s snippet) bool {
		lower := strings.ToLower(s.trimmed)
		return containsAny(lower, "<!doctype html", "<html", "<head>", "<body>")
	}},
	{"json", func(s snippet) bool {
		return (strings.HasPrefix(s.trimmed, "{") || strings.HasPrefix(s.trimmed, "[")) &&
			strings.Contains(s.trimmed, `"`)
	}},
	{"dockerfile", func(s snippet) bool {
		return strings.HasPrefix(s.trimmed, "FROM ") ||
			(strings.Contains(s.text, "\nFROM ") && strings.Contains(s.text, "\nRUN ")) ||
			(strings.Contains(s.text, "WORKDIR ") && strings.Contains(s.text, "COPY "))
	}},
	{"sql", func(s snippet) bool {
		upper := strings.ToUpper(s.trimmed)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{"rust", func(s snippet) bool { return containsAny(s.text, "fn main()", "println!", "let mut ") }},
	{"javascript", func(s snippet) bool { return containsAny(s.text, "=>", "const ", "let ", "console.log") }},
	{"yaml", looksLikeYAML},
}

// Detect returns a lowercase fence label for content, or Unknown.
//
// A shebang is trusted first, then the textual probes, then the enry
// classifier when it reports a confident result.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Unknown
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	s := snippet{
		raw:     content,
		text:    string(content),
		trimmed: string(bytes.TrimSpace(content)),
	}
	for _, p := range probes {
		if p.match(s) {
			return p.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Unknown
}

// Known reports whether label names a language enry recognizes as a fence
// alias, such as "go", "sh" or "yml".
func Known(label string) bool {
	if label == "" {
		return false
	}
	_, ok := enry.GetLanguageByAlias(label)
	return ok
}

func looksLikePython(s snippet) bool {
	if strings.Contains(s.text, "def ") && strings.Contains(s.text, "):") {
		return true
	}
	if strings.Contains(s.text, "import ") && !strings.Contains(s.text, "import (") &&
		(strings.Contains(s.text, "from ") || strings.HasPrefix(s.trimmed, "import ")) {
		return true
	}
	return containsAny(s.text, "__name__", "__main__")
}

// looksLikeYAML wants at least two "key: value" or "- item" lines.
func looksLikeYAML(s snippet) bool {
	count := 0
	for line := range bytes.SplitSeq(s.raw, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) && !bytes.ContainsAny(line, "({") && line[0] != '"' {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count >= 2
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
