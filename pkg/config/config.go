// Package config defines core configuration types for gomd2html.
// These types are pure data structures with no dependency on how they are loaded.
package config

// Layout selects how block rule outputs are arranged in the final document.
type Layout string

const (
	// LayoutPasses runs every block rule over the whole document and
	// concatenates their outputs in rule order (heading, list, paragraph).
	LayoutPasses Layout = "passes"

	// LayoutDocument classifies each line once and emits blocks in source order.
	LayoutDocument Layout = "document"
)

// IsValid returns true if the layout is known.
func (l Layout) IsValid() bool {
	switch l {
	case LayoutPasses, LayoutDocument:
		return true
	default:
		return false
	}
}

// DefaultIndent is the prefix written before list items and paragraph lines.
const DefaultIndent = "  "

// DefaultOutputExtension is the extension given to batch outputs.
const DefaultOutputExtension = ".html"

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// HeadingsConfig controls heading recognition.
type HeadingsConfig struct {
	// Strict turns a "#" line without text into a conversion error
	// instead of treating it as plain text.
	Strict bool `yaml:"strict"`
}

// InlineConfig controls the inline substitution rules.
type InlineConfig struct {
	// KeepStripDelimiters keeps the (( and )) markers around stripped text.
	KeepStripDelimiters bool `yaml:"keep_strip_delimiters"`
}

// OutputConfig controls where batch conversions are written.
type OutputConfig struct {
	// Dir mirrors converted files under this directory. Empty writes next to the input.
	Dir string `yaml:"dir"`

	// Extension replaces the input extension on output files.
	Extension string `yaml:"extension"`
}

// Config is the root configuration structure for gomd2html.
type Config struct {
	// Layout selects the block arrangement ("passes" or "document").
	Layout Layout `yaml:"layout"`

	// Indent is written before list items and paragraph lines.
	// A nil Indent means "not set" so an empty string can be configured.
	Indent *string `yaml:"indent"`

	// Headings configures heading recognition.
	Headings HeadingsConfig `yaml:"headings"`

	// Inline configures the inline rules.
	Inline InlineConfig `yaml:"inline"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Ignore contains glob patterns for files skipped by batch and check.
	Ignore []string `yaml:"ignore"`

	// Extensions lists the file extensions treated as Markdown by batch and check.
	Extensions []string `yaml:"extensions"`

	// Output configures batch output placement.
	Output OutputConfig `yaml:"output"`

	// CLI-level options (not persisted to config files).

	// Jobs specifies the number of parallel workers for batch conversion.
	Jobs int `yaml:"-"`

	// DryRun converts without writing any output.
	DryRun bool `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	indent := DefaultIndent
	return &Config{
		Layout:     LayoutPasses,
		Indent:     &indent,
		Rules:      make(map[string]RuleConfig),
		Extensions: []string{".md", ".markdown"},
		Output: OutputConfig{
			Extension: DefaultOutputExtension,
		},
		Jobs: 0, // 0 means use GOMAXPROCS
	}
}

// IndentOrDefault returns the configured indent, or DefaultIndent when unset.
func (c *Config) IndentOrDefault() string {
	if c == nil || c.Indent == nil {
		return DefaultIndent
	}
	return *c.Indent
}

// LayoutOrDefault returns the configured layout, or LayoutPasses when unset.
func (c *Config) LayoutOrDefault() Layout {
	if c == nil || c.Layout == "" {
		return LayoutPasses
	}
	return c.Layout
}

// OutputExtensionOrDefault returns the batch output extension.
func (c *Config) OutputExtensionOrDefault() string {
	if c == nil || c.Output.Extension == "" {
		return DefaultOutputExtension
	}
	return c.Output.Extension
}
