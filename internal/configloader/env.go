package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gomd2html/pkg/config"
)

// envVarPrefix is the prefix for all gomd2html environment variables.
const envVarPrefix = "GOMD2HTML_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"LAYOUT":                {field: "layout", typ: envTypeString},
	"INDENT":                {field: "indent", typ: envTypeString},
	"STRICT_HEADINGS":       {field: "headings.strict", typ: envTypeBool},
	"KEEP_STRIP_DELIMITERS": {field: "inline.keep_strip_delimiters", typ: envTypeBool},
	"OUTPUT_DIR":            {field: "output.dir", typ: envTypeString},
	"OUTPUT_EXTENSION":      {field: "output.extension", typ: envTypeString},
	"DRY_RUN":               {field: "dry_run", typ: envTypeBool},
	"JOBS":                  {field: "jobs", typ: envTypeInt},
	"IGNORE":                {field: "ignore", typ: envTypeSlice},
	"EXTENSIONS":            {field: "extensions", typ: envTypeSlice},
	"ENABLE":                {field: "enable", typ: envTypeSlice},
	"DISABLE":               {field: "disable", typ: envTypeSlice},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOMD2HTML_ (e.g., GOMD2HTML_LAYOUT).
func LoadFromEnv(cfg *config.Config) error {
	return loadFromLookup(cfg, os.LookupEnv)
}

// loadFromLookup applies overrides using lookup. GOMD2HTML_INDENT may be
// set to the empty string; every other variable is skipped when empty.
func loadFromLookup(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value, ok := lookup(envVar)
		if !ok || (value == "" && mapping.field != "indent") {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "layout":
		cfg.Layout = config.Layout(value)
	case "indent":
		indent := value
		cfg.Indent = &indent
	case "output.dir":
		cfg.Output.Dir = value
	case "output.extension":
		cfg.Output.Extension = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "headings.strict":
		cfg.Headings.Strict = value
	case "inline.keep_strip_delimiters":
		cfg.Inline.KeepStripDelimiters = value
	case "dry_run":
		cfg.DryRun = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "extensions":
		cfg.Extensions = value
	case "enable":
		cfg.EnableRules = value
	case "disable":
		cfg.DisableRules = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOMD2HTML_LAYOUT":                "Block layout: passes or document",
		"GOMD2HTML_INDENT":                "Prefix for list items and paragraph lines",
		"GOMD2HTML_STRICT_HEADINGS":       "Fail on headings without text: true or false",
		"GOMD2HTML_KEEP_STRIP_DELIMITERS": "Keep (( )) around stripped text: true or false",
		"GOMD2HTML_OUTPUT_DIR":            "Directory that batch outputs are mirrored under",
		"GOMD2HTML_OUTPUT_EXTENSION":      "Extension of batch outputs (default .html)",
		"GOMD2HTML_DRY_RUN":               "Convert without writing: true or false",
		"GOMD2HTML_JOBS":                  "Number of parallel batch workers (0 = auto)",
		"GOMD2HTML_IGNORE":                "Comma-separated list of ignore patterns",
		"GOMD2HTML_EXTENSIONS":            "Comma-separated list of Markdown file extensions",
		"GOMD2HTML_ENABLE":                "Comma-separated rule IDs or names to enable",
		"GOMD2HTML_DISABLE":               "Comma-separated rule IDs or names to disable",
	}
}
