// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldLine       = "line"
	FieldSource     = "source"

	// Configuration fields.
	FieldLayout  = "layout"
	FieldIndent  = "indent"
	FieldStrict  = "strict"
	FieldDryRun  = "dry_run"
	FieldJobs    = "jobs"
	FieldOutDir  = "out_dir"
	FieldRules   = "rules"
	FieldFormat  = "format"
	FieldEnabled = "enabled"

	// Statistics fields.
	FieldFilesDiscovered   = "files_discovered"
	FieldFilesConverted    = "files_converted"
	FieldFilesFailed       = "files_failed"
	FieldFilesUnchanged    = "files_unchanged"
	FieldBytesWritten      = "bytes_written"
	FieldMalformedHeadings = "malformed_headings"
	FieldFindings          = "findings"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
	FieldGo      = "go"

	// Rule fields.
	FieldName        = "name"
	FieldStage       = "stage"
	FieldDescription = "description"
	FieldAliases     = "aliases"
)
