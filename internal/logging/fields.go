// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldInput = "input"

	// Document fields.
	FieldSections     = "sections"
	FieldSection      = "section"
	FieldPlaceholders = "placeholders"
	FieldLabel        = "label"
	FieldLocation     = "location"
	FieldLength       = "length"
	FieldVersion      = "version"

	// Highlighting fields.
	FieldLanguage  = "language"
	FieldTheme     = "theme"
	FieldDirty     = "dirty"
	FieldViewport  = "viewport"
	FieldRefreshed = "refreshed"

	// Build fields.
	FieldCommit = "commit"
	FieldBuilt  = "built"
)
