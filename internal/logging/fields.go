package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldBytes  = "bytes"

	// Configuration fields.
	FieldConfig = "config"
	FieldEngine = "engine"
	FieldMarker = "marker"
	FieldTypes  = "types"

	// Parsing fields.
	FieldLines  = "lines"
	FieldTokens = "tokens"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
