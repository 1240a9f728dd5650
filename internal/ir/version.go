package ir

// Version constants for the wire format and the tool.
const (
	// FormatVersion is the record schema version.
	FormatVersion = "1"

	// ToolVersion is the periods CLI version.
	ToolVersion = "0.1.0"
)
