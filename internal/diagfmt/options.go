// Package diagfmt renders diagnostics and pipeline artifacts (token
// streams, parse trees) for the CLI: human-readable text, JSON, and
// SARIF 2.1.0.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeFull keeps the path as stored in the file set.
	PathModeFull PathMode = iota
	// PathModeRelative renders paths relative to the set's base directory.
	PathModeRelative
	// PathModeBasename keeps only the last path element.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col to every location
	PathMode         PathMode
	Max              int // truncate the output, not the bag
	IncludeNotes     bool
}

// SarifRunMeta provides tool metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InvocationArgs []string
}
