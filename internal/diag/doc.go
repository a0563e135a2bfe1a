// Package diag carries diagnostics produced while lexing and parsing source
// files. Passes themselves never report diagnostics; a file that fails to
// parse is left untouched and its diagnostics are surfaced to the caller.
package diag
