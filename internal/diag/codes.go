package diag

import "fmt"

// Code is a stable numeric identifier for a diagnostic category.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical codes.
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Syntactic codes.
	SynUnexpectedToken Code = 2001
	SynExpectSemicolon Code = 2002
	SynUnclosedParen   Code = 2003
	SynUnclosedBrace   Code = 2004
	SynBadForHeader    Code = 2005
	SynBadLambdaParams Code = 2006

	// I/O codes.
	IOLoadFile Code = 3001

	// Style codes.
	StyleRedundantParens Code = 4001
)

// ID renders the code in the form used in user-facing output, e.g. "JX2001".
func (c Code) ID() string {
	return fmt.Sprintf("JX%04d", uint16(c))
}
