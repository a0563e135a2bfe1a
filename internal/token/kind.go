package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// IntLit represents a decimal integer literal.
	IntLit
	// LongLit represents an integer literal with an L suffix.
	LongLit
	// FloatLit represents a floating-point literal with an f suffix.
	FloatLit
	// DoubleLit represents a floating-point literal without an f suffix.
	DoubleLit
	// StringLit represents a double-quoted string literal.
	StringLit

	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwNull represents the 'null' literal keyword.
	KwNull // null
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false

	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	AmpAssign     // &=
	PipeAssign    // |=
	CaretAssign   // ^=
	ShlAssign     // <<=
	ShrAssign     // >>=
	UshrAssign    // >>>=

	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %
	Amp     // &
	Pipe    // |
	Caret   // ^
	Shl     // <<
	Shr     // >>
	Ushr    // >>>
	AndAnd  // &&
	OrOr    // ||
	Bang    // !
	Tilde   // ~
	EqEq    // ==
	BangEq  // !=
	Lt      // <
	Gt      // >
	LtEq    // <=
	GtEq    // >=

	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	Semicolon // ;
	Comma     // ,
	Dot       // .
	Arrow     // ->

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:       "invalid",
	EOF:           "eof",
	Ident:         "ident",
	IntLit:        "int",
	LongLit:       "long",
	FloatLit:      "float",
	DoubleLit:     "double",
	StringLit:     "string",
	KwIf:          "if",
	KwElse:        "else",
	KwWhile:       "while",
	KwDo:          "do",
	KwFor:         "for",
	KwReturn:      "return",
	KwNull:        "null",
	KwTrue:        "true",
	KwFalse:       "false",
	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	AmpAssign:     "&=",
	PipeAssign:    "|=",
	CaretAssign:   "^=",
	ShlAssign:     "<<=",
	ShrAssign:     ">>=",
	UshrAssign:    ">>>=",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Shl:           "<<",
	Shr:           ">>",
	Ushr:          ">>>",
	AndAnd:        "&&",
	OrOr:          "||",
	Bang:          "!",
	Tilde:         "~",
	EqEq:          "==",
	BangEq:        "!=",
	Lt:            "<",
	Gt:            ">",
	LtEq:          "<=",
	GtEq:          ">=",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	Semicolon:     ";",
	Comma:         ",",
	Dot:           ".",
	Arrow:         "->",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}
