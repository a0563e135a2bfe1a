package token

import (
	"github.com/jbessels/rewrite-static-analysis/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, string, or null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, LongLit, FloatLit, DoubleLit, StringLit, KwNull, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsCompoundAssign reports whether the token is a compound assignment operator.
func (t Token) IsCompoundAssign() bool {
	switch t.Kind {
	case PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign,
		AmpAssign, PipeAssign, CaretAssign, ShlAssign, ShrAssign, UshrAssign:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwIf, KwElse, KwWhile, KwDo, KwFor, KwReturn, KwNull, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
