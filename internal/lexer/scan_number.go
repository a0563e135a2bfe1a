package lexer

import (
	"github.com/jbessels/rewrite-static-analysis/internal/diag"
	"github.com/jbessels/rewrite-static-analysis/internal/token"
)

// scanNumber handles decimal integer and floating literals with the
// dialect's suffix rules:
//   - digits               -> IntLit
//   - digits L/l           -> LongLit
//   - a '.', exponent, or d/D suffix -> DoubleLit
//   - f/F suffix           -> FloatLit
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// Leading dot form ".digits" (caller checked a digit follows).
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.DoubleLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.finishNumber(start, kind)
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// Fraction.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		kind = token.DoubleLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	return lx.finishNumber(start, kind)
}

func (lx *Lexer) finishNumber(start Mark, kind token.Kind) token.Token {
	// Exponent.
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// "1e" followed by a non-digit is not an exponent; back off.
			lx.cursor.Reset(mark)
		} else {
			kind = token.DoubleLit
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	// Suffix.
	switch lx.cursor.Peek() {
	case 'l', 'L':
		lx.cursor.Bump()
		if kind != token.IntLit {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "L suffix on a floating literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.textFrom(start)}
		}
		kind = token.LongLit
	case 'f', 'F':
		lx.cursor.Bump()
		kind = token.FloatLit
	case 'd', 'D':
		lx.cursor.Bump()
		kind = token.DoubleLit
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.textFrom(start)}
}

func (lx *Lexer) textFrom(start Mark) string {
	sp := lx.cursor.SpanFrom(start)
	return string(lx.file.Content[sp.Start:sp.End])
}
