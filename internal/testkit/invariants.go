// Package testkit holds invariant checks shared by tests and fuzz
// harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/jbessels/rewrite-static-analysis/internal/ast"
	"github.com/jbessels/rewrite-static-analysis/internal/format"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
	"github.com/jbessels/rewrite-static-analysis/internal/token"
)

// CheckTokenStream runs the lossless-lexing invariants on a token stream:
// 1) the stream is non-empty and ends with EOF
// 2) token spans stay within the file and never move backwards
// 3) leading trivia plus token text reconstructs the file byte for byte
func CheckTokenStream(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		return fmt.Errorf("stream must end with EOF, got %d tokens", len(toks))
	}

	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	rebuilt := make([]byte, 0, len(sf.Content))
	for i, tok := range toks {
		if tok.Span.File != sf.ID {
			return fmt.Errorf("token %d points at file %d, want %d", i, tok.Span.File, sf.ID)
		}
		if tok.Span.End > lenContent {
			return fmt.Errorf("token %d span end beyond content: %d > %d", i, tok.Span.End, lenContent)
		}
		if tok.Span.Start < prevEnd {
			return fmt.Errorf("token %d span %v overlaps previous end %d", i, tok.Span, prevEnd)
		}
		prevEnd = tok.Span.End
		rebuilt = append(rebuilt, token.TriviaText(tok.Leading)...)
		rebuilt = append(rebuilt, tok.Text...)
	}
	if string(rebuilt) != string(sf.Content) {
		return fmt.Errorf("token stream does not reconstruct input:\n input: %q\noutput: %q", sf.Content, rebuilt)
	}
	return nil
}

// CheckLossless verifies that printing the tree reproduces the file it was
// parsed from. Only meaningful for files that parsed without errors.
func CheckLossless(f *ast.SourceFile, sf *source.File) error {
	if f == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	printed := format.Print(f)
	if printed != string(sf.Content) {
		return fmt.Errorf("tree does not print back to input:\n input: %q\noutput: %q", sf.Content, printed)
	}
	return nil
}
