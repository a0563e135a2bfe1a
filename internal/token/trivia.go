package token

import "github.com/jbessels/rewrite-static-analysis/internal/source"

// TriviaKind classifies a piece of non-semantic source text.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "space"
	case TriviaNewline:
		return "newline"
	case TriviaLineComment:
		return "line-comment"
	case TriviaBlockComment:
		return "block-comment"
	default:
		return "unknown"
	}
}

// Trivia is whitespace or a comment preceding a token. Text holds the raw
// source bytes; Span records where the trivia originally came from and may
// go stale after rewrites, only Text is authoritative for printing.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// TriviaText concatenates raw trivia text in order.
func TriviaText(trivia []Trivia) string {
	switch len(trivia) {
	case 0:
		return ""
	case 1:
		return trivia[0].Text
	}
	n := 0
	for _, tr := range trivia {
		n += len(tr.Text)
	}
	out := make([]byte, 0, n)
	for _, tr := range trivia {
		out = append(out, tr.Text...)
	}
	return string(out)
}
