package lexer

import (
	"strings"
	"testing"

	"github.com/jbessels/rewrite-static-analysis/internal/source"
	"github.com/jbessels/rewrite-static-analysis/internal/token"
)

func tokenize(t *testing.T, input string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.jx", []byte(input))
	return Tokenize(fs.Get(id), Options{})
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestTokenizeBasicStatement(t *testing.T) {
	toks := tokenize(t, "int x = 1;")
	want := []token.Kind{token.Ident, token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestNumberSuffixes(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"42", token.IntLit},
		{"42L", token.LongLit},
		{"42l", token.LongLit},
		{"1.5", token.DoubleLit},
		{"1.5d", token.DoubleLit},
		{"42D", token.DoubleLit},
		{"1.5f", token.FloatLit},
		{"42f", token.FloatLit},
		{"1e9", token.DoubleLit},
		{"1.5e-3", token.DoubleLit},
		{"2e10f", token.FloatLit},
	}
	for _, c := range cases {
		toks := tokenize(t, c.input)
		if toks[0].Kind != c.kind {
			t.Errorf("%q: expected %v, got %v", c.input, c.kind, toks[0].Kind)
		}
		if toks[0].Text != c.input {
			t.Errorf("%q: expected full text, got %q", c.input, toks[0].Text)
		}
	}
}

func TestLongSuffixOnlyOnIntegers(t *testing.T) {
	// 1.5L is not a long literal; the L starts the next token.
	toks := tokenize(t, "1.5L")
	if toks[0].Kind != token.DoubleLit || toks[0].Text != "1.5" {
		t.Fatalf("expected double '1.5', got %v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.Ident || toks[1].Text != "L" {
		t.Fatalf("expected trailing identifier 'L', got %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestGreedyOperators(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{">>>=", token.UshrAssign},
		{">>>", token.Ushr},
		{">>=", token.ShrAssign},
		{">>", token.Shr},
		{">=", token.GtEq},
		{">", token.Gt},
		{"<<=", token.ShlAssign},
		{"->", token.Arrow},
		{"&&", token.AndAnd},
		{"&=", token.AmpAssign},
		{"&", token.Amp},
	}
	for _, c := range cases {
		toks := tokenize(t, c.input)
		if toks[0].Kind != c.kind {
			t.Errorf("%q: expected %v, got %v", c.input, c.kind, toks[0].Kind)
		}
		if toks[1].Kind != token.EOF {
			t.Errorf("%q: expected a single operator token, got %v", c.input, kinds(toks))
		}
	}
}

func TestKeywordsVsIdentifiers(t *testing.T) {
	toks := tokenize(t, "if iff return returned")
	want := []token.Kind{token.KwIf, token.Ident, token.KwReturn, token.Ident, token.EOF}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestLeadingTriviaAttachment(t *testing.T) {
	toks := tokenize(t, "  // note\n  x")
	if toks[0].Kind != token.Ident {
		t.Fatalf("expected identifier, got %v", toks[0].Kind)
	}
	lead := toks[0].Leading
	if len(lead) != 4 {
		t.Fatalf("expected 4 trivia pieces, got %d: %v", len(lead), lead)
	}
	wantKinds := []token.TriviaKind{token.TriviaSpace, token.TriviaLineComment, token.TriviaNewline, token.TriviaSpace}
	for i, k := range wantKinds {
		if lead[i].Kind != k {
			t.Fatalf("trivia %d: expected %v, got %v", i, k, lead[i].Kind)
		}
	}
	if lead[1].Text != "// note" {
		t.Fatalf("expected comment text preserved, got %q", lead[1].Text)
	}
}

func TestWhitespaceRunsCoalesce(t *testing.T) {
	toks := tokenize(t, " \t \tx")
	if len(toks[0].Leading) != 1 {
		t.Fatalf("expected one coalesced space run, got %d", len(toks[0].Leading))
	}
	if toks[0].Leading[0].Text != " \t \t" {
		t.Fatalf("expected full run text, got %q", toks[0].Leading[0].Text)
	}
}

func TestTrailingTriviaLandsOnEOF(t *testing.T) {
	toks := tokenize(t, "x; // done\n")
	eof := toks[len(toks)-1]
	if eof.Kind != token.EOF {
		t.Fatalf("expected EOF last, got %v", eof.Kind)
	}
	if token.TriviaText(eof.Leading) != " // done\n" {
		t.Fatalf("expected trailing trivia on EOF, got %q", token.TriviaText(eof.Leading))
	}
}

func TestBlockCommentsAndStrings(t *testing.T) {
	toks := tokenize(t, `/* a */ "he said \"hi\"" x`)
	if toks[0].Kind != token.StringLit {
		t.Fatalf("expected string literal first, got %v", toks[0].Kind)
	}
	if toks[0].Text != `"he said \"hi\""` {
		t.Fatalf("expected raw string spelling, got %q", toks[0].Text)
	}
	if len(toks[0].Leading) == 0 || toks[0].Leading[0].Kind != token.TriviaBlockComment {
		t.Fatalf("expected block comment trivia, got %v", toks[0].Leading)
	}
}

// Concatenating every token's trivia and text must rebuild the input; this
// is the invariant lossless printing stands on.
func TestTokenStreamReconstructsInput(t *testing.T) {
	inputs := []string{
		"",
		"x;",
		"int x = (1 + 2) * 3; // math\n",
		"/* head */\nif (a == b) {\n\treturn (c);\n}\n",
		"f((x, y) -> x + y);\n\n// tail comment",
		"do { x >>>= 2; } while (x > 0);",
	}
	for _, input := range inputs {
		var b strings.Builder
		for _, tok := range tokenize(t, input) {
			b.WriteString(token.TriviaText(tok.Leading))
			b.WriteString(tok.Text)
		}
		if b.String() != input {
			t.Errorf("reconstruction mismatch:\n input: %q\noutput: %q", input, b.String())
		}
	}
}
