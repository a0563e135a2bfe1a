package testkit

import (
	"testing"

	"github.com/jbessels/rewrite-static-analysis/internal/lexer"
	"github.com/jbessels/rewrite-static-analysis/internal/parser"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
)

func TestCheckTokenStream(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.jx", []byte("x = (1); // tail\n"))
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{})

	if err := CheckTokenStream(toks, fs.Get(id)); err != nil {
		t.Fatal(err)
	}
	if err := CheckTokenStream(toks[:len(toks)-1], fs.Get(id)); err == nil {
		t.Fatal("expected failure for a stream without EOF")
	}
	if err := CheckTokenStream(nil, fs.Get(id)); err == nil {
		t.Fatal("expected failure for an empty stream")
	}
}

func TestCheckLossless(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.jx", []byte("if (a) { return (b); }\n"))
	res := parser.ParseFile(fs.Get(id), parser.Options{})

	if err := CheckLossless(res.File, fs.Get(id)); err != nil {
		t.Fatal(err)
	}

	other := fs.AddVirtual("b.jx", []byte("y;\n"))
	if err := CheckLossless(res.File, fs.Get(other)); err == nil {
		t.Fatal("expected mismatch against a different file")
	}
}
