package format

import (
	"testing"

	"github.com/jbessels/rewrite-static-analysis/internal/ast"
	"github.com/jbessels/rewrite-static-analysis/internal/diag"
	"github.com/jbessels/rewrite-static-analysis/internal/parser"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
)

func parseClean(t *testing.T, input string) *ast.SourceFile {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.jx", []byte(input))
	bag := diag.NewBag(16)
	res := parser.ParseFile(fs.Get(id), parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %v", input, bag.Items())
	}
	return res.File
}

// Printing an untouched tree must reproduce the input byte for byte,
// whatever the spacing and comments look like.
func TestPrintRoundTrips(t *testing.T) {
	inputs := []string{
		"",
		"x;",
		"x = y;",
		"int x = 1;",
		"long   n\t=\t42L;",
		"x = (a + b) * (c - d);",
		"// leading comment\nx = 1; // trailing\n",
		"/* block */ x /* mid */ = /* more */ 1 /* end */;",
		"if (a == b) { return c; } else { return d; }",
		"if(a)x;else y;",
		"while (x > 0) { x -= 1; }",
		"do {\n\tx >>>= 2;\n} while (x != 0);",
		"for (int i = 0; i < n; i += 1) { f(i); }",
		"for (;;) { }",
		"for (i = 0; ; ) { }",
		"f(a, b, c);",
		"obj.field.method(1, 2).next;",
		"f(x -> x + 1);",
		"f((x) -> x);",
		"f((int x, int y) -> x + y);",
		"f(() -> 0);",
		"g(x -> { return x; });",
		"x = a == b && c != d || !e;",
		"x = -a + +b - ~c;",
		"s = \"quoted \\\"text\\\"\";",
		"x = ((doubled));",
		"\n\n\nx;\n\n\n",
		"return;",
		"return (a);",
	}
	for _, input := range inputs {
		f := parseClean(t, input)
		got := Print(f)
		if got != input {
			t.Errorf("round trip mismatch:\n input: %q\noutput: %q", input, got)
		}
	}
}

func TestNodePrintsSubtree(t *testing.T) {
	f := parseClean(t, "x = (a + b);")
	got := Node(f.Stmts[0])
	if got != "x = (a + b);" {
		t.Fatalf("expected full statement text, got %q", got)
	}
}

func TestUnparenthesizedLambdaDropsPairOnly(t *testing.T) {
	f := parseClean(t, "f( (x) -> x );")
	call := f.Stmts[0].(*ast.ExprStmt).E.(*ast.Call)
	lambda := call.Args[0].(*ast.Lambda)

	cp := *lambda
	cp.Parenthesized = false
	call2 := *call
	call2.Args = []ast.Expr{&cp}
	es := *f.Stmts[0].(*ast.ExprStmt)
	es.E = &call2
	f2 := *f
	f2.Stmts = []ast.Stmt{&es}

	// The pair's own trivia stays ahead of the parameter; the trivia that
	// sat before ')' vanishes with the pair.
	if got := Print(&f2); got != "f( x -> x );" {
		t.Fatalf("expected lambda without parameter parens, got %q", got)
	}
}
