package walk

import (
	"fmt"
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

// nopVisitor returns every node untouched.
type nopVisitor struct{}

func (nopVisitor) Visit(n ast.Node, w *Walker) ast.Node { return n }

// traceVisitor records visit order and parents.
type traceVisitor struct {
	order   []string
	parents map[string]string
}

func (v *traceVisitor) Visit(n ast.Node, w *Walker) ast.Node {
	name := nodeName(n)
	v.order = append(v.order, name)
	if v.parents != nil {
		v.parents[name] = nodeName(w.Parent())
	}
	return n
}

func nodeName(n ast.Node) string {
	switch n := n.(type) {
	case nil:
		return "<nil>"
	case *ast.Ident:
		return "ident:" + n.Name
	case *ast.Lit:
		return "lit:" + n.Text
	default:
		return fmt.Sprintf("%T", n)
	}
}

func TestNoChangeReturnsSameFile(t *testing.T) {
	f := parseClean(t, "x = (a + b) * c; if (a) { return b; }")
	out := File(f, nopVisitor{})
	if out != f {
		t.Fatal("expected the identical file pointer when nothing changes")
	}
}

func TestPostOrderWithinStatement(t *testing.T) {
	f := parseClean(t, "x = (y);")
	v := &traceVisitor{parents: map[string]string{}}
	File(f, v)

	want := []string{"ident:x", "ident:y", "*ast.Paren", "*ast.Assign", "*ast.ExprStmt"}
	if len(v.order) != len(want) {
		t.Fatalf("expected %d visits, got %v", len(want), v.order)
	}
	for i := range want {
		if v.order[i] != want[i] {
			t.Fatalf("visit %d: expected %s, got %s (full: %v)", i, want[i], v.order[i], v.order)
		}
	}

	if v.parents["ident:y"] != "*ast.Paren" {
		t.Fatalf("expected y's parent to be the paren, got %s", v.parents["ident:y"])
	}
	if v.parents["*ast.Paren"] != "*ast.Assign" {
		t.Fatalf("expected the paren's parent to be the assignment, got %s", v.parents["*ast.Paren"])
	}
	if v.parents["*ast.ExprStmt"] != "<nil>" {
		t.Fatalf("expected no parent at the top level, got %s", v.parents["*ast.ExprStmt"])
	}
}

func TestStatementsVisitedInSourceOrder(t *testing.T) {
	f := parseClean(t, "a; b;")
	v := &traceVisitor{}
	File(f, v)

	want := []string{"ident:a", "*ast.ExprStmt", "ident:b", "*ast.ExprStmt"}
	for i := range want {
		if v.order[i] != want[i] {
			t.Fatalf("visit %d: expected %s, got %s (full: %v)", i, want[i], v.order[i], v.order)
		}
	}
}

// replaceVisitor swaps one identifier name for another.
type replaceVisitor struct{ from, to string }

func (v replaceVisitor) Visit(n ast.Node, w *Walker) ast.Node {
	if id, ok := n.(*ast.Ident); ok && id.Name == v.from {
		cp := *id
		cp.Name = v.to
		return &cp
	}
	return n
}

func TestChangePropagatesWithoutMutatingInput(t *testing.T) {
	f := parseClean(t, "a = b; c = d;")
	out := File(f, replaceVisitor{from: "d", to: "e"})

	if out == f {
		t.Fatal("expected a rebuilt file")
	}
	if out.Stmts[0] != f.Stmts[0] {
		t.Fatal("expected the untouched statement to keep its identity")
	}
	if out.Stmts[1] == f.Stmts[1] {
		t.Fatal("expected the changed statement to be rebuilt")
	}

	orig := f.Stmts[1].(*ast.ExprStmt).E.(*ast.Assign).Value.(*ast.Ident)
	if orig.Name != "d" {
		t.Fatalf("input tree was mutated: %q", orig.Name)
	}
	repl := out.Stmts[1].(*ast.ExprStmt).E.(*ast.Assign).Value.(*ast.Ident)
	if repl.Name != "e" {
		t.Fatalf("expected replacement, got %q", repl.Name)
	}
}

// signalVisitor signals from every identifier leaf and records which parens
// receive a payload.
type signalVisitor struct {
	received map[string]string // paren's inner name -> payload name
}

func (v *signalVisitor) Visit(n ast.Node, w *Walker) ast.Node {
	switch n := n.(type) {
	case *ast.Ident:
		w.SignalNearestParen(n)
	case *ast.Paren:
		if payload, ok := w.TakeSignal(); ok {
			inner := nodeName(n.Inner)
			v.received[inner] = nodeName(payload)
		}
	}
	return n
}

func TestSignalReachesNearestEnclosingParen(t *testing.T) {
	f := parseClean(t, "((x)); (y + z);")
	v := &signalVisitor{received: map[string]string{}}
	File(f, v)

	// x's signal lands on the inner pair only; the outer pair of ((x))
	// gets nothing.
	if v.received["ident:x"] != "ident:x" {
		t.Fatalf("expected x's signal on its direct pair, got %v", v.received)
	}
	if _, ok := v.received["*ast.Paren"]; ok {
		t.Fatalf("outer pair must not receive a consumed signal, got %v", v.received)
	}

	// In (y + z) the last signal written wins the single slot.
	if v.received["*ast.Binary"] != "ident:z" {
		t.Fatalf("expected z's signal on the pair, got %v", v.received)
	}
}

func TestSignalOutsideParenIsDropped(t *testing.T) {
	f := parseClean(t, "x;")
	v := &signalVisitor{received: map[string]string{}}
	File(f, v)
	if len(v.received) != 0 {
		t.Fatalf("expected no deliveries, got %v", v.received)
	}
}
