package parser

import (
	"testing"

	"github.com/jbessels/rewrite-static-analysis/internal/ast"
	"github.com/jbessels/rewrite-static-analysis/internal/diag"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
)

func parse(t *testing.T, input string) (*ast.SourceFile, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.jx", []byte(input))
	bag := diag.NewBag(16)
	res := ParseFile(fs.Get(id), Options{Reporter: &diag.BagReporter{Bag: bag}})
	return res.File, bag
}

func parseClean(t *testing.T, input string) *ast.SourceFile {
	t.Helper()
	f, bag := parse(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors for %q: %v", input, bag.Items())
	}
	return f
}

func onlyStmt(t *testing.T, f *ast.SourceFile) ast.Stmt {
	t.Helper()
	if len(f.Stmts) != 1 {
		t.Fatalf("expected one statement, got %d", len(f.Stmts))
	}
	return f.Stmts[0]
}

func TestParseTypedVarDecl(t *testing.T) {
	f := parseClean(t, "int x = 1;")
	decl, ok := onlyStmt(t, f).(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected VarDecl, got %T", f.Stmts[0])
	}
	if decl.Type == nil || decl.Type.Name != "int" {
		t.Fatalf("expected type 'int', got %+v", decl.Type)
	}
	if decl.Name.Name != "x" {
		t.Fatalf("expected name 'x', got %q", decl.Name.Name)
	}
	if _, ok := decl.Init.(*ast.Lit); !ok {
		t.Fatalf("expected literal initializer, got %T", decl.Init)
	}
}

func TestParseVarDeclWithoutInitializer(t *testing.T) {
	f := parseClean(t, "long count;")
	decl := onlyStmt(t, f).(*ast.VarDecl)
	if decl.Init != nil {
		t.Fatalf("expected no initializer, got %T", decl.Init)
	}
}

func TestCallIsNotATypedDecl(t *testing.T) {
	// Two identifiers begin a declaration; an identifier followed by '('
	// is a call expression.
	f := parseClean(t, "print(x);")
	es, ok := onlyStmt(t, f).(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected ExprStmt, got %T", f.Stmts[0])
	}
	if _, ok := es.E.(*ast.Call); !ok {
		t.Fatalf("expected Call, got %T", es.E)
	}
}

func TestBinaryPrecedence(t *testing.T) {
	f := parseClean(t, "x = a + b * c;")
	assign := onlyStmt(t, f).(*ast.ExprStmt).E.(*ast.Assign)
	add, ok := assign.Value.(*ast.Binary)
	if !ok || add.Op != ast.BinAdd {
		t.Fatalf("expected addition at the top, got %T", assign.Value)
	}
	mul, ok := add.Right.(*ast.Binary)
	if !ok || mul.Op != ast.BinMul {
		t.Fatalf("expected multiplication on the right, got %T", add.Right)
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	f := parseClean(t, "a = b = c;")
	outer := onlyStmt(t, f).(*ast.ExprStmt).E.(*ast.Assign)
	if _, ok := outer.Value.(*ast.Assign); !ok {
		t.Fatalf("expected nested assignment on the right, got %T", outer.Value)
	}
}

func TestCompoundAssignOps(t *testing.T) {
	cases := []struct {
		input string
		op    ast.AssignOp
	}{
		{"x += 1;", ast.AssignAdd},
		{"x -= 1;", ast.AssignSub},
		{"x *= 1;", ast.AssignMul},
		{"x /= 1;", ast.AssignDiv},
		{"x %= 1;", ast.AssignMod},
		{"x &= 1;", ast.AssignBitAnd},
		{"x |= 1;", ast.AssignBitOr},
		{"x ^= 1;", ast.AssignBitXor},
		{"x <<= 1;", ast.AssignShl},
		{"x >>= 1;", ast.AssignShr},
		{"x >>>= 1;", ast.AssignUshr},
	}
	for _, c := range cases {
		f := parseClean(t, c.input)
		oa, ok := onlyStmt(t, f).(*ast.ExprStmt).E.(*ast.OpAssign)
		if !ok {
			t.Fatalf("%q: expected OpAssign, got %T", c.input, f.Stmts[0])
		}
		if oa.Op != c.op {
			t.Fatalf("%q: expected op %v, got %v", c.input, c.op, oa.Op)
		}
	}
}

func TestParenExpression(t *testing.T) {
	f := parseClean(t, "x = (a + b);")
	assign := onlyStmt(t, f).(*ast.ExprStmt).E.(*ast.Assign)
	p, ok := assign.Value.(*ast.Paren)
	if !ok {
		t.Fatalf("expected Paren, got %T", assign.Value)
	}
	if _, ok := p.Inner.(*ast.Binary); !ok {
		t.Fatalf("expected binary inside, got %T", p.Inner)
	}
}

func TestIfElseChain(t *testing.T) {
	f := parseClean(t, "if (a) { x; } else if (b) { y; } else { z; }")
	ifStmt := onlyStmt(t, f).(*ast.If)
	elseIf, ok := ifStmt.Else.(*ast.If)
	if !ok {
		t.Fatalf("expected else-if, got %T", ifStmt.Else)
	}
	if _, ok := elseIf.Else.(*ast.Block); !ok {
		t.Fatalf("expected final else block, got %T", elseIf.Else)
	}
}

func TestDoWhile(t *testing.T) {
	f := parseClean(t, "do { x += 1; } while (x < 10);")
	dw, ok := onlyStmt(t, f).(*ast.DoWhile)
	if !ok {
		t.Fatalf("expected DoWhile, got %T", f.Stmts[0])
	}
	if _, ok := dw.Cond.(*ast.Binary); !ok {
		t.Fatalf("expected binary condition, got %T", dw.Cond)
	}
}

func TestForHeaders(t *testing.T) {
	cases := []struct {
		input      string
		wantDecl   bool
		wantCond   bool
		wantUpdate bool
	}{
		{"for (int i = 0; i < n; i += 1) { }", true, true, true},
		{"for (i = 0; i < n; i += 1) { }", false, true, true},
		{"for (;;) { }", false, false, false},
		{"for (; i < n;) { }", false, true, false},
	}
	for _, c := range cases {
		f := parseClean(t, c.input)
		loop, ok := onlyStmt(t, f).(*ast.For)
		if !ok {
			t.Fatalf("%q: expected For, got %T", c.input, f.Stmts[0])
		}
		_, isDecl := loop.Control.Init.(*ast.VarDecl)
		if isDecl != c.wantDecl {
			t.Errorf("%q: init is VarDecl = %v, want %v", c.input, isDecl, c.wantDecl)
		}
		if (loop.Control.Cond != nil) != c.wantCond {
			t.Errorf("%q: has cond = %v, want %v", c.input, loop.Control.Cond != nil, c.wantCond)
		}
		if (loop.Control.Update != nil) != c.wantUpdate {
			t.Errorf("%q: has update = %v, want %v", c.input, loop.Control.Update != nil, c.wantUpdate)
		}
	}
}

func TestLambdaForms(t *testing.T) {
	cases := []struct {
		input         string
		parenthesized bool
		params        int
		typed         bool
	}{
		{"f(x -> x);", false, 1, false},
		{"f((x) -> x);", true, 1, false},
		{"f((int x) -> x);", true, 1, true},
		{"f((x, y) -> x);", true, 2, false},
		{"f(() -> 1);", true, 0, false},
	}
	for _, c := range cases {
		f := parseClean(t, c.input)
		call := onlyStmt(t, f).(*ast.ExprStmt).E.(*ast.Call)
		lambda, ok := call.Args[0].(*ast.Lambda)
		if !ok {
			t.Fatalf("%q: expected Lambda argument, got %T", c.input, call.Args[0])
		}
		if lambda.Parenthesized != c.parenthesized {
			t.Errorf("%q: parenthesized = %v, want %v", c.input, lambda.Parenthesized, c.parenthesized)
		}
		if len(lambda.Params) != c.params {
			t.Errorf("%q: %d params, want %d", c.input, len(lambda.Params), c.params)
		}
		if c.params > 0 {
			if (lambda.Params[0].Type != nil) != c.typed {
				t.Errorf("%q: typed = %v, want %v", c.input, lambda.Params[0].Type != nil, c.typed)
			}
		}
	}
}

func TestLambdaBlockBody(t *testing.T) {
	f := parseClean(t, "f(x -> { return x; });")
	call := onlyStmt(t, f).(*ast.ExprStmt).E.(*ast.Call)
	lambda := call.Args[0].(*ast.Lambda)
	if _, ok := lambda.Body.(*ast.Block); !ok {
		t.Fatalf("expected block body, got %T", lambda.Body)
	}
}

func TestParenthesizedExprBeforeArrowlessParen(t *testing.T) {
	// '(a + b) * c' must not be mistaken for a lambda parameter list.
	f := parseClean(t, "x = (a + b) * c;")
	assign := onlyStmt(t, f).(*ast.ExprStmt).E.(*ast.Assign)
	mul, ok := assign.Value.(*ast.Binary)
	if !ok || mul.Op != ast.BinMul {
		t.Fatalf("expected multiplication, got %T", assign.Value)
	}
	if _, ok := mul.Left.(*ast.Paren); !ok {
		t.Fatalf("expected paren on the left, got %T", mul.Left)
	}
}

func TestSelectAndCallChain(t *testing.T) {
	f := parseClean(t, "obj.field.method(1).next;")
	sel, ok := onlyStmt(t, f).(*ast.ExprStmt).E.(*ast.Select)
	if !ok {
		t.Fatalf("expected Select at the top, got %T", f.Stmts[0].(*ast.ExprStmt).E)
	}
	if sel.Name.Name != "next" {
		t.Fatalf("expected final member 'next', got %q", sel.Name.Name)
	}
	if _, ok := sel.X.(*ast.Call); !ok {
		t.Fatalf("expected call below, got %T", sel.X)
	}
}

func TestParseErrorsReported(t *testing.T) {
	cases := []string{
		"x = ;",
		"if (a { }",
		"x = (a;",
		"return",
		"do { } while (a)",
	}
	for _, input := range cases {
		_, bag := parse(t, input)
		if !bag.HasErrors() {
			t.Errorf("%q: expected parse errors", input)
		}
	}
}

func TestParserRecoversAcrossStatements(t *testing.T) {
	f, bag := parse(t, "x = ;\ny = 1;")
	if !bag.HasErrors() {
		t.Fatal("expected errors from the first statement")
	}
	found := false
	for _, s := range f.Stmts {
		if es, ok := s.(*ast.ExprStmt); ok {
			if _, ok := es.E.(*ast.Assign); ok {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected the second statement to parse after recovery")
	}
}
