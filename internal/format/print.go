package format

import (
	"fmt"
	"strings"

	"github.com/jbessels/rewrite-static-analysis/internal/ast"
	"github.com/jbessels/rewrite-static-analysis/internal/token"
)

// Print renders a whole file, trailing trivia included.
func Print(f *ast.SourceFile) string {
	var p printer
	for _, s := range f.Stmts {
		p.stmt(s)
	}
	p.trivia(f.EOF)
	return p.b.String()
}

// Node renders a single statement or expression subtree.
func Node(n ast.Node) string {
	var p printer
	p.node(n)
	return p.b.String()
}

type printer struct {
	b strings.Builder
}

func (p *printer) trivia(tr []token.Trivia) {
	for _, t := range tr {
		p.b.WriteString(t.Text)
	}
}

func (p *printer) tok(lead []token.Trivia, text string) {
	p.trivia(lead)
	p.b.WriteString(text)
}

func (p *printer) node(n ast.Node) {
	switch n := n.(type) {
	case ast.Expr:
		p.expr(n)
	case ast.Stmt:
		p.stmt(n)
	default:
		panic(fmt.Sprintf("format: unexpected node %T", n))
	}
}

func (p *printer) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.ExprStmt:
		p.expr(s.E)
		p.tok(s.Semi, ";")

	case *ast.VarDecl:
		if s.Type != nil {
			p.tok(s.Type.Lead, s.Type.Name)
		}
		p.tok(s.Name.Lead, s.Name.Name)
		if s.Init != nil {
			p.tok(s.OpLead, "=")
			p.expr(s.Init)
		}
		p.tok(s.Semi, ";")

	case *ast.Return:
		p.tok(s.Lead, "return")
		if s.Expr != nil {
			p.expr(s.Expr)
		}
		p.tok(s.Semi, ";")

	case *ast.If:
		p.tok(s.Lead, "if")
		p.tok(s.Open, "(")
		p.expr(s.Cond)
		p.tok(s.Close, ")")
		p.stmt(s.Then)
		if s.Else != nil {
			p.tok(s.ElseLead, "else")
			p.stmt(s.Else)
		}

	case *ast.While:
		p.tok(s.Lead, "while")
		p.tok(s.Open, "(")
		p.expr(s.Cond)
		p.tok(s.Close, ")")
		p.stmt(s.Body)

	case *ast.DoWhile:
		p.tok(s.Lead, "do")
		p.stmt(s.Body)
		p.tok(s.WhileLead, "while")
		p.tok(s.Open, "(")
		p.expr(s.Cond)
		p.tok(s.Close, ")")
		p.tok(s.Semi, ";")

	case *ast.For:
		p.tok(s.Lead, "for")
		p.tok(s.Open, "(")
		p.forControl(s.Control)
		p.tok(s.Close, ")")
		p.stmt(s.Body)

	case *ast.Block:
		p.tok(s.Lead, "{")
		for _, inner := range s.Stmts {
			p.stmt(inner)
		}
		p.tok(s.Close, "}")

	default:
		panic(fmt.Sprintf("format: unexpected statement %T", s))
	}
}

// forControl prints the loop header between the parentheses. A VarDecl init
// owns the first semicolon; otherwise InitSemi does.
func (p *printer) forControl(c *ast.ForControl) {
	switch init := c.Init.(type) {
	case nil:
		p.tok(c.InitSemi, ";")
	case *ast.VarDecl:
		p.stmt(init)
	case ast.Expr:
		p.expr(init)
		p.tok(c.InitSemi, ";")
	default:
		panic(fmt.Sprintf("format: unexpected for-loop init %T", init))
	}
	if c.Cond != nil {
		p.expr(c.Cond)
	}
	p.tok(c.CondSemi, ";")
	if c.Update != nil {
		p.expr(c.Update)
	}
}

func (p *printer) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Ident:
		p.tok(e.Lead, e.Name)

	case *ast.Lit:
		p.tok(e.Lead, e.Text)

	case *ast.Paren:
		p.tok(e.Lead, "(")
		p.expr(e.Inner)
		p.tok(e.Close, ")")

	case *ast.Unary:
		p.tok(e.Lead, e.Op.String())
		p.expr(e.Operand)

	case *ast.Binary:
		p.expr(e.Left)
		p.tok(e.OpLead, e.Op.String())
		p.expr(e.Right)

	case *ast.Select:
		p.expr(e.X)
		p.tok(e.DotLead, ".")
		p.tok(e.Name.Lead, e.Name.Name)

	case *ast.Call:
		p.expr(e.Callee)
		p.tok(e.Open, "(")
		for i, arg := range e.Args {
			p.expr(arg)
			if i < len(e.Commas) {
				p.tok(e.Commas[i], ",")
			}
		}
		p.tok(e.Close, ")")

	case *ast.Assign:
		p.expr(e.Target)
		p.tok(e.OpLead, "=")
		p.expr(e.Value)

	case *ast.OpAssign:
		p.expr(e.Target)
		p.tok(e.OpLead, e.Op.String())
		p.expr(e.Value)

	case *ast.Lambda:
		p.lambda(e)

	default:
		panic(fmt.Sprintf("format: unexpected expression %T", e))
	}
}

// lambda prints either form of a parameter list. A list stripped of its
// parentheses keeps its opening trivia ahead of the parameter; the trivia
// that sat before ')' goes away with the pair.
func (p *printer) lambda(e *ast.Lambda) {
	if e.Parenthesized {
		p.tok(e.Lead, "(")
	} else {
		p.trivia(e.Lead)
	}
	for i, param := range e.Params {
		if param.Type != nil {
			p.tok(param.Type.Lead, param.Type.Name)
		}
		p.tok(param.Name.Lead, param.Name.Name)
		if i < len(e.Commas) {
			p.tok(e.Commas[i], ",")
		}
	}
	if e.Parenthesized {
		p.tok(e.Close, ")")
	}
	p.tok(e.ArrowLead, "->")
	p.node(e.Body)
}
