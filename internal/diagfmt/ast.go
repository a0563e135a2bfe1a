package diagfmt

import (
	"fmt"
	"io"

	"github.com/jbessels/rewrite-static-analysis/internal/ast"
)

// FormatASTPretty dumps the parse tree with box-drawing connectors, one
// node per line.
func FormatASTPretty(w io.Writer, f *ast.SourceFile) {
	fmt.Fprintf(w, "SourceFile %s (%s)\n", f.Path, f.Dialect)
	for i, stmt := range f.Stmts {
		writeTreeNode(w, stmt, "", i == len(f.Stmts)-1)
	}
}

func writeTreeNode(w io.Writer, n ast.Node, prefix string, last bool) {
	connector, childPrefix := "├─ ", prefix+"│  "
	if last {
		connector, childPrefix = "└─ ", prefix+"   "
	}
	fmt.Fprintf(w, "%s%s%s\n", prefix, connector, nodeLabel(n))

	children := nodeChildren(n)
	for i, child := range children {
		writeTreeNode(w, child, childPrefix, i == len(children)-1)
	}
}

func nodeLabel(n ast.Node) string {
	switch n := n.(type) {
	case *ast.ExprStmt:
		return "ExprStmt"
	case *ast.VarDecl:
		if n.Type != nil {
			return fmt.Sprintf("VarDecl %s %s", n.Type.Name, n.Name.Name)
		}
		return fmt.Sprintf("VarDecl %s", n.Name.Name)
	case *ast.Return:
		return "Return"
	case *ast.If:
		return "If"
	case *ast.While:
		return "While"
	case *ast.DoWhile:
		return "DoWhile"
	case *ast.For:
		return "For"
	case *ast.ForControl:
		return "ForControl"
	case *ast.Block:
		return "Block"
	case *ast.Ident:
		return fmt.Sprintf("Ident %s", n.Name)
	case *ast.Lit:
		return fmt.Sprintf("Lit %s %s", n.Kind, n.Text)
	case *ast.Paren:
		return "Paren"
	case *ast.Unary:
		return fmt.Sprintf("Unary %s", n.Op)
	case *ast.Binary:
		return fmt.Sprintf("Binary %s", n.Op)
	case *ast.Select:
		return fmt.Sprintf("Select .%s", n.Name.Name)
	case *ast.Call:
		return fmt.Sprintf("Call (%d args)", len(n.Args))
	case *ast.Assign:
		return "Assign"
	case *ast.OpAssign:
		return fmt.Sprintf("OpAssign %s", n.Op)
	case *ast.Lambda:
		return fmt.Sprintf("Lambda (%d params)", len(n.Params))
	default:
		return fmt.Sprintf("%T", n)
	}
}

func nodeChildren(n ast.Node) []ast.Node {
	var out []ast.Node
	add := func(c ast.Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch n := n.(type) {
	case *ast.ExprStmt:
		add(n.E)
	case *ast.VarDecl:
		if n.Init != nil {
			add(n.Init)
		}
	case *ast.Return:
		if n.Expr != nil {
			add(n.Expr)
		}
	case *ast.If:
		add(n.Cond)
		add(n.Then)
		if n.Else != nil {
			add(n.Else)
		}
	case *ast.While:
		add(n.Cond)
		add(n.Body)
	case *ast.DoWhile:
		add(n.Body)
		add(n.Cond)
	case *ast.For:
		add(n.Control)
		add(n.Body)
	case *ast.ForControl:
		if n.Init != nil {
			add(n.Init)
		}
		if n.Cond != nil {
			add(n.Cond)
		}
		if n.Update != nil {
			add(n.Update)
		}
	case *ast.Block:
		for _, s := range n.Stmts {
			add(s)
		}
	case *ast.Paren:
		add(n.Inner)
	case *ast.Unary:
		add(n.Operand)
	case *ast.Binary:
		add(n.Left)
		add(n.Right)
	case *ast.Select:
		add(n.X)
	case *ast.Call:
		add(n.Callee)
		for _, a := range n.Args {
			add(a)
		}
	case *ast.Assign:
		add(n.Target)
		add(n.Value)
	case *ast.OpAssign:
		add(n.Target)
		add(n.Value)
	case *ast.Lambda:
		add(n.Body)
	}
	return out
}
