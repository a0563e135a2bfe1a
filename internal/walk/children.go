package walk

import (
	"errors"
	"fmt"

	"github.com/jbessels/rewrite-static-analysis/internal/ast"
)

// rebuildExpr rewrites an expression's children and returns the expression,
// copied only when a child actually changed. Identifiers in declaration
// positions (parameter names, member names) are not expression operands and
// are not visited.
func (w *Walker) rebuildExpr(e ast.Expr, v Visitor) ast.Expr {
	switch n := e.(type) {
	case *ast.Ident, *ast.Lit:
		return e

	case *ast.Paren:
		if n.Inner == nil {
			// Upstream-parser defect; never valid in a produced tree.
			panic(errors.New("walk: parenthesis pair with no inner expression"))
		}
		inner := w.rewriteExpr(n.Inner, v)
		if inner == n.Inner {
			return n
		}
		cp := *n
		cp.Inner = inner
		return &cp

	case *ast.Unary:
		operand := w.rewriteExpr(n.Operand, v)
		if operand == n.Operand {
			return n
		}
		cp := *n
		cp.Operand = operand
		return &cp

	case *ast.Binary:
		left := w.rewriteExpr(n.Left, v)
		right := w.rewriteExpr(n.Right, v)
		if left == n.Left && right == n.Right {
			return n
		}
		cp := *n
		cp.Left = left
		cp.Right = right
		return &cp

	case *ast.Select:
		x := w.rewriteExpr(n.X, v)
		if x == n.X {
			return n
		}
		cp := *n
		cp.X = x
		return &cp

	case *ast.Call:
		callee := w.rewriteExpr(n.Callee, v)
		args, argsChanged := w.rewriteExprs(n.Args, v)
		if callee == n.Callee && !argsChanged {
			return n
		}
		cp := *n
		cp.Callee = callee
		cp.Args = args
		return &cp

	case *ast.Assign:
		target := w.rewriteExpr(n.Target, v)
		value := w.rewriteExpr(n.Value, v)
		if target == n.Target && value == n.Value {
			return n
		}
		cp := *n
		cp.Target = target
		cp.Value = value
		return &cp

	case *ast.OpAssign:
		target := w.rewriteExpr(n.Target, v)
		value := w.rewriteExpr(n.Value, v)
		if target == n.Target && value == n.Value {
			return n
		}
		cp := *n
		cp.Target = target
		cp.Value = value
		return &cp

	case *ast.Lambda:
		body := w.rewriteBody(n.Body, v)
		if body == n.Body {
			return n
		}
		cp := *n
		cp.Body = body
		return &cp

	default:
		panic(fmt.Sprintf("walk: unhandled expression %T", e))
	}
}

func (w *Walker) rebuildStmt(s ast.Stmt, v Visitor) ast.Stmt {
	switch n := s.(type) {
	case *ast.ExprStmt:
		e := w.rewriteExpr(n.E, v)
		if e == n.E {
			return n
		}
		cp := *n
		cp.E = e
		return &cp

	case *ast.VarDecl:
		if n.Init == nil {
			return n
		}
		init := w.rewriteExpr(n.Init, v)
		if init == n.Init {
			return n
		}
		cp := *n
		cp.Init = init
		return &cp

	case *ast.Return:
		if n.Expr == nil {
			return n
		}
		e := w.rewriteExpr(n.Expr, v)
		if e == n.Expr {
			return n
		}
		cp := *n
		cp.Expr = e
		return &cp

	case *ast.If:
		cond := w.rewriteExpr(n.Cond, v)
		then := w.rewriteStmt(n.Then, v)
		els := n.Else
		if els != nil {
			els = w.rewriteStmt(els, v)
		}
		if cond == n.Cond && then == n.Then && els == n.Else {
			return n
		}
		cp := *n
		cp.Cond = cond
		cp.Then = then
		cp.Else = els
		return &cp

	case *ast.While:
		cond := w.rewriteExpr(n.Cond, v)
		body := w.rewriteStmt(n.Body, v)
		if cond == n.Cond && body == n.Body {
			return n
		}
		cp := *n
		cp.Cond = cond
		cp.Body = body
		return &cp

	case *ast.DoWhile:
		body := w.rewriteStmt(n.Body, v)
		cond := w.rewriteExpr(n.Cond, v)
		if body == n.Body && cond == n.Cond {
			return n
		}
		cp := *n
		cp.Body = body
		cp.Cond = cond
		return &cp

	case *ast.For:
		control := w.rewriteControl(n.Control, v)
		body := w.rewriteStmt(n.Body, v)
		if control == n.Control && body == n.Body {
			return n
		}
		cp := *n
		cp.Control = control
		cp.Body = body
		return &cp

	case *ast.Block:
		stmts, changed := w.rewriteStmts(n.Stmts, v)
		if !changed {
			return n
		}
		cp := *n
		cp.Stmts = stmts
		return &cp

	default:
		panic(fmt.Sprintf("walk: unhandled statement %T", s))
	}
}

// rewriteControl visits the for-loop header as its own node so the
// condition-unwrap rule can fire on it.
func (w *Walker) rewriteControl(c *ast.ForControl, v Visitor) *ast.ForControl {
	w.path = append(w.path, c)
	rebuilt := w.rebuildControl(c, v)
	w.path = w.path[:len(w.path)-1]

	out := w.visit(c, rebuilt, v)
	control, ok := out.(*ast.ForControl)
	if !ok {
		panic(fmt.Sprintf("walk: visitor replaced for-control with %T", out))
	}
	return control
}

func (w *Walker) rebuildControl(c *ast.ForControl, v Visitor) *ast.ForControl {
	init := c.Init
	switch n := c.Init.(type) {
	case nil:
	case ast.Expr:
		init = w.rewriteExpr(n, v)
	case ast.Stmt:
		init = w.rewriteStmt(n, v)
	default:
		panic(fmt.Sprintf("walk: unhandled for-init %T", c.Init))
	}

	cond := c.Cond
	if cond != nil {
		cond = w.rewriteExpr(cond, v)
	}
	update := c.Update
	if update != nil {
		update = w.rewriteExpr(update, v)
	}

	if init == c.Init && cond == c.Cond && update == c.Update {
		return c
	}
	cp := *c
	cp.Init = init
	cp.Cond = cond
	cp.Update = update
	return &cp
}

func (w *Walker) rewriteBody(body ast.Node, v Visitor) ast.Node {
	switch n := body.(type) {
	case ast.Expr:
		return w.rewriteExpr(n, v)
	case ast.Stmt:
		return w.rewriteStmt(n, v)
	default:
		panic(fmt.Sprintf("walk: unhandled lambda body %T", body))
	}
}

func (w *Walker) rewriteExprs(exprs []ast.Expr, v Visitor) ([]ast.Expr, bool) {
	changed := false
	out := exprs
	for i, e := range exprs {
		ne := w.rewriteExpr(e, v)
		if ne == e {
			continue
		}
		if !changed {
			out = make([]ast.Expr, len(exprs))
			copy(out, exprs)
			changed = true
		}
		out[i] = ne
	}
	return out, changed
}
