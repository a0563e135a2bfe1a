package walk

import (
	"fmt"

	"github.com/jbessels/rewrite-static-analysis/internal/ast"
)

// Visitor is the per-node rule callback. It receives the node with all
// children already rewritten and returns its replacement (usually the node
// itself). A visitor invoked on an expression must return an expression.
type Visitor interface {
	Visit(n ast.Node, w *Walker) ast.Node
}

// Walker carries one in-flight traversal: the ancestor path of the node
// currently being processed and the pending signals. It is exclusively
// owned by one traversal and must not be shared.
type Walker struct {
	path    []ast.Node
	signals map[ast.Node]ast.Expr
	current ast.Node // original identity of the node whose visitor runs
}

// File applies the visitor to every statement of a file in source order,
// post-order within each statement. The input file is returned unchanged
// (same pointer) when no rewrite happened.
func File(f *ast.SourceFile, v Visitor) *ast.SourceFile {
	w := &Walker{
		path:    make([]ast.Node, 0, 16),
		signals: make(map[ast.Node]ast.Expr),
	}
	stmts, changed := w.rewriteStmts(f.Stmts, v)
	if !changed {
		return f
	}
	cp := *f
	cp.Stmts = stmts
	return &cp
}

// Parent returns the direct parent of the node currently being visited, or
// nil at the top level.
func (w *Walker) Parent() ast.Node {
	if len(w.path) == 0 {
		return nil
	}
	return w.path[len(w.path)-1]
}

// ParentParen reports whether the direct parent is a parenthesis pair.
func (w *Walker) ParentParen() bool {
	_, ok := w.Parent().(*ast.Paren)
	return ok
}

// SignalNearestParen leaves payload for the nearest enclosing parenthesis
// ancestor to consume during its own post-order step. A no-op when no such
// ancestor exists.
func (w *Walker) SignalNearestParen(payload ast.Expr) {
	for i := len(w.path) - 1; i >= 0; i-- {
		if _, ok := w.path[i].(*ast.Paren); ok {
			w.signals[w.path[i]] = payload
			return
		}
	}
}

// TakeSignal consumes the signal addressed to the node currently being
// visited. The slot is cleared on read; absence is a normal no-op.
func (w *Walker) TakeSignal() (ast.Expr, bool) {
	payload, ok := w.signals[w.current]
	if !ok {
		return nil, false
	}
	delete(w.signals, w.current)
	return payload, true
}

func (w *Walker) visit(orig, rebuilt ast.Node, v Visitor) ast.Node {
	prev := w.current
	w.current = orig
	out := v.Visit(rebuilt, w)
	w.current = prev
	return out
}

func (w *Walker) rewriteExpr(e ast.Expr, v Visitor) ast.Expr {
	w.path = append(w.path, e)
	rebuilt := w.rebuildExpr(e, v)
	w.path = w.path[:len(w.path)-1]

	out := w.visit(e, rebuilt, v)
	expr, ok := out.(ast.Expr)
	if !ok {
		panic(fmt.Sprintf("walk: visitor replaced %T with non-expression %T", e, out))
	}
	return expr
}

func (w *Walker) rewriteStmt(s ast.Stmt, v Visitor) ast.Stmt {
	w.path = append(w.path, s)
	rebuilt := w.rebuildStmt(s, v)
	w.path = w.path[:len(w.path)-1]

	out := w.visit(s, rebuilt, v)
	stmt, ok := out.(ast.Stmt)
	if !ok {
		panic(fmt.Sprintf("walk: visitor replaced %T with non-statement %T", s, out))
	}
	return stmt
}

func (w *Walker) rewriteStmts(stmts []ast.Stmt, v Visitor) ([]ast.Stmt, bool) {
	changed := false
	out := stmts
	for i, s := range stmts {
		ns := w.rewriteStmt(s, v)
		if ns == s {
			continue
		}
		if !changed {
			out = make([]ast.Stmt, len(stmts))
			copy(out, stmts)
			changed = true
		}
		out[i] = ns
	}
	return out, changed
}
