package rules

import (
	"github.com/jbessels/rewrite-static-analysis/internal/ast"
	"github.com/jbessels/rewrite-static-analysis/internal/style"
	"github.com/jbessels/rewrite-static-analysis/internal/walk"
)

// UnnecessaryParens removes redundant parenthesis pairs according to the
// style configuration. One application is a single bottom-up pass; deeply
// nested pairs may need several applications, which the engine drives to a
// fixpoint.
type UnnecessaryParens struct {
	Style style.Config
}

func (r *UnnecessaryParens) Name() string { return "unnecessary-parens" }

// Applicable gates the rule to primary-dialect files. Running it on files
// recognized as an embedded foreign syntax would corrupt constructs the
// rule was never designed against.
func (r *UnnecessaryParens) Applicable(f *ast.SourceFile) bool {
	return !f.Dialect.Foreign()
}

// Rewrite applies one bottom-up pass and returns the (possibly identical)
// file.
func (r *UnnecessaryParens) Rewrite(f *ast.SourceFile) *ast.SourceFile {
	return walk.File(f, r)
}

// Visit implements walk.Visitor. Children are already rewritten when a
// node's case runs.
func (r *UnnecessaryParens) Visit(n ast.Node, w *walk.Walker) ast.Node {
	switch n := n.(type) {
	case *ast.Ident:
		// The decision is made here at the leaf, but only the enclosing
		// parenthesis node can perform the removal; leave it a note.
		if r.Style.Ident && w.ParentParen() {
			w.SignalNearestParen(n)
		}
		return n

	case *ast.Lit:
		if r.litEnabled(n.Kind) && w.ParentParen() {
			w.SignalNearestParen(n)
		}
		return n

	case *ast.Paren:
		out := ast.Expr(n)
		if payload, ok := w.TakeSignal(); ok {
			switch payload.(type) {
			case *ast.Ident, *ast.Lit:
				out = Unwrap(n)
			}
		}
		// Doubled parentheses: the outer pair owns the semantically
		// relevant trivia, so the inner pair sheds its own. Without this
		// an eventual collapse would duplicate whitespace.
		if p, ok := out.(*ast.Paren); ok && w.ParentParen() && len(p.Lead) > 0 {
			out = p.WithLeading(nil)
		}
		return out

	case *ast.Assign:
		if r.Style.Assign {
			if p, ok := n.Value.(*ast.Paren); ok {
				cp := *n
				cp.Value = Unwrap(p)
				return &cp
			}
		}
		return n

	case *ast.OpAssign:
		if r.opAssignEnabled(n.Op) {
			if p, ok := n.Value.(*ast.Paren); ok {
				cp := *n
				cp.Value = Unwrap(p)
				return &cp
			}
		}
		return n

	case *ast.Return:
		if r.Style.Expr && n.Expr != nil {
			if p, ok := n.Expr.(*ast.Paren); ok {
				cp := *n
				cp.Expr = Unwrap(p)
				return &cp
			}
		}
		return n

	case *ast.VarDecl:
		if r.Style.Assign && n.Init != nil {
			if p, ok := n.Init.(*ast.Paren); ok {
				cp := *n
				cp.Init = Unwrap(p)
				return &cp
			}
		}
		return n

	case *ast.If:
		// Condition unwraps are unconditional: the control parentheses
		// already group the condition.
		if p, ok := n.Cond.(*ast.Paren); ok {
			cp := *n
			cp.Cond = Unwrap(p)
			return &cp
		}
		return n

	case *ast.While:
		if p, ok := n.Cond.(*ast.Paren); ok {
			cp := *n
			cp.Cond = Unwrap(p)
			return &cp
		}
		return n

	case *ast.DoWhile:
		if p, ok := n.Cond.(*ast.Paren); ok {
			cp := *n
			cp.Cond = Unwrap(p)
			return &cp
		}
		return n

	case *ast.ForControl:
		if p, ok := n.Cond.(*ast.Paren); ok {
			cp := *n
			cp.Cond = Unwrap(p)
			return &cp
		}
		return n

	case *ast.Lambda:
		// A single untyped parameter does not need its parentheses. Typed
		// or multi-parameter lists keep them; the grammar requires it.
		if n.Parenthesized && len(n.Params) == 1 && n.Params[0].Type == nil {
			cp := *n
			cp.Parenthesized = false
			return &cp
		}
		return n

	default:
		return n
	}
}

func (r *UnnecessaryParens) litEnabled(kind ast.LitKind) bool {
	switch kind {
	case ast.LitInt:
		return r.Style.NumInt
	case ast.LitLong:
		return r.Style.NumLong
	case ast.LitFloat:
		return r.Style.NumFloat
	case ast.LitDouble:
		return r.Style.NumDouble
	case ast.LitString:
		return r.Style.StringLiteral
	case ast.LitNull:
		return r.Style.LiteralNull
	case ast.LitTrue:
		return r.Style.LiteralTrue
	case ast.LitFalse:
		return r.Style.LiteralFalse
	default:
		return false
	}
}

func (r *UnnecessaryParens) opAssignEnabled(op ast.AssignOp) bool {
	switch op {
	case ast.AssignBitAnd:
		return r.Style.BitAndAssign
	case ast.AssignBitOr:
		return r.Style.BitOrAssign
	case ast.AssignBitXor:
		return r.Style.BitXorAssign
	case ast.AssignShl:
		return r.Style.ShiftLeftAssign
	case ast.AssignShr:
		return r.Style.ShiftRightAssign
	case ast.AssignUshr:
		return r.Style.BitShiftRightAssign
	case ast.AssignAdd:
		return r.Style.PlusAssign
	case ast.AssignSub:
		return r.Style.MinusAssign
	case ast.AssignMul:
		return r.Style.StarAssign
	case ast.AssignDiv:
		return r.Style.DivAssign
	case ast.AssignMod:
		return r.Style.ModAssign
	default:
		return false
	}
}
