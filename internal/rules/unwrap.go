package rules

import (
	"github.com/jbessels/rewrite-static-analysis/internal/ast"
)

// Unwrap replaces a parenthesis pair with its inner expression, wherever
// the pair sits as a child. The pair's leading trivia is transplanted onto
// the inner node, in front of the inner node's own leading, so comments on
// either side of '(' survive the splice. The trivia before ')' vanishes
// with the pair; it has no token left to precede.
func Unwrap(p *ast.Paren) ast.Expr {
	inner := p.Inner
	return inner.WithLeading(ast.JoinTrivia(p.Lead, inner.Leading()))
}
