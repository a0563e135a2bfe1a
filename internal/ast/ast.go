// Package ast defines the lossless syntax tree the rewriter operates on.
//
// Nodes are immutable values with single-parent ownership: a rewrite builds
// a new node and substitutes it into the parent's child slot while the tree
// is rebuilt bottom-up. Every node carries the trivia (whitespace and
// comments) that precedes its first token, so printing an unmodified tree
// reproduces the original source byte-for-byte.
package ast

import (
	"github.com/jbessels/rewrite-static-analysis/internal/token"
)

// Node is any tree node.
type Node interface {
	// Leading returns the trivia preceding the node's first token. For
	// nodes whose first token belongs to a child (a binary expression
	// starts with its left operand), the child's leading is returned.
	Leading() []token.Trivia
}

// Expr is an expression node. WithLeading returns a copy of the expression
// with its leading trivia replaced; the receiver is not modified.
type Expr interface {
	Node
	WithLeading([]token.Trivia) Expr
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// JoinTrivia concatenates two trivia runs into a fresh slice. Either side
// may be nil.
func JoinTrivia(a, b []token.Trivia) []token.Trivia {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]token.Trivia, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
