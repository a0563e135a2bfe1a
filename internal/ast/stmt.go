package ast

import (
	"github.com/jbessels/rewrite-static-analysis/internal/token"
)

// ExprStmt is an expression followed by ';'.
type ExprStmt struct {
	E    Expr
	Semi []token.Trivia
}

func (n *ExprStmt) Leading() []token.Trivia { return n.E.Leading() }
func (*ExprStmt) stmtNode()                 {}

// VarDecl is a variable binding: [Type] Name [= Init] ';'.
type VarDecl struct {
	Type   *Ident // nil for untyped bindings
	Name   *Ident
	OpLead []token.Trivia // before '=', meaningful only when Init != nil
	Init   Expr           // nil when the binding has no initializer
	Semi   []token.Trivia
}

func (n *VarDecl) Leading() []token.Trivia {
	if n.Type != nil {
		return n.Type.Lead
	}
	return n.Name.Lead
}
func (*VarDecl) stmtNode() {}

// Return is 'return [Expr] ;'.
type Return struct {
	Lead []token.Trivia
	Expr Expr // nil for a bare return
	Semi []token.Trivia
}

func (n *Return) Leading() []token.Trivia { return n.Lead }
func (*Return) stmtNode()                 {}

// If is 'if ( Cond ) Then [else Else]'.
type If struct {
	Lead     []token.Trivia
	Open     []token.Trivia // before '('
	Cond     Expr
	Close    []token.Trivia // before ')'
	Then     Stmt
	ElseLead []token.Trivia // before 'else', meaningful only when Else != nil
	Else     Stmt           // nil when there is no else branch
}

func (n *If) Leading() []token.Trivia { return n.Lead }
func (*If) stmtNode()                 {}

// While is 'while ( Cond ) Body'.
type While struct {
	Lead  []token.Trivia
	Open  []token.Trivia
	Cond  Expr
	Close []token.Trivia
	Body  Stmt
}

func (n *While) Leading() []token.Trivia { return n.Lead }
func (*While) stmtNode()                 {}

// DoWhile is 'do Body while ( Cond ) ;'.
type DoWhile struct {
	Lead      []token.Trivia
	Body      Stmt
	WhileLead []token.Trivia
	Open      []token.Trivia
	Cond      Expr
	Close     []token.Trivia
	Semi      []token.Trivia
}

func (n *DoWhile) Leading() []token.Trivia { return n.Lead }
func (*DoWhile) stmtNode()                 {}

// ForControl is the 'Init ; Cond ; Update' header of a classic for loop.
// Init is either a *VarDecl (which owns the first ';') or an Expr; when
// Init is an Expr or absent, InitSemi holds the trivia before the first ';'.
// Every slot is optional.
type ForControl struct {
	Init     Node
	InitSemi []token.Trivia
	Cond     Expr
	CondSemi []token.Trivia // before the second ';'
	Update   Expr
}

func (n *ForControl) Leading() []token.Trivia {
	if n.Init != nil {
		return n.Init.Leading()
	}
	return n.InitSemi
}

// For is 'for ( Control ) Body'.
type For struct {
	Lead    []token.Trivia
	Open    []token.Trivia
	Control *ForControl
	Close   []token.Trivia
	Body    Stmt
}

func (n *For) Leading() []token.Trivia { return n.Lead }
func (*For) stmtNode()                 {}

// Block is '{ Stmts }'.
type Block struct {
	Lead  []token.Trivia
	Stmts []Stmt
	Close []token.Trivia // before '}'
}

func (n *Block) Leading() []token.Trivia { return n.Lead }
func (*Block) stmtNode()                 {}
