package ast

import (
	"github.com/jbessels/rewrite-static-analysis/internal/token"
)

// Ident is a bare identifier.
type Ident struct {
	Lead []token.Trivia
	Name string
}

func (n *Ident) Leading() []token.Trivia { return n.Lead }
func (n *Ident) WithLeading(tr []token.Trivia) Expr {
	cp := *n
	cp.Lead = tr
	return &cp
}
func (*Ident) exprNode() {}

// LitKind classifies a literal.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitLong
	LitFloat
	LitDouble
	LitString
	LitNull
	LitTrue
	LitFalse

	litKindCount
)

var litKindNames = [litKindCount]string{
	LitInt:    "int",
	LitLong:   "long",
	LitFloat:  "float",
	LitDouble: "double",
	LitString: "string",
	LitNull:   "null",
	LitTrue:   "true",
	LitFalse:  "false",
}

func (k LitKind) String() string {
	if k < litKindCount {
		return litKindNames[k]
	}
	return "unknown"
}

// Lit is a literal. Text is the raw source spelling (suffix and quotes
// included) and is what gets printed.
type Lit struct {
	Lead []token.Trivia
	Kind LitKind
	Text string
}

func (n *Lit) Leading() []token.Trivia { return n.Lead }
func (n *Lit) WithLeading(tr []token.Trivia) Expr {
	cp := *n
	cp.Lead = tr
	return &cp
}
func (*Lit) exprNode() {}

// Paren is one explicit grouping-parenthesis pair around exactly one inner
// expression. Lead precedes '(' and Close precedes ')'. Inner is never nil;
// the parser cannot produce an empty pair and the walker treats one as an
// upstream defect.
type Paren struct {
	Lead  []token.Trivia
	Inner Expr
	Close []token.Trivia
}

func (n *Paren) Leading() []token.Trivia { return n.Lead }
func (n *Paren) WithLeading(tr []token.Trivia) Expr {
	cp := *n
	cp.Lead = tr
	return &cp
}
func (*Paren) exprNode() {}

// Unary is a prefix operation.
type Unary struct {
	Lead    []token.Trivia
	Op      UnaryOp
	Operand Expr
}

func (n *Unary) Leading() []token.Trivia { return n.Lead }
func (n *Unary) WithLeading(tr []token.Trivia) Expr {
	cp := *n
	cp.Lead = tr
	return &cp
}
func (*Unary) exprNode() {}

// Binary is an infix operation. Its first token belongs to Left, so leading
// trivia delegates there. OpLead precedes the operator token.
type Binary struct {
	Left   Expr
	OpLead []token.Trivia
	Op     BinOp
	Right  Expr
}

func (n *Binary) Leading() []token.Trivia { return n.Left.Leading() }
func (n *Binary) WithLeading(tr []token.Trivia) Expr {
	cp := *n
	cp.Left = n.Left.WithLeading(tr)
	return &cp
}
func (*Binary) exprNode() {}

// Select is a member access X.Name.
type Select struct {
	X       Expr
	DotLead []token.Trivia
	Name    *Ident
}

func (n *Select) Leading() []token.Trivia { return n.X.Leading() }
func (n *Select) WithLeading(tr []token.Trivia) Expr {
	cp := *n
	cp.X = n.X.WithLeading(tr)
	return &cp
}
func (*Select) exprNode() {}

// Call is a function invocation. Open precedes '(', Commas[i] precedes the
// comma after Args[i], Close precedes ')'.
type Call struct {
	Callee Expr
	Open   []token.Trivia
	Args   []Expr
	Commas [][]token.Trivia
	Close  []token.Trivia
}

func (n *Call) Leading() []token.Trivia { return n.Callee.Leading() }
func (n *Call) WithLeading(tr []token.Trivia) Expr {
	cp := *n
	cp.Callee = n.Callee.WithLeading(tr)
	return &cp
}
func (*Call) exprNode() {}

// Assign is a plain assignment Target = Value.
type Assign struct {
	Target Expr
	OpLead []token.Trivia
	Value  Expr
}

func (n *Assign) Leading() []token.Trivia { return n.Target.Leading() }
func (n *Assign) WithLeading(tr []token.Trivia) Expr {
	cp := *n
	cp.Target = n.Target.WithLeading(tr)
	return &cp
}
func (*Assign) exprNode() {}

// OpAssign is a compound assignment Target <op>= Value.
type OpAssign struct {
	Target Expr
	OpLead []token.Trivia
	Op     AssignOp
	Value  Expr
}

func (n *OpAssign) Leading() []token.Trivia { return n.Target.Leading() }
func (n *OpAssign) WithLeading(tr []token.Trivia) Expr {
	cp := *n
	cp.Target = n.Target.WithLeading(tr)
	return &cp
}
func (*OpAssign) exprNode() {}

// Param is one lambda parameter, optionally typed.
type Param struct {
	Type *Ident // nil when the parameter is untyped
	Name *Ident
}

// Leading returns the trivia before the parameter's first token.
func (p Param) Leading() []token.Trivia {
	if p.Type != nil {
		return p.Type.Lead
	}
	return p.Name.Lead
}

// Lambda is an arrow function. When Parenthesized is true, Lead precedes
// '(' and Close precedes ')'; otherwise Lead precedes the single parameter
// and Close is unused. Body is either an Expr or a *Block.
type Lambda struct {
	Lead          []token.Trivia
	Parenthesized bool
	Params        []Param
	Commas        [][]token.Trivia
	Close         []token.Trivia
	ArrowLead     []token.Trivia
	Body          Node
}

func (n *Lambda) Leading() []token.Trivia { return n.Lead }
func (n *Lambda) WithLeading(tr []token.Trivia) Expr {
	cp := *n
	cp.Lead = tr
	return &cp
}
func (*Lambda) exprNode() {}
