package parser

import (
	"fmt"

	"github.com/jbessels/rewrite-static-analysis/internal/ast"
	"github.com/jbessels/rewrite-static-analysis/internal/diag"
	"github.com/jbessels/rewrite-static-analysis/internal/token"
)

// Binary precedence table, Java's ladder: || over && over | ^ & over
// equality, relational, shifts, additive, multiplicative.
var binPrec = map[token.Kind]struct {
	prec int
	op   ast.BinOp
}{
	token.OrOr:   {1, ast.BinLogOr},
	token.AndAnd: {2, ast.BinLogAnd},
	token.Pipe:   {3, ast.BinBitOr},
	token.Caret:  {4, ast.BinBitXor},
	token.Amp:    {5, ast.BinBitAnd},
	token.EqEq:   {6, ast.BinEq},
	token.BangEq: {6, ast.BinNe},
	token.Lt:     {7, ast.BinLt},
	token.LtEq:   {7, ast.BinLe},
	token.Gt:     {7, ast.BinGt},
	token.GtEq:   {7, ast.BinGe},
	token.Shl:    {8, ast.BinShl},
	token.Shr:    {8, ast.BinShr},
	token.Ushr:   {8, ast.BinUshr},
	token.Plus:   {9, ast.BinAdd},
	token.Minus:  {9, ast.BinSub},
	token.Star:   {10, ast.BinMul},
	token.Slash:  {10, ast.BinDiv},
	token.Percent: {10, ast.BinMod},
}

var compoundOps = map[token.Kind]ast.AssignOp{
	token.AmpAssign:     ast.AssignBitAnd,
	token.PipeAssign:    ast.AssignBitOr,
	token.CaretAssign:   ast.AssignBitXor,
	token.ShlAssign:     ast.AssignShl,
	token.ShrAssign:     ast.AssignShr,
	token.UshrAssign:    ast.AssignUshr,
	token.PlusAssign:    ast.AssignAdd,
	token.MinusAssign:   ast.AssignSub,
	token.StarAssign:    ast.AssignMul,
	token.SlashAssign:   ast.AssignDiv,
	token.PercentAssign: ast.AssignMod,
}

// parseExpr parses a full expression including assignments, which are
// right-associative and bind loosest.
func (p *Parser) parseExpr() (ast.Expr, bool) {
	left, ok := p.parseBinary(1)
	if !ok {
		return nil, false
	}

	if p.at(token.Assign) {
		opLead := p.bump().Leading
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.Assign{Target: left, OpLead: opLead, Value: value}, true
	}

	if op, isCompound := compoundOps[p.cur().Kind]; isCompound {
		opLead := p.bump().Leading
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.OpAssign{Target: left, OpLead: opLead, Op: op, Value: value}, true
	}

	return left, true
}

func (p *Parser) parseBinary(minPrec int) (ast.Expr, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		entry, isBin := binPrec[p.cur().Kind]
		if !isBin || entry.prec < minPrec {
			return left, true
		}
		opLead := p.bump().Leading
		right, ok := p.parseBinary(entry.prec + 1)
		if !ok {
			return nil, false
		}
		left = &ast.Binary{Left: left, OpLead: opLead, Op: entry.op, Right: right}
	}
}

func (p *Parser) parseUnary() (ast.Expr, bool) {
	var op ast.UnaryOp
	switch p.cur().Kind {
	case token.Minus:
		op = ast.UnaryNeg
	case token.Plus:
		op = ast.UnaryPlus
	case token.Bang:
		op = ast.UnaryNot
	case token.Tilde:
		op = ast.UnaryBitNot
	default:
		return p.parsePostfix()
	}
	lead := p.bump().Leading
	operand, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	return &ast.Unary{Lead: lead, Op: op, Operand: operand}, true
}

func (p *Parser) parsePostfix() (ast.Expr, bool) {
	e, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for {
		switch p.cur().Kind {
		case token.LParen:
			call := &ast.Call{Callee: e, Open: p.bump().Leading}
			for !p.at(token.RParen) && !p.at(token.EOF) {
				arg, ok := p.parseExpr()
				if !ok {
					return nil, false
				}
				call.Args = append(call.Args, arg)
				if !p.at(token.Comma) {
					break
				}
				call.Commas = append(call.Commas, p.bump().Leading)
			}
			closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen)
			if !ok {
				return nil, false
			}
			call.Close = closeTok.Leading
			e = call

		case token.Dot:
			dotLead := p.bump().Leading
			nameTok, ok := p.expect(token.Ident, diag.SynUnexpectedToken)
			if !ok {
				return nil, false
			}
			e = &ast.Select{
				X:       e,
				DotLead: dotLead,
				Name:    &ast.Ident{Lead: nameTok.Leading, Name: nameTok.Text},
			}

		default:
			return e, true
		}
	}
}

var litKinds = map[token.Kind]ast.LitKind{
	token.IntLit:    ast.LitInt,
	token.LongLit:   ast.LitLong,
	token.FloatLit:  ast.LitFloat,
	token.DoubleLit: ast.LitDouble,
	token.StringLit: ast.LitString,
	token.KwNull:    ast.LitNull,
	token.KwTrue:    ast.LitTrue,
	token.KwFalse:   ast.LitFalse,
}

func (p *Parser) parsePrimary() (ast.Expr, bool) {
	tok := p.cur()

	if kind, isLit := litKinds[tok.Kind]; isLit {
		p.bump()
		return &ast.Lit{Lead: tok.Leading, Kind: kind, Text: tok.Text}, true
	}

	switch tok.Kind {
	case token.Ident:
		if p.peek(1).Kind == token.Arrow {
			return p.parseBareLambda()
		}
		p.bump()
		return &ast.Ident{Lead: tok.Leading, Name: tok.Text}, true

	case token.LParen:
		if p.atParenLambda() {
			return p.parseParenLambda()
		}
		lead := p.bump().Leading
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen)
		if !ok {
			return nil, false
		}
		return &ast.Paren{Lead: lead, Inner: inner, Close: closeTok.Leading}, true

	default:
		p.err(diag.SynUnexpectedToken, tok.Span, fmt.Sprintf("unexpected token %q", tok.Text))
		return nil, false
	}
}

// atParenLambda reports whether the '(' at the cursor opens a lambda
// parameter list: scan to the matching ')' and look for '->'.
func (p *Parser) atParenLambda() bool {
	depth := 0
	for i := 0; ; i++ {
		switch p.peek(i).Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return p.peek(i + 1).Kind == token.Arrow
			}
		case token.EOF:
			return false
		}
	}
}

// parseBareLambda parses 'name -> body'.
func (p *Parser) parseBareLambda() (ast.Expr, bool) {
	nameTok := p.bump()
	lambda := &ast.Lambda{
		Params: []ast.Param{{
			Name: &ast.Ident{Lead: nameTok.Leading, Name: nameTok.Text},
		}},
	}
	lambda.ArrowLead = p.bump().Leading // '->', guaranteed by the caller
	return p.parseLambdaBody(lambda)
}

// parseParenLambda parses '( params ) -> body'.
func (p *Parser) parseParenLambda() (ast.Expr, bool) {
	lambda := &ast.Lambda{
		Lead:          p.bump().Leading,
		Parenthesized: true,
	}

	for !p.at(token.RParen) && !p.at(token.EOF) {
		first, ok := p.expect(token.Ident, diag.SynBadLambdaParams)
		if !ok {
			return nil, false
		}
		param := ast.Param{
			Name: &ast.Ident{Lead: first.Leading, Name: first.Text},
		}
		if p.at(token.Ident) {
			// Two identifiers: an explicitly typed parameter.
			nameTok := p.bump()
			param.Type = param.Name
			param.Name = &ast.Ident{Lead: nameTok.Leading, Name: nameTok.Text}
		}
		lambda.Params = append(lambda.Params, param)
		if !p.at(token.Comma) {
			break
		}
		lambda.Commas = append(lambda.Commas, p.bump().Leading)
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen)
	if !ok {
		return nil, false
	}
	lambda.Close = closeTok.Leading

	arrowTok, ok := p.expect(token.Arrow, diag.SynUnexpectedToken)
	if !ok {
		return nil, false
	}
	lambda.ArrowLead = arrowTok.Leading
	return p.parseLambdaBody(lambda)
}

func (p *Parser) parseLambdaBody(lambda *ast.Lambda) (ast.Expr, bool) {
	if p.at(token.LBrace) {
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		lambda.Body = body
		return lambda, true
	}
	body, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	lambda.Body = body
	return lambda, true
}
