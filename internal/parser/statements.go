package parser

import (
	"github.com/jbessels/rewrite-static-analysis/internal/ast"
	"github.com/jbessels/rewrite-static-analysis/internal/diag"
	"github.com/jbessels/rewrite-static-analysis/internal/token"
)

func (p *Parser) parseStmt() (ast.Stmt, bool) {
	switch p.cur().Kind {
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwReturn:
		return p.parseReturn()
	case token.LBrace:
		return p.parseBlock()
	default:
		if p.atTypedDecl() {
			return p.parseVarDecl()
		}
		return p.parseExprStmt()
	}
}

// atTypedDecl reports whether the next tokens start a declaration of the
// form `Type name ...`. Two adjacent identifiers cannot begin an
// expression in this grammar.
func (p *Parser) atTypedDecl() bool {
	return p.at(token.Ident) && p.peek(1).Kind == token.Ident
}

func (p *Parser) parseVarDecl() (ast.Stmt, bool) {
	typeTok := p.bump()
	nameTok := p.bump()

	decl := &ast.VarDecl{
		Type: &ast.Ident{Lead: typeTok.Leading, Name: typeTok.Text},
		Name: &ast.Ident{Lead: nameTok.Leading, Name: nameTok.Text},
	}

	if p.at(token.Assign) {
		decl.OpLead = p.bump().Leading
		init, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		decl.Init = init
	}

	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon)
	if !ok {
		return nil, false
	}
	decl.Semi = semi.Leading
	return decl, true
}

func (p *Parser) parseExprStmt() (ast.Stmt, bool) {
	e, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon)
	if !ok {
		return nil, false
	}
	return &ast.ExprStmt{E: e, Semi: semi.Leading}, true
}

func (p *Parser) parseReturn() (ast.Stmt, bool) {
	ret := &ast.Return{Lead: p.bump().Leading}
	if !p.at(token.Semicolon) {
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		ret.Expr = e
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon)
	if !ok {
		return nil, false
	}
	ret.Semi = semi.Leading
	return ret, true
}

func (p *Parser) parseBlock() (ast.Stmt, bool) {
	block := &ast.Block{Lead: p.bump().Leading}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.pos
		stmt, ok := p.parseStmt()
		if ok {
			block.Stmts = append(block.Stmts, stmt)
		} else {
			p.resync()
		}
		if p.pos == before {
			p.bump()
		}
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace)
	if !ok {
		return nil, false
	}
	block.Close = closeTok.Leading
	return block, true
}

// parseCondParens parses '( expr )' and returns the pieces.
func (p *Parser) parseCondParens() (open []token.Trivia, cond ast.Expr, closing []token.Trivia, ok bool) {
	openTok, ok := p.expect(token.LParen, diag.SynUnexpectedToken)
	if !ok {
		return nil, nil, nil, false
	}
	cond, ok = p.parseExpr()
	if !ok {
		return nil, nil, nil, false
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen)
	if !ok {
		return nil, nil, nil, false
	}
	return openTok.Leading, cond, closeTok.Leading, true
}

func (p *Parser) parseIf() (ast.Stmt, bool) {
	stmt := &ast.If{Lead: p.bump().Leading}

	open, cond, closing, ok := p.parseCondParens()
	if !ok {
		return nil, false
	}
	stmt.Open, stmt.Cond, stmt.Close = open, cond, closing

	then, ok := p.parseStmt()
	if !ok {
		return nil, false
	}
	stmt.Then = then

	if p.at(token.KwElse) {
		stmt.ElseLead = p.bump().Leading
		els, ok := p.parseStmt()
		if !ok {
			return nil, false
		}
		stmt.Else = els
	}
	return stmt, true
}

func (p *Parser) parseWhile() (ast.Stmt, bool) {
	stmt := &ast.While{Lead: p.bump().Leading}

	open, cond, closing, ok := p.parseCondParens()
	if !ok {
		return nil, false
	}
	stmt.Open, stmt.Cond, stmt.Close = open, cond, closing

	body, ok := p.parseStmt()
	if !ok {
		return nil, false
	}
	stmt.Body = body
	return stmt, true
}

func (p *Parser) parseDoWhile() (ast.Stmt, bool) {
	stmt := &ast.DoWhile{Lead: p.bump().Leading}

	body, ok := p.parseStmt()
	if !ok {
		return nil, false
	}
	stmt.Body = body

	whileTok, ok := p.expect(token.KwWhile, diag.SynUnexpectedToken)
	if !ok {
		return nil, false
	}
	stmt.WhileLead = whileTok.Leading

	open, cond, closing, ok := p.parseCondParens()
	if !ok {
		return nil, false
	}
	stmt.Open, stmt.Cond, stmt.Close = open, cond, closing

	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon)
	if !ok {
		return nil, false
	}
	stmt.Semi = semi.Leading
	return stmt, true
}

func (p *Parser) parseFor() (ast.Stmt, bool) {
	stmt := &ast.For{Lead: p.bump().Leading}

	openTok, ok := p.expect(token.LParen, diag.SynUnexpectedToken)
	if !ok {
		return nil, false
	}
	stmt.Open = openTok.Leading

	control, ok := p.parseForControl()
	if !ok {
		return nil, false
	}
	stmt.Control = control

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen)
	if !ok {
		return nil, false
	}
	stmt.Close = closeTok.Leading

	body, ok := p.parseStmt()
	if !ok {
		return nil, false
	}
	stmt.Body = body
	return stmt, true
}

func (p *Parser) parseForControl() (*ast.ForControl, bool) {
	control := &ast.ForControl{}

	// Init slot: empty, a typed declaration (which owns the first ';'),
	// or a bare expression.
	switch {
	case p.at(token.Semicolon):
		control.InitSemi = p.bump().Leading
	case p.atTypedDecl():
		decl, ok := p.parseVarDecl()
		if !ok {
			return nil, false
		}
		control.Init = decl
	default:
		init, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		control.Init = init
		semi, ok := p.expect(token.Semicolon, diag.SynBadForHeader)
		if !ok {
			return nil, false
		}
		control.InitSemi = semi.Leading
	}

	// Condition slot.
	if p.at(token.Semicolon) {
		control.CondSemi = p.bump().Leading
	} else {
		cond, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		control.Cond = cond
		semi, ok := p.expect(token.Semicolon, diag.SynBadForHeader)
		if !ok {
			return nil, false
		}
		control.CondSemi = semi.Leading
	}

	// Update slot.
	if !p.at(token.RParen) {
		update, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		control.Update = update
	}
	return control, true
}
