// Package parser builds the lossless syntax tree for primary-dialect
// files. The grammar is a statement sequence: blocks, if/else, while,
// do-while, classic for, return, variable declarations, and expression
// statements over the full operator set including lambdas.
package parser

import (
	"fmt"

	"github.com/jbessels/rewrite-static-analysis/internal/ast"
	"github.com/jbessels/rewrite-static-analysis/internal/diag"
	"github.com/jbessels/rewrite-static-analysis/internal/lexer"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
	"github.com/jbessels/rewrite-static-analysis/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

// Result carries the parsed file and any diagnostics collected on the way.
type Result struct {
	File *ast.SourceFile
	Bag  *diag.Bag
}

// Parser holds the state for parsing one file. The whole token stream is
// scanned up front; statement parsing needs more than one token of
// lookahead (typed declarations, lambda parameter lists).
type Parser struct {
	file *source.File
	toks []token.Token
	pos  int
	opts Options
	errs int
}

// ParseFile lexes and parses one source file. The returned file is usable
// only when the bag has no errors; callers pass erroneous files through
// unrewritten.
func ParseFile(file *source.File, opts Options) Result {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	br, _ := opts.Reporter.(*diag.BagReporter)

	p := Parser{
		file: file,
		toks: lexer.Tokenize(file, lexer.Options{Reporter: opts.Reporter}),
		opts: opts,
	}

	sf := &ast.SourceFile{
		Path: file.Path,
		File: file.ID,
	}
	for !p.at(token.EOF) {
		before := p.pos
		stmt, ok := p.parseStmt()
		if ok {
			sf.Stmts = append(sf.Stmts, stmt)
		} else {
			p.resync()
		}
		if p.pos == before {
			// Guarantee progress even on a statement that consumed nothing.
			p.bump()
		}
	}
	sf.EOF = p.cur().Leading

	var bag *diag.Bag
	if br != nil {
		bag = br.Bag
	}
	return Result{File: sf, Bag: bag}
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

// peek looks n tokens ahead, saturating at EOF.
func (p *Parser) peek(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *Parser) bump() token.Token {
	tok := p.toks[p.pos]
	if p.pos+1 < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) expect(k token.Kind, code diag.Code) (token.Token, bool) {
	if p.at(k) {
		return p.bump(), true
	}
	tok := p.cur()
	p.err(code, tok.Span, fmt.Sprintf("expected %q, found %q", k.String(), tok.Text))
	return tok, false
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string) {
	p.errs++
	p.opts.Reporter.Report(code, diag.SevError, sp, msg)
}

// resync skips ahead to a statement boundary after an error.
func (p *Parser) resync() {
	for {
		switch p.cur().Kind {
		case token.EOF:
			return
		case token.Semicolon, token.RBrace:
			p.bump()
			return
		default:
			p.bump()
		}
	}
}
