package ast

import (
	"github.com/jbessels/rewrite-static-analysis/internal/dialect"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
	"github.com/jbessels/rewrite-static-analysis/internal/token"
)

// SourceFile is the root node: a statement sequence plus the trivia that
// trails the last statement. Dialect records what the classifier decided
// about the file's content; passes gate on it.
type SourceFile struct {
	Path    string
	File    source.FileID
	Dialect dialect.Kind
	Stmts   []Stmt
	EOF     []token.Trivia
}

func (f *SourceFile) Leading() []token.Trivia {
	if len(f.Stmts) > 0 {
		return f.Stmts[0].Leading()
	}
	return f.EOF
}
