// Package rewrite drives rewriting passes to a fixpoint. A pass is a pure
// function from tree to tree; the engine reapplies it until an application
// returns the input unchanged, with a cycle cap as defense against
// oscillation.
package rewrite

import (
	"errors"

	"github.com/jbessels/rewrite-static-analysis/internal/ast"
)

// DefaultMaxCycles bounds the number of fixpoint iterations. Each removed
// parenthesis pair strictly shrinks the tree, so real inputs converge long
// before the cap; hitting it means a pass oscillated.
const DefaultMaxCycles = 16

// ErrNoConvergence is returned when the cycle cap is reached while passes
// still report changes.
var ErrNoConvergence = errors.New("rewrite: passes did not converge within the cycle cap")

// Pass is one rewriting rule over a whole file. Rewrite must return the
// input pointer itself when nothing changed; that identity is the engine's
// termination test.
type Pass interface {
	Name() string
	Applicable(f *ast.SourceFile) bool
	Rewrite(f *ast.SourceFile) *ast.SourceFile
}

// Engine reapplies passes until a full cycle changes nothing.
type Engine struct {
	MaxCycles int
}

// Result summarises one engine run.
type Result struct {
	File    *ast.SourceFile
	Cycles  int
	Changed bool
}

// Run drives every applicable pass to a fixpoint over the file. Files no
// pass applies to are returned unchanged with zero cycles.
func (e *Engine) Run(f *ast.SourceFile, passes ...Pass) (Result, error) {
	maxCycles := e.MaxCycles
	if maxCycles <= 0 {
		maxCycles = DefaultMaxCycles
	}

	res := Result{File: f}
	for cycle := 0; cycle < maxCycles; cycle++ {
		next := res.File
		for _, p := range passes {
			if !p.Applicable(next) {
				continue
			}
			next = p.Rewrite(next)
		}
		if next == res.File {
			return res, nil
		}
		res.File = next
		res.Cycles = cycle + 1
		res.Changed = true
	}
	return res, ErrNoConvergence
}
