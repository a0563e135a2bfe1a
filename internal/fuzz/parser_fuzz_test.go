package fuzztests

import (
	"testing"

	"github.com/jbessels/rewrite-static-analysis/internal/diag"
	"github.com/jbessels/rewrite-static-analysis/internal/format"
	"github.com/jbessels/rewrite-static-analysis/internal/parser"
	"github.com/jbessels/rewrite-static-analysis/internal/rewrite"
	"github.com/jbessels/rewrite-static-analysis/internal/rules"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
	"github.com/jbessels/rewrite-static-analysis/internal/style"
	"github.com/jbessels/rewrite-static-analysis/internal/testkit"
)

// FuzzParseAndRewrite drives the whole pipeline: parse must never panic,
// clean parses must print back byte-for-byte, and the rewrite loop must
// converge and still print a valid tree.
func FuzzParseAndRewrite(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.jx", input)

		bag := diag.NewBag(64)
		res := parser.ParseFile(fs.Get(fileID), parser.Options{
			Reporter: &diag.BagReporter{Bag: bag},
		})
		if res.File == nil {
			t.Fatal("ParseFile returned a nil file")
		}
		if bag.HasErrors() {
			// Erroneous files pass through the driver unrewritten;
			// nothing further to check.
			return
		}

		if err := testkit.CheckLossless(res.File, fs.Get(fileID)); err != nil {
			t.Fatal(err)
		}

		eng := rewrite.Engine{}
		run, err := eng.Run(res.File, &rules.UnnecessaryParens{Style: style.Default()})
		if err != nil {
			t.Fatalf("rewrite did not converge: %v", err)
		}
		if run.Changed == (run.File == res.File) {
			t.Fatalf("Changed=%v disagrees with file identity", run.Changed)
		}
		// The rewritten tree must still print.
		_ = format.Print(run.File)
	})
}
