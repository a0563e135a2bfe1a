package fuzztests

import (
	"testing"

	"github.com/jbessels/rewrite-static-analysis/internal/diag"
	"github.com/jbessels/rewrite-static-analysis/internal/lexer"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
	"github.com/jbessels/rewrite-static-analysis/internal/testkit"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampSeed(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.jx", input)

		bag := diag.NewBag(64)
		toks := lexer.Tokenize(fs.Get(fileID), lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

		if err := testkit.CheckTokenStream(toks, fs.Get(fileID)); err != nil {
			t.Fatal(err)
		}
	})
}
