package diagfmt

import (
	"strings"
	"testing"

	"github.com/jbessels/rewrite-static-analysis/internal/diag"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
)

func testBag(t *testing.T, src string, start, end uint32) (*diag.Bag, *source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.jx", []byte(src))
	bag := diag.NewBag(16)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Primary:  source.Span{File: id, Start: start, End: end},
	})
	return bag, fs, id
}

func TestPrettyHeading(t *testing.T) {
	bag, fs, _ := testBag(t, "x = (y;\n", 6, 7)

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{})
	out := b.String()

	if !strings.Contains(out, "main.jx:1:7: ERROR JX2001: unexpected token") {
		t.Fatalf("missing heading:\n%s", out)
	}
	if !strings.Contains(out, "    x = (y;\n") {
		t.Fatalf("missing source excerpt:\n%s", out)
	}
	if !strings.Contains(out, "\n          ^\n") {
		t.Fatalf("caret misplaced:\n%s", out)
	}
}

func TestPrettyUnderlineWidth(t *testing.T) {
	// Span covers "(y" on the second line.
	src := "a;\nx = (y);\n"
	bag, fs, _ := testBag(t, src, 7, 9)

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{})
	out := b.String()

	if !strings.Contains(out, "main.jx:2:5:") {
		t.Fatalf("wrong position:\n%s", out)
	}
	if !strings.Contains(out, "\n        ^~\n") {
		t.Fatalf("underline should span two columns:\n%s", out)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.jx", []byte("x = y;\n"))
	bag := diag.NewBag(16)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.StyleRedundantParens,
		Message:  "redundant parentheses",
		Primary:  source.Span{File: id, Start: 0, End: 1},
		Notes: []diag.Note{
			{Span: source.Span{File: id, Start: 4, End: 5}, Msg: "value defined here"},
		},
	})

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{ShowNotes: true})
	out := b.String()
	if !strings.Contains(out, "note: value defined here") {
		t.Fatalf("missing note:\n%s", out)
	}

	b.Reset()
	Pretty(&b, bag, fs, PrettyOpts{})
	if strings.Contains(b.String(), "note:") {
		t.Fatalf("notes should be off by default:\n%s", b.String())
	}
}

func TestPrettyPathModes(t *testing.T) {
	bag, fs, _ := testBag(t, "x;\n", 0, 1)

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if !strings.HasPrefix(b.String(), "main.jx:") {
		t.Fatalf("basename mode failed:\n%s", b.String())
	}
}

func TestPrettyEmptyFileSkipsExcerpt(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.jx", nil)
	bag := diag.NewBag(16)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFile,
		Message:  "failed to load file",
		Primary:  source.Span{File: id},
	})

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{})
	if got := strings.Count(b.String(), "\n"); got != 1 {
		t.Fatalf("expected heading only, got:\n%q", b.String())
	}
}
