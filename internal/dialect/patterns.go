package dialect

import (
	"fmt"

	"github.com/jbessels/rewrite-static-analysis/internal/source"
)

type keywordSignal struct {
	Dialect Kind
	Score   int
	Reason  string
}

var keywordSignals = map[string][]keywordSignal{
	// Python-ish
	"def":    {{Dialect: Python, Score: 6, Reason: "python keyword `def`"}},
	"elif":   {{Dialect: Python, Score: 6, Reason: "python keyword `elif`"}},
	"pass":   {{Dialect: Python, Score: 4, Reason: "python keyword `pass`"}},
	"lambda": {{Dialect: Python, Score: 4, Reason: "python keyword `lambda`"}},
	"None":   {{Dialect: Python, Score: 5, Reason: "python literal `None`"}},
	"self":   {{Dialect: Python, Score: 1, Reason: "python receiver `self`"}},

	// JavaScript-ish
	"function":  {{Dialect: JavaScript, Score: 6, Reason: "javascript keyword `function`"}},
	"undefined": {{Dialect: JavaScript, Score: 5, Reason: "javascript literal `undefined`"}},
	"const":     {{Dialect: JavaScript, Score: 3, Reason: "javascript keyword `const`"}},
	"let":       {{Dialect: JavaScript, Score: 3, Reason: "javascript keyword `let`"}},

	// Rust-ish
	"impl":  {{Dialect: Rust, Score: 6, Reason: "rust keyword `impl`"}},
	"trait": {{Dialect: Rust, Score: 6, Reason: "rust keyword `trait`"}},
	"crate": {{Dialect: Rust, Score: 5, Reason: "rust keyword `crate`"}},
	"mut":   {{Dialect: Rust, Score: 5, Reason: "rust keyword `mut`"}},
	"fn":    {{Dialect: Rust, Score: 5, Reason: "rust keyword `fn`"}},

	// Go-ish
	"func":    {{Dialect: Go, Score: 5, Reason: "go keyword `func`"}},
	"defer":   {{Dialect: Go, Score: 5, Reason: "go keyword `defer`"}},
	"chan":    {{Dialect: Go, Score: 4, Reason: "go keyword `chan`"}},
	"package": {{Dialect: Go, Score: 4, Reason: "go keyword `package`"}},
}

type opSignal struct {
	text string
	keywordSignal
}

// Longer operators first so `===` wins over `==` and `:=`.
var opSignals = []opSignal{
	{"===", keywordSignal{Dialect: JavaScript, Score: 6, Reason: "javascript strict equality `===`"}},
	{"=>", keywordSignal{Dialect: JavaScript, Score: 4, Reason: "javascript arrow `=>`"}},
	{":=", keywordSignal{Dialect: Go, Score: 5, Reason: "go short variable declaration `:=`"}},
	{"::", keywordSignal{Dialect: Rust, Score: 4, Reason: "rust path separator `::`"}},
}

// CollectEvidence scans raw content for foreign-dialect signals. It runs
// before lexing, because foreign files generally do not survive the lexer.
func CollectEvidence(fileID source.FileID, content []byte) *Evidence {
	e := NewEvidence()

	i := 0
	for i < len(content) {
		b := content[i]

		// Identifier-shaped words.
		if isWordStart(b) {
			start := i
			for i < len(content) && isWordPart(content[i]) {
				i++
			}
			word := string(content[start:i])
			for _, sig := range keywordSignals[word] {
				e.Add(Hint{
					Dialect: sig.Dialect,
					Score:   sig.Score,
					Reason:  sig.Reason,
					Span:    source.Span{File: fileID, Start: uint32(start), End: uint32(i)},
				})
			}
			continue
		}

		// Line-leading '#' comments are Python-flavoured.
		if b == '#' && (i == 0 || content[i-1] == '\n') {
			e.Add(Hint{
				Dialect: Python,
				Score:   3,
				Reason:  "python comment `#`",
				Span:    source.Span{File: fileID, Start: uint32(i), End: uint32(i + 1)},
			})
			i++
			continue
		}

		matched := false
		for _, sig := range opSignals {
			if hasPrefixAt(content, i, sig.text) {
				e.Add(Hint{
					Dialect: sig.Dialect,
					Score:   sig.Score,
					Reason:  sig.Reason,
					Span:    source.Span{File: fileID, Start: uint32(i), End: uint32(i + len(sig.text))},
				})
				i += len(sig.text)
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return e
}

func isWordStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isWordPart(b byte) bool {
	return isWordStart(b) || (b >= '0' && b <= '9')
}

func hasPrefixAt(content []byte, off int, prefix string) bool {
	if off+len(prefix) > len(content) {
		return false
	}
	return string(content[off:off+len(prefix)]) == prefix
}

// Describe renders a hint for debug output.
func Describe(h Hint) string {
	return fmt.Sprintf("%s (+%d): %s", h.Dialect, h.Score, h.Reason)
}
