package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/jbessels/rewrite-static-analysis/internal/diag"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
)

// Pretty renders diagnostics in a human-readable form. Each diagnostic
// prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line with a ^~~~ underline, then any
// notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d.Primary, sevLabel(d.Severity, opts.Color), d.Code.ID(), d.Message, opts)
		writeExcerpt(w, fs, d.Primary)
		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			writeHeading(w, fs, note.Span, noteLabel(opts.Color), "", note.Msg, opts)
			writeExcerpt(w, fs, note.Span)
		}
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, span source.Span, label, code, msg string, opts PrettyOpts) {
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	if code != "" {
		code = " " + code
	}
	fmt.Fprintf(w, "%s:%d:%d: %s%s: %s\n", formatPath(f, fs, opts.PathMode), start.Line, start.Col, label, code, msg)
}

// writeExcerpt prints the source line containing the span start with an
// underline below it. Nothing prints for spans with no backing content,
// such as I/O failures.
func writeExcerpt(w io.Writer, fs *source.FileSet, span source.Span) {
	f := fs.Get(span.File)
	if len(f.Content) == 0 {
		return
	}
	start, _ := fs.Resolve(span)
	line := lineText(f, start.Line)
	fmt.Fprintf(w, "    %s\n", line)

	col := int(start.Col - 1)
	if col > len(line) {
		col = len(line)
	}
	// Underline the span, clamped to the excerpted line.
	width := int(span.End) - int(span.Start)
	if width > len(line)-col {
		width = len(line) - col
	}
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(w, "    %s^%s\n", strings.Repeat(" ", col), strings.Repeat("~", width-1))
}

// lineText returns the text of the 1-based line, newline excluded.
func lineText(f *source.File, line uint32) string {
	var start uint32
	if line > 1 {
		start = f.LineIdx[line-2] + 1
	}
	end := uint32(len(f.Content))
	if int(line-1) < len(f.LineIdx) {
		end = f.LineIdx[line-1]
	}
	return string(f.Content[start:end])
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeRelative:
		return f.RelPath(fs.BaseDir())
	case PathModeBasename:
		return filepath.Base(f.Path)
	default:
		return f.Path
	}
}

func sevLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(label)
	default:
		return color.New(color.FgCyan).Sprint(label)
	}
}

func noteLabel(colored bool) string {
	if !colored {
		return "note"
	}
	return color.New(color.FgBlue).Sprint("note")
}
