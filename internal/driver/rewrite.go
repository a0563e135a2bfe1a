// Package driver glues the pipeline together: dialect detection, parsing,
// the fixpoint engine, printing, and the disk cache, for one file or a
// whole directory tree.
package driver

import (
	"fmt"

	"github.com/jbessels/rewrite-static-analysis/internal/diag"
	"github.com/jbessels/rewrite-static-analysis/internal/dialect"
	"github.com/jbessels/rewrite-static-analysis/internal/format"
	"github.com/jbessels/rewrite-static-analysis/internal/parser"
	"github.com/jbessels/rewrite-static-analysis/internal/rewrite"
	"github.com/jbessels/rewrite-static-analysis/internal/rules"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
	"github.com/jbessels/rewrite-static-analysis/internal/style"
)

const defaultMaxDiagnostics = 100

// Options configures a rewrite run. The zero value is usable: default
// style, default limits, no cache.
type Options struct {
	Style          style.Config
	MaxDiagnostics int
	MaxCycles      int
	Cache          *DiskCache
	Progress       ProgressSink // directory runs report per-file events here
}

func (o Options) withDefaults() Options {
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = defaultMaxDiagnostics
	}
	return o
}

// FileResult is the outcome for one file. Output always holds the full
// text to emit; for skipped or unchanged files it is the original content.
type FileResult struct {
	Path      string
	FileID    source.FileID
	Dialect   dialect.Kind
	Bag       *diag.Bag
	Output    []byte
	Changed   bool
	Cycles    int
	Skipped   bool // foreign dialect or parse errors: passed through untouched
	FromCache bool
}

// RewriteFile loads one file from disk and rewrites it.
func RewriteFile(path string, opts Options) (FileResult, error) {
	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		return FileResult{Path: path}, fmt.Errorf("driver: load %s: %w", path, err)
	}
	return RewriteSource(fileSet, id, opts)
}

// RewriteSource rewrites one already-loaded file. Files the classifier
// marks foreign and files with parse errors come back unchanged with
// Skipped set.
func RewriteSource(fileSet *source.FileSet, id source.FileID, opts Options) (FileResult, error) {
	opts = opts.withDefaults()

	file := fileSet.Get(id)
	res := FileResult{
		Path:   file.Path,
		FileID: id,
		Output: file.Content,
	}

	res.Dialect = dialect.Detect(id, file.Content)
	if res.Dialect.Foreign() {
		res.Skipped = true
		return res, nil
	}

	key := cacheKey(file.Hash, opts.Style)
	if opts.Cache != nil {
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		if err == nil && hit && payload.Schema == diskCacheSchemaVersion {
			res.Output = payload.Output
			res.Changed = payload.Changed
			res.Cycles = payload.Cycles
			res.FromCache = true
			return res, nil
		}
	}

	bag := diag.NewBag(opts.MaxDiagnostics)
	parsed := parser.ParseFile(file, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	res.Bag = bag
	if bag.HasErrors() {
		res.Skipped = true
		return res, nil
	}
	parsed.File.Dialect = res.Dialect

	engine := rewrite.Engine{MaxCycles: opts.MaxCycles}
	run, err := engine.Run(parsed.File, passes(opts.Style)...)
	if err != nil {
		return res, fmt.Errorf("driver: rewrite %s: %w", file.Path, err)
	}

	res.Changed = run.Changed
	res.Cycles = run.Cycles
	if run.Changed {
		res.Output = []byte(format.Print(run.File))
	}

	if opts.Cache != nil {
		// Cache writes are best effort; a failed write never fails the run.
		_ = opts.Cache.Put(key, &DiskPayload{
			Schema:  diskCacheSchemaVersion,
			Output:  res.Output,
			Changed: res.Changed,
			Cycles:  res.Cycles,
		})
	}
	return res, nil
}

func passes(cfg style.Config) []rewrite.Pass {
	return []rewrite.Pass{
		&rules.UnnecessaryParens{Style: cfg},
	}
}
