package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jbessels/rewrite-static-analysis/internal/diag"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
)

// SourceExt is the extension of primary-dialect files.
const SourceExt = ".jx"

// ListSourceFiles returns every *.jx file under dir, sorted for a
// deterministic processing order.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// RewriteDir rewrites every *.jx file under dir, up to jobs files at a
// time. Results come back in file-path order regardless of completion
// order. A file that fails to load gets a FileResult with an I/O
// diagnostic rather than failing the whole run.
func RewriteDir(ctx context.Context, dir string, opts Options, jobs int) (*source.FileSet, []FileResult, error) {
	opts = opts.withDefaults()

	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	// Each goroutine writes only its own index; no mutex needed.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(opts.Progress, Event{File: path, Status: StatusWorking})
			started := time.Now()

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFile,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = FileResult{Path: path, Bag: bag, Skipped: true}
				emit(opts.Progress, Event{
					File:    path,
					Status:  StatusError,
					Err:     loadErr,
					Elapsed: time.Since(started),
				})
				return nil
			}

			res, err := RewriteSource(fileSet, fileIDs[path], opts)
			if err != nil {
				emit(opts.Progress, Event{
					File:    path,
					Status:  StatusError,
					Err:     err,
					Elapsed: time.Since(started),
				})
				return err
			}
			results[i] = res
			emit(opts.Progress, Event{
				File:      path,
				Status:    StatusDone,
				Changed:   res.Changed,
				Skipped:   res.Skipped,
				FromCache: res.FromCache,
				Elapsed:   time.Since(started),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
