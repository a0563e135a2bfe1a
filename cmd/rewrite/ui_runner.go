package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jbessels/rewrite-static-analysis/internal/driver"
	"github.com/jbessels/rewrite-static-analysis/internal/source"
	"github.com/jbessels/rewrite-static-analysis/internal/ui"
)

type rewriteOutcome struct {
	fileSet *source.FileSet
	results []driver.FileResult
	err     error
}

// rewriteDirWithUI runs a directory rewrite behind a live progress view.
// The rewrite itself runs on its own goroutine; the Bubble Tea program
// owns the terminal until the event channel closes.
func rewriteDirWithUI(ctx context.Context, title, dir string, opts driver.Options, jobs int) (*source.FileSet, []driver.FileResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return driver.RewriteDir(ctx, dir, opts, jobs)
	}

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan rewriteOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fileSet, results, err := driver.RewriteDir(ctx, dir, optsCopy, jobs)
		outcomeCh <- rewriteOutcome{fileSet: fileSet, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
