package driver

import (
	"context"
	"sync"
	"testing"

	"github.com/jbessels/rewrite-static-analysis/internal/style"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(evt Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func (s *recordingSink) byFile(path string) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Event
	for _, evt := range s.events {
		if evt.File == path {
			out = append(out, evt)
		}
	}
	return out
}

func TestRewriteDirReportsProgress(t *testing.T) {
	dir := t.TempDir()
	dirty := writeFile(t, dir, "a.jx", "x = (y);\n")
	clean := writeFile(t, dir, "b.jx", "x = y;\n")

	sink := &recordingSink{}
	opts := Options{Style: style.Default(), Progress: sink}
	_, results, err := RewriteDir(context.Background(), dir, opts, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	for _, path := range []string{dirty, clean} {
		evts := sink.byFile(path)
		if len(evts) != 3 {
			t.Fatalf("expected queued/working/done for %s, got %+v", path, evts)
		}
		if evts[0].Status != StatusQueued || evts[1].Status != StatusWorking || evts[2].Status != StatusDone {
			t.Fatalf("unexpected event order for %s: %+v", path, evts)
		}
	}

	if done := sink.byFile(dirty)[2]; !done.Changed {
		t.Fatalf("dirty file should report Changed: %+v", done)
	}
	if done := sink.byFile(clean)[2]; done.Changed {
		t.Fatalf("clean file should not report Changed: %+v", done)
	}
}

func TestChannelSinkNilChannel(t *testing.T) {
	var sink ChannelSink
	sink.OnEvent(Event{File: "a.jx"}) // must not panic
}

func TestChannelSinkForwards(t *testing.T) {
	ch := make(chan Event, 1)
	sink := ChannelSink{Ch: ch}
	sink.OnEvent(Event{File: "a.jx", Status: StatusDone})

	evt := <-ch
	if evt.File != "a.jx" || evt.Status != StatusDone {
		t.Fatalf("unexpected event: %+v", evt)
	}
}
