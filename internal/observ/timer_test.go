package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("scan")
	time.Sleep(time.Millisecond)
	tm.End(idx, "3 files")

	report := tm.Report()
	if len(report.Phases) != 1 {
		t.Fatalf("expected 1 phase, got %d", len(report.Phases))
	}
	p := report.Phases[0]
	if p.Name != "scan" || p.Note != "3 files" {
		t.Fatalf("unexpected phase: %+v", p)
	}
	if p.DurationMS <= 0 {
		t.Fatalf("expected positive duration, got %v", p.DurationMS)
	}
	if report.TotalMS < p.DurationMS {
		t.Fatalf("total %v below phase duration %v", report.TotalMS, p.DurationMS)
	}
}

func TestTimerEndIgnoresBadIndex(t *testing.T) {
	tm := NewTimer()
	tm.End(-1, "")
	tm.End(42, "")
	if got := tm.Report(); len(got.Phases) != 0 {
		t.Fatalf("expected empty report, got %+v", got)
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	a := tm.Begin("rewrite")
	tm.End(a, "")
	out := tm.Summary()
	if !strings.Contains(out, "rewrite") || !strings.Contains(out, "total") {
		t.Fatalf("summary missing entries:\n%s", out)
	}
}
