package stats

import (
	"bytes"
	"log/slog"
	"runtime"
	"strings"
	"testing"
	"time"
)

func newTestReporter(buf *bytes.Buffer, interval time.Duration, clock *time.Time) *Reporter {
	r := NewReporter(slog.New(slog.NewTextHandler(buf, nil)), interval)
	r.now = func() time.Time { return *clock }
	r.readMem = func(ms *runtime.MemStats) { ms.HeapAlloc = 3 * 1000 * 1000; ms.NumGC = 7 }
	r.last = *clock
	return r
}

func TestReporterLogsAfterInterval(t *testing.T) {
	var buf bytes.Buffer
	clock := time.Unix(1000, 0)
	r := newTestReporter(&buf, time.Second, &clock)

	for i := 0; i < 59; i++ {
		r.Frame()
	}
	if buf.Len() != 0 {
		t.Fatalf("logged before interval elapsed: %s", buf.String())
	}

	clock = clock.Add(time.Second)
	r.Frame()

	out := buf.String()
	for _, want := range []string{"frame stats", "frames=60", "fps=60", "heap=\"3.0 MB\"", "gc=7"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if r.Frames() != 60 {
		t.Errorf("Frames() = %d, want 60", r.Frames())
	}
}

func TestReporterDisabled(t *testing.T) {
	var buf bytes.Buffer
	clock := time.Unix(1000, 0)
	r := newTestReporter(&buf, 0, &clock)
	for i := 0; i < 10; i++ {
		clock = clock.Add(time.Hour)
		r.Frame()
	}
	if buf.Len() != 0 {
		t.Errorf("disabled reporter logged: %s", buf.String())
	}
	if r.Frames() != 10 {
		t.Errorf("Frames() = %d, want 10", r.Frames())
	}
}
