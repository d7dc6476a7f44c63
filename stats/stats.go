// Package stats periodically reports frame throughput and heap usage so that
// per-frame leaks show up as a rising heap figure over a long run.
package stats

import (
	"log/slog"
	"runtime"
	"time"

	humanize "github.com/dustin/go-humanize"
)

// Reporter counts frames and logs a summary once per interval.
type Reporter struct {
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time
	readMem  func(*runtime.MemStats)

	frames     uint64
	lastFrames uint64
	last       time.Time
}

// NewReporter returns a reporter. A zero interval disables reporting, but
// frames are still counted.
func NewReporter(logger *slog.Logger, interval time.Duration) *Reporter {
	r := &Reporter{
		logger:   logger,
		interval: interval,
		now:      time.Now,
		readMem:  runtime.ReadMemStats,
	}
	r.last = r.now()
	return r
}

// Frame records one presented frame and logs if the interval has elapsed.
func (r *Reporter) Frame() {
	r.frames++
	if r.interval <= 0 {
		return
	}
	now := r.now()
	elapsed := now.Sub(r.last)
	if elapsed < r.interval {
		return
	}
	var ms runtime.MemStats
	r.readMem(&ms)
	fps := float64(r.frames-r.lastFrames) / elapsed.Seconds()
	r.logger.Info("frame stats",
		"frames", humanize.Comma(int64(r.frames)),
		"fps", humanize.FtoaWithDigits(fps, 1),
		"heap", humanize.Bytes(ms.HeapAlloc),
		"gc", ms.NumGC)
	r.last = now
	r.lastFrames = r.frames
}

// Frames returns the number of frames recorded.
func (r *Reporter) Frames() uint64 {
	return r.frames
}
