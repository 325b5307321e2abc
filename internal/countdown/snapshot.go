package countdown

import (
	"time"

	"github.com/hourglass-cli/hourglass/internal/timespan"
)

// Snapshot is a point-in-time view of the engine with its derived display
// fields. The fields are recomputed from the canonical state on every call
// and never cached, so a snapshot can not drift from the remainder it was
// taken from.
type Snapshot struct {
	// Time is the remainder rendered through the configured format.
	Time string
	// Progress is the percentage elapsed, 0 to 100. A zero-duration
	// countdown reports 0.
	Progress float64
	Status   Status

	Remaining time.Duration
	Total     time.Duration
}

func (s Snapshot) IsRunning() bool  { return s.Status == StatusRunning }
func (s Snapshot) IsPaused() bool   { return s.Status == StatusPaused }
func (s Snapshot) IsFinished() bool { return s.Status == StatusFinished }
func (s Snapshot) IsIdle() bool     { return s.Status == StatusIdle }

// Snapshot returns the current state plus derived fields.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	remaining, total, status := e.remaining, e.total, e.status
	e.mu.Unlock()

	return Snapshot{
		Time:      e.renderTime(remaining),
		Progress:  progress(total, remaining),
		Status:    status,
		Remaining: time.Duration(remaining) * time.Millisecond,
		Total:     time.Duration(total) * time.Millisecond,
	}
}

// Status returns the current lifecycle state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Remaining returns the current countdown value.
func (e *Engine) Remaining() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return time.Duration(e.remaining) * time.Millisecond
}

func (e *Engine) IsRunning() bool  { return e.Status() == StatusRunning }
func (e *Engine) IsPaused() bool   { return e.Status() == StatusPaused }
func (e *Engine) IsFinished() bool { return e.Status() == StatusFinished }
func (e *Engine) IsIdle() bool     { return e.Status() == StatusIdle }

func (e *Engine) renderTime(ms int64) string {
	if e.cfg.Formatter != nil {
		return e.cfg.Formatter(ms)
	}
	return timespan.Render(ms, e.cfg.Format)
}

func progress(total, remaining int64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(total-remaining) / float64(total)
}
