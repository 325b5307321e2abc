// Package countdown implements the countdown timer state machine.
package countdown

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hourglass-cli/hourglass/internal/schedule"
	"github.com/hourglass-cli/hourglass/internal/timespan"
)

// Status is the lifecycle state of an Engine.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusFinished:
		return "finished"
	default:
		return "idle"
	}
}

// Config holds the optional knobs for an Engine. The zero value selects a
// fixed 100ms tick, the m:ss layout, no looping and no callbacks.
type Config struct {
	// Interval is the tick period of the default fixed-interval scheduler.
	// Ignored when FrameSync or Scheduler is set.
	Interval time.Duration
	// FrameSync drives the countdown from the display refresh cadence
	// instead of a fixed interval.
	FrameSync bool
	// Scheduler overrides the tick source entirely. Tests use this to
	// drive the engine deterministically.
	Scheduler schedule.Scheduler

	// Format selects the preset layout used to render Snapshot.Time.
	Format timespan.Format
	// Formatter replaces preset rendering entirely when set.
	Formatter timespan.FormatterFunc

	// AutoStart starts the countdown immediately on construction.
	AutoStart bool
	// Loop rearms the full duration each time the countdown reaches zero
	// instead of finishing.
	Loop bool

	Logger *zap.Logger

	// Lifecycle callbacks, invoked synchronously after the transition they
	// describe has committed. OnStart fires on fresh starts only, never on
	// a paused-to-running resume.
	OnStart    func()
	OnPause    func()
	OnStop     func()
	OnReset    func()
	OnTick     func(remainingMs int64)
	OnComplete func()
}

// Engine counts a fixed duration down to zero, driven by a tick source. Every
// control method is total: each call has a defined effect in every state and
// none of them error or panic. Ticks arrive from the scheduler goroutine, so
// the canonical state lives behind a mutex; a tick racing a pause or stop is
// discarded by the status check at the top of the handler.
type Engine struct {
	mu        sync.Mutex
	total     int64
	remaining int64
	status    Status
	sub       schedule.Subscription

	sched  schedule.Scheduler
	cfg    Config
	logger *zap.Logger
}

// New builds an Engine for the given duration. Negative durations are a
// caller bug and are rejected rather than clamped.
func New(total time.Duration, cfg Config) (*Engine, error) {
	if total < 0 {
		return nil, fmt.Errorf("countdown: negative duration %v", total)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	sched := cfg.Scheduler
	if sched == nil {
		if cfg.FrameSync {
			sched = schedule.NewFrame()
		} else {
			sched = schedule.NewInterval(cfg.Interval)
		}
	}

	e := &Engine{
		total:     total.Milliseconds(),
		remaining: total.Milliseconds(),
		status:    StatusIdle,
		sched:     sched,
		cfg:       cfg,
		logger:    cfg.Logger,
	}
	if cfg.AutoStart {
		e.Start()
	}
	return e, nil
}

// Start begins or resumes the countdown. From idle or finished it rearms the
// full duration and fires OnStart; from paused it keeps the current remainder
// and fires nothing. A no-op while running.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.status == StatusRunning {
		e.mu.Unlock()
		return
	}
	fresh := e.status != StatusPaused
	if fresh {
		e.remaining = e.total
	}
	e.status = StatusRunning
	e.sub = e.sched.Start(e.tick)
	remaining := e.remaining
	e.mu.Unlock()

	e.logger.Debug("countdown started",
		zap.Bool("fresh", fresh), zap.Int64("remainingMs", remaining))
	if fresh {
		fire(e.cfg.OnStart)
	}
}

// Pause halts ticking and preserves the remainder. A no-op unless running.
func (e *Engine) Pause() {
	e.mu.Lock()
	if e.status != StatusRunning {
		e.mu.Unlock()
		return
	}
	e.unsubscribeLocked()
	e.status = StatusPaused
	remaining := e.remaining
	e.mu.Unlock()

	e.logger.Debug("countdown paused", zap.Int64("remainingMs", remaining))
	fire(e.cfg.OnPause)
}

// Stop halts ticking and returns to idle without touching the remainder. A
// no-op from idle or finished.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.status != StatusRunning && e.status != StatusPaused {
		e.mu.Unlock()
		return
	}
	e.unsubscribeLocked()
	e.status = StatusIdle
	e.mu.Unlock()

	e.logger.Debug("countdown stopped")
	fire(e.cfg.OnStop)
}

// Reset rearms the full duration and returns to idle from any state.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.unsubscribeLocked()
	e.remaining = e.total
	e.status = StatusIdle
	e.mu.Unlock()

	e.logger.Debug("countdown reset")
	fire(e.cfg.OnReset)
}

// Restart is Reset followed by Start.
func (e *Engine) Restart() {
	e.Reset()
	e.Start()
}

// Toggle pauses a running countdown and starts it otherwise.
func (e *Engine) Toggle() {
	if e.IsRunning() {
		e.Pause()
	} else {
		e.Start()
	}
}

// AddTime raises the remainder by d, clamped at the full duration. Adding
// time back to a finished countdown moves it to paused, never auto-resumed.
func (e *Engine) AddTime(d time.Duration) {
	e.mu.Lock()
	e.remaining += d.Milliseconds()
	if e.remaining > e.total {
		e.remaining = e.total
	}
	if e.remaining < 0 {
		e.remaining = 0
	}
	if e.status == StatusFinished && e.remaining > 0 {
		e.status = StatusPaused
	}
	e.mu.Unlock()
}

// SubtractTime lowers the remainder by d, clamped at zero. Reaching zero
// while running takes the same completion path as a tick.
func (e *Engine) SubtractTime(d time.Duration) {
	e.mu.Lock()
	e.remaining -= d.Milliseconds()
	if e.remaining < 0 {
		e.remaining = 0
	}
	if e.remaining > e.total {
		e.remaining = e.total
	}
	completed := false
	if e.remaining == 0 && e.status == StatusRunning {
		completed = e.completeLocked()
	}
	e.mu.Unlock()

	if completed {
		fire(e.cfg.OnComplete)
	}
}

// SetTime replaces the remainder. Values above the configured total raise the
// total so the remainder invariant and progress bounds keep holding; negative
// values clamp to zero. Status is recomputed to match the new value: a zero
// remainder finishes a running or paused countdown, a positive one revives a
// finished countdown to paused. No callbacks fire.
func (e *Engine) SetTime(d time.Duration) {
	e.mu.Lock()
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	e.remaining = ms
	if ms > e.total {
		e.total = ms
	}
	switch {
	case ms == 0 && (e.status == StatusRunning || e.status == StatusPaused):
		e.unsubscribeLocked()
		e.status = StatusFinished
	case ms > 0 && e.status == StatusFinished:
		e.status = StatusPaused
	}
	e.mu.Unlock()
}

// tick consumes one scheduler notification. A pause or stop may race a tick
// already in flight, so the handler discards anything delivered outside the
// running state before mutating the remainder.
func (e *Engine) tick(elapsed time.Duration) {
	e.mu.Lock()
	if e.status != StatusRunning {
		e.mu.Unlock()
		return
	}
	e.remaining -= elapsed.Milliseconds()
	if e.remaining < 0 {
		e.remaining = 0
	}
	remaining := e.remaining
	completed := false
	if remaining == 0 {
		completed = e.completeLocked()
	}
	e.mu.Unlock()

	if e.cfg.OnTick != nil {
		e.cfg.OnTick(remaining)
	}
	if completed {
		e.logger.Debug("countdown finished")
		fire(e.cfg.OnComplete)
	}
}

// completeLocked handles the remainder reaching zero while running. In loop
// mode the full duration is silently rearmed and the countdown stays running;
// otherwise the subscription ends and the state moves to finished. Returns
// true when OnComplete should fire.
func (e *Engine) completeLocked() bool {
	if e.cfg.Loop {
		e.remaining = e.total
		return false
	}
	e.unsubscribeLocked()
	e.status = StatusFinished
	return true
}

// unsubscribeLocked tears down the live subscription synchronously so no tick
// can fire after the engine has logically left the running state.
func (e *Engine) unsubscribeLocked() {
	if e.sub != nil {
		e.sub.Stop()
		e.sub = nil
	}
}

func fire(fn func()) {
	if fn != nil {
		fn()
	}
}
