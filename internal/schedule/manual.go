package schedule

import (
	"sync"
	"time"
)

// ManualScheduler is a deterministic tick source advanced by the caller. It
// delivers ticks synchronously, which lets tests drive an engine without real
// wall-clock timing.
type ManualScheduler struct {
	mu     sync.Mutex
	onTick func(elapsed time.Duration)
}

func NewManual() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Start(onTick func(elapsed time.Duration)) Subscription {
	s.mu.Lock()
	s.onTick = onTick
	s.mu.Unlock()
	return manualSub{s}
}

// Advance delivers a single tick covering d to the active subscriber, if any.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	onTick := s.onTick
	s.mu.Unlock()
	if onTick != nil {
		onTick(d)
	}
}

// Active reports whether a subscriber is currently attached.
func (s *ManualScheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.onTick != nil
}

var _ Scheduler = (*ManualScheduler)(nil)

type manualSub struct {
	s *ManualScheduler
}

func (m manualSub) Stop() {
	m.s.mu.Lock()
	m.s.onTick = nil
	m.s.mu.Unlock()
}
