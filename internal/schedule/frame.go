package schedule

import "time"

// DefaultRefreshRate approximates a 60Hz display.
const DefaultRefreshRate = time.Second / 60

// FrameScheduler ticks once per display refresh. Refresh-driven callbacks
// have variable spacing, so each tick reports the actual wall-clock time
// since the previous one rather than a nominal constant.
type FrameScheduler struct {
	cadence time.Duration
}

// NewFrame returns a display-synced scheduler at DefaultRefreshRate.
func NewFrame() *FrameScheduler {
	return &FrameScheduler{cadence: DefaultRefreshRate}
}

func (s *FrameScheduler) Start(onTick func(elapsed time.Duration)) Subscription {
	sub := newSubscription()
	go func() {
		ticker := time.NewTicker(s.cadence)
		defer ticker.Stop()
		last := time.Now()
		for {
			select {
			case <-sub.done:
				return
			case now := <-ticker.C:
				onTick(now.Sub(last))
				last = now
			}
		}
	}()
	return sub
}

var _ Scheduler = (*FrameScheduler)(nil)
