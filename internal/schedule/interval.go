package schedule

import (
	"sync"
	"time"
)

// DefaultInterval is the tick period used when none is configured.
const DefaultInterval = 100 * time.Millisecond

// IntervalScheduler ticks at a fixed period and reports the nominal period as
// elapsed time on every tick.
type IntervalScheduler struct {
	period time.Duration
}

// NewInterval returns a fixed-period scheduler. Non-positive periods fall
// back to DefaultInterval.
func NewInterval(period time.Duration) *IntervalScheduler {
	if period <= 0 {
		period = DefaultInterval
	}
	return &IntervalScheduler{period: period}
}

func (s *IntervalScheduler) Start(onTick func(elapsed time.Duration)) Subscription {
	sub := newSubscription()
	go func() {
		ticker := time.NewTicker(s.period)
		defer ticker.Stop()
		for {
			select {
			case <-sub.done:
				return
			case <-ticker.C:
				onTick(s.period)
			}
		}
	}()
	return sub
}

var _ Scheduler = (*IntervalScheduler)(nil)

type subscription struct {
	once sync.Once
	done chan struct{}
}

func newSubscription() *subscription {
	return &subscription{done: make(chan struct{})}
}

func (s *subscription) Stop() {
	s.once.Do(func() { close(s.done) })
}
