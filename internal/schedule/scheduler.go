// Package schedule provides the periodic tick sources that drive a countdown.
package schedule

import "time"

// Scheduler delivers periodic tick callbacks until the returned subscription
// is stopped. Each invocation of onTick reports the elapsed time covered by
// that tick.
type Scheduler interface {
	Start(onTick func(elapsed time.Duration)) Subscription
}

// Subscription is a handle to an active tick stream. Stop is idempotent and
// safe to call on an already-stopped handle.
type Subscription interface {
	Stop()
}
