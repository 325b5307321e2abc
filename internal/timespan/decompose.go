package timespan

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
)

// Decomposed is a millisecond count split into display fields. Minutes and
// seconds are bounded below 60, milliseconds below 1000; hours carry the rest.
type Decomposed struct {
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
}

// Decompose splits a non-negative millisecond count into its display fields.
// Negative input is out of contract; callers clamp first.
func Decompose(ms int64) Decomposed {
	return Decomposed{
		Hours:        ms / millisPerHour,
		Minutes:      ms % millisPerHour / millisPerMinute,
		Seconds:      ms % millisPerMinute / millisPerSecond,
		Milliseconds: ms % millisPerSecond,
	}
}

// FromMillis is an alias for Decompose, mirroring Millis.
var FromMillis = Decompose

// Millis recombines the fields into a single millisecond count.
func (d Decomposed) Millis() int64 {
	return d.Hours*millisPerHour + d.Minutes*millisPerMinute + d.Seconds*millisPerSecond + d.Milliseconds
}
