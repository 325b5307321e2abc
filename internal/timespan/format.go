package timespan

import (
	"fmt"
)

// Format selects one of the preset display layouts. The most significant
// field of each layout is cumulative and unpadded; the remaining fields are
// zero-padded to their natural width.
type Format int

const (
	// MinSec renders m:ss, the default layout.
	MinSec Format = iota
	// MinSecMilli renders m:ss.SSS.
	MinSecMilli
	// HourMinSec renders h:mm:ss.
	HourMinSec
	// HourMinSecMilli renders h:mm:ss.SSS.
	HourMinSecMilli
	// Sec renders total seconds.
	Sec
	// SecMilli renders total seconds plus s.SSS.
	SecMilli
)

var formatNames = map[Format]string{
	MinSec:          "mm:ss",
	MinSecMilli:     "mm:ss.SSS",
	HourMinSec:      "hh:mm:ss",
	HourMinSecMilli: "hh:mm:ss.SSS",
	Sec:             "ss",
	SecMilli:        "ss.SSS",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "mm:ss"
}

// ParseFormat maps a layout tag like "mm:ss" back to its preset.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return MinSec, fmt.Errorf("timespan: unknown format %q", name)
}

// FormatterFunc renders a millisecond count into a display string. An engine
// configured with one bypasses preset rendering entirely, so the caller owns
// the full layout. Panics raised by the func propagate unmodified.
type FormatterFunc func(ms int64) string

// Render formats a non-negative millisecond count per the preset layout.
func Render(ms int64, f Format) string {
	d := Decompose(ms)
	switch f {
	case HourMinSec:
		return fmt.Sprintf("%d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
	case HourMinSecMilli:
		return fmt.Sprintf("%d:%02d:%02d.%03d", d.Hours, d.Minutes, d.Seconds, d.Milliseconds)
	case MinSecMilli:
		return fmt.Sprintf("%d:%02d.%03d", d.Hours*60+d.Minutes, d.Seconds, d.Milliseconds)
	case Sec:
		return fmt.Sprintf("%d", ms/millisPerSecond)
	case SecMilli:
		return fmt.Sprintf("%d.%03d", ms/millisPerSecond, d.Milliseconds)
	default:
		return fmt.Sprintf("%d:%02d", d.Hours*60+d.Minutes, d.Seconds)
	}
}
