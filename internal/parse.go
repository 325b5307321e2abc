package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseClock converts a [hh:][mm:]ss string into a duration.
func ParseClock(clock string) (time.Duration, error) {
	clockParts := strings.Split(clock, ":")
	if len(clockParts) > 3 {
		return 0, fmt.Errorf("too many segments in %q, want [hh:][mm:]ss", clock)
	}
	totalMillis := uint64(0)
	for i := 0; i < len(clockParts); i++ {
		intVal, err := strconv.ParseUint(clockParts[i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s is not a valid integer", clockParts[i])
		}
		pos := float64(len(clockParts) - 1 - i)
		totalMillis += uint64(math.Pow(60, pos)) * intVal * 1000
	}
	return time.Duration(totalMillis) * time.Millisecond, nil
}
