package internal

import (
	"testing"
	"time"

	"github.com/MarvinJWendt/testza"
)

func TestParseClock(t *testing.T) {
	testCases := []struct {
		clock    string
		expected time.Duration
	}{
		{"30", 30 * time.Second},
		{"2:30", 150 * time.Second},
		{"3:05:30", 11130 * time.Second},
		{"0", 0},
		{"90", 90 * time.Second},
	}

	for _, tc := range testCases {
		parsed, err := ParseClock(tc.clock)
		testza.AssertNoError(t, err)
		testza.AssertEqual(t, tc.expected, parsed)
	}
}

func TestParseClockRejectsBadInput(t *testing.T) {
	for _, clock := range []string{"abc", "1:xx", "1:2:3:4", "", "1.5"} {
		_, err := ParseClock(clock)
		testza.AssertNotNil(t, err, clock)
	}
}
