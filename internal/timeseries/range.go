package timeseries

import (
	"errors"
	"strings"
	"time"
)

// Range is the window used to filter a series for charting.
type Range string

const (
	Range24h Range = "24h"
	Range7d  Range = "7d"
	Range30d Range = "30d"
	RangeAll Range = "all"
)

// DefaultRange is the selection a history view opens with.
const DefaultRange = Range7d

var ErrInvalidRange = errors.New("invalid time range: must be one of 24h, 7d, 30d, all")

// Ranges lists the selectable ranges in display order.
func Ranges() []Range {
	return []Range{Range24h, Range7d, Range30d, RangeAll}
}

// ParseRange normalizes s into a Range. An empty string yields DefaultRange.
func ParseRange(s string) (Range, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultRange, nil
	}
	for _, r := range Ranges() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", ErrInvalidRange
}

// Window returns the look-back duration. bounded is false for RangeAll.
// Unknown values fall back to the DefaultRange window.
func (r Range) Window() (window time.Duration, bounded bool) {
	switch r {
	case Range24h:
		return 24 * time.Hour, true
	case Range7d:
		return 7 * 24 * time.Hour, true
	case Range30d:
		return 30 * 24 * time.Hour, true
	case RangeAll:
		return 0, false
	default:
		return DefaultRange.Window()
	}
}

// Label is the text shown on the range selector.
func (r Range) Label() string {
	if r == RangeAll {
		return "All Time"
	}
	return strings.ToUpper(string(r))
}
