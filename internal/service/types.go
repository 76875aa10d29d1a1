package service

import (
	"errors"
	"time"
)

// LogFilter supports care log filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "FEEDING", "WATER_CHANGE", "MILESTONE", "NOTE"
}

var (
	ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")
	ErrInvalidReading   = errors.New("invalid reading")
	ErrInvalidCareEvent = errors.New("invalid care event")
)

// PointTimeLabel formats a series timestamp the way the history views show it.
func PointTimeLabel(t time.Time) string {
	return t.Format("Jan 2, 3:04 PM")
}
