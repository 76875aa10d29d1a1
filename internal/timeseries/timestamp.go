package timeseries

import (
	"fmt"
	"strings"
	"time"
)

const layoutLocalDateTime = "2006-01-02T15:04:05"

// ParseTimestamp accepts RFC 3339 (with or without fractional seconds) and
// zone-less "YYYY-MM-DDTHH:MM:SS", which is read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, layoutLocalDateTime} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q: expected RFC3339", s)
}
