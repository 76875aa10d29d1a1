package timeseries

import "time"

// Timestamped is implemented by every series point.
type Timestamped interface {
	At() time.Time
}

// Filter returns the points whose age relative to now is within the range
// window, inclusive at the boundary. Order is preserved and nothing is sorted,
// so for an ascending series the result is a suffix of the input. Points
// timestamped after now have a negative age and are kept. RangeAll returns
// the input unchanged.
func Filter[P Timestamped](points []P, r Range, now time.Time) []P {
	window, bounded := r.Window()
	if !bounded {
		if points == nil {
			return []P{}
		}
		return points
	}

	out := make([]P, 0, len(points))
	for _, p := range points {
		if now.Sub(p.At()) <= window {
			out = append(out, p)
		}
	}
	return out
}
