package timeseries

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Summary holds the statistics shown under a history chart.
type Summary struct {
	Current float64 `json:"current"` // last point, 0 when empty
	Average float64 `json:"average"` // one decimal, 0 when empty
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Count   int     `json:"count"`
}

// Summarize computes a Summary over points using value to select the field.
func Summarize[P any](points []P, value func(P) float64) Summary {
	if len(points) == 0 {
		return Summary{}
	}
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = value(p)
	}

	s := Summary{
		Current: values[len(values)-1],
		Average: Round1(Mean(values)),
		Min:     values[0],
		Max:     values[0],
		Count:   len(values),
	}
	for _, v := range values[1:] {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	return s
}

// Mean is the arithmetic mean of xs, or 0 for an empty slice.
func Mean[N constraints.Integer | constraints.Float](xs []N) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	return sum / float64(len(xs))
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
