package models

import "time"

// TemperaturePoint is a single habitat water temperature sample in °F.
type TemperaturePoint struct {
	ID        string    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"` // °F
}

// At returns the sample time.
func (p TemperaturePoint) At() time.Time { return p.Timestamp }

// WaterQualityPoint is a single water test result.
type WaterQualityPoint struct {
	ID        string    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	PH        float64   `json:"ph"`
	Ammonia   float64   `json:"ammonia"` // ppm
}

// At returns the sample time.
func (p WaterQualityPoint) At() time.Time { return p.Timestamp }
