package models

import "time"

// Snapshot is the dashboard data loaded once at startup. It is shared
// read-only by every request; nothing mutates it after construction.
type Snapshot struct {
	Temperature   Temperature  `json:"temperature"`
	WaterQuality  WaterQuality `json:"waterQuality"`
	DaysInHabitat int          `json:"daysInHabitat"`
	LastFed       LastFed      `json:"lastFed"`
	Activity      Activity     `json:"activity"`
	Donations     Donations    `json:"donations"`
	Uptime        float64      `json:"uptime"` // percent
	Timeline      []Milestone  `json:"timeline"`

	LoadedAt time.Time `json:"loadedAt"`
	Source   string    `json:"source"`
	Fallback bool      `json:"fallback"` // true when the fixture could not be loaded
}

type Temperature struct {
	Current float64            `json:"current"` // °F
	History []TemperaturePoint `json:"history"`
}

type WaterQuality struct {
	PH      float64             `json:"ph"`
	Ammonia float64             `json:"ammonia"` // ppm
	Status  string              `json:"status"`
	History []WaterQualityPoint `json:"history"`
}

// LastFed describes the most recent feeding. HoursAgo is -1 when no
// feeding has been recorded yet.
type LastFed struct {
	HoursAgo int       `json:"hoursAgo"`
	Food     string    `json:"food,omitempty"`
	At       time.Time `json:"at,omitempty"`
}

type Activity struct {
	Status string  `json:"status"`
	Level  float64 `json:"level"` // percent
}

type Donations struct {
	Current    float64 `json:"current"` // USD
	Goal       float64 `json:"goal"`    // USD
	Percentage float64 `json:"percentage"`
}

// Milestone is an entry of the habitat timeline.
type Milestone struct {
	Date    string   `json:"date" yaml:"date"`
	Title   string   `json:"title" yaml:"title"`
	Items   []string `json:"items,omitempty" yaml:"items,omitempty"`
	Current bool     `json:"current,omitempty" yaml:"current,omitempty"`
}
