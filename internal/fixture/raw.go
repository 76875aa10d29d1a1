package fixture

import "shelldon/internal/models"

// The raw* types mirror the fixture document. Pointers distinguish a missing
// field (default applies) from an explicit zero.

type rawSnapshot struct {
	Temperature   *rawTemperature    `json:"temperature" yaml:"temperature"`
	WaterQuality  *rawWaterQuality   `json:"waterQuality" yaml:"waterQuality"`
	DaysInHabitat *int               `json:"daysInHabitat" yaml:"daysInHabitat"`
	LastFed       *rawLastFed        `json:"lastFed" yaml:"lastFed"`
	Activity      *rawActivity       `json:"activity" yaml:"activity"`
	Donations     *rawDonations      `json:"donations" yaml:"donations"`
	Uptime        *float64           `json:"uptime" yaml:"uptime"`
	Timeline      []models.Milestone `json:"timeline" yaml:"timeline"`
}

type rawTemperature struct {
	Current *float64              `json:"current" yaml:"current"`
	History []rawTemperaturePoint `json:"history" yaml:"history"`
}

type rawTemperaturePoint struct {
	Timestamp string  `json:"timestamp" yaml:"timestamp"`
	Value     float64 `json:"value" yaml:"value"`
}

type rawWaterQuality struct {
	PH      *float64        `json:"ph" yaml:"ph"`
	Ammonia *float64        `json:"ammonia" yaml:"ammonia"`
	Status  *string         `json:"status" yaml:"status"`
	History []rawWaterPoint `json:"history" yaml:"history"`
}

type rawWaterPoint struct {
	Timestamp string  `json:"timestamp" yaml:"timestamp"`
	PH        float64 `json:"ph" yaml:"ph"`
	Ammonia   float64 `json:"ammonia" yaml:"ammonia"`
}

type rawLastFed struct {
	HoursAgo *int   `json:"hoursAgo" yaml:"hoursAgo"`
	Food     string `json:"food" yaml:"food"`
	At       string `json:"at" yaml:"at"`
}

type rawActivity struct {
	Status *string  `json:"status" yaml:"status"`
	Level  *float64 `json:"level" yaml:"level"`
}

type rawDonations struct {
	Current    *float64 `json:"current" yaml:"current"`
	Goal       *float64 `json:"goal" yaml:"goal"`
	Percentage *float64 `json:"percentage" yaml:"percentage"`
}
