package service

import (
	"context"
	"time"

	"shelldon/internal/models"
)

var testNow = time.Date(2026, 2, 10, 23, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type fakeTempRepo struct {
	points   []models.TemperaturePoint
	err      error
	gotFrom  time.Time
	gotTo    time.Time
	appended []models.TemperaturePoint
}

func (f *fakeTempRepo) Append(_ context.Context, p models.TemperaturePoint) (models.TemperaturePoint, error) {
	if f.err != nil {
		return models.TemperaturePoint{}, f.err
	}
	p.ID = "t-1"
	f.appended = append(f.appended, p)
	return p, nil
}

func (f *fakeTempRepo) List(_ context.Context, from, to time.Time) ([]models.TemperaturePoint, error) {
	f.gotFrom, f.gotTo = from, to
	return f.points, f.err
}

type fakeWaterRepo struct {
	points   []models.WaterQualityPoint
	err      error
	gotFrom  time.Time
	gotTo    time.Time
	appended []models.WaterQualityPoint
}

func (f *fakeWaterRepo) Append(_ context.Context, p models.WaterQualityPoint) (models.WaterQualityPoint, error) {
	if f.err != nil {
		return models.WaterQualityPoint{}, f.err
	}
	p.ID = "w-1"
	f.appended = append(f.appended, p)
	return p, nil
}

func (f *fakeWaterRepo) List(_ context.Context, from, to time.Time) ([]models.WaterQualityPoint, error) {
	f.gotFrom, f.gotTo = from, to
	return f.points, f.err
}

// testSnapshot mirrors the bundled fixture, anchored on testNow.
func testSnapshot() models.Snapshot {
	return models.Snapshot{
		Temperature: models.Temperature{
			Current: 71.6,
			History: []models.TemperaturePoint{
				{Timestamp: testNow.Add(-53 * time.Hour), Value: 74.0},
				{Timestamp: testNow.Add(-38 * time.Hour), Value: 74.0},
				{Timestamp: testNow.Add(-13 * time.Hour), Value: 71.2},
				{Timestamp: testNow.Add(-6 * time.Hour), Value: 71.6},
			},
		},
		WaterQuality: models.WaterQuality{
			PH: 7.4, Ammonia: 0.01, Status: "Safe",
			History: []models.WaterQualityPoint{
				{Timestamp: testNow.Add(-38 * time.Hour), PH: 7.2, Ammonia: 0},
				{Timestamp: testNow.Add(-13 * time.Hour), PH: 7.4, Ammonia: 0.01},
			},
		},
		DaysInHabitat: 2,
		LastFed:       models.LastFed{HoursAgo: -1},
		Activity:      models.Activity{Status: "Exploring", Level: 60},
		Donations:     models.Donations{Current: 0, Goal: 100, Percentage: 0},
		Uptime:        98,
		Timeline:      []models.Milestone{{Date: "Feb 6, 2026", Title: "Tank Setup"}},
		LoadedAt:      testNow,
	}
}
