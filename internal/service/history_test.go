package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"shelldon/internal/config"
	"shelldon/internal/models"
	"shelldon/internal/repository"
	"shelldon/internal/timeseries"
)

func TestHistoryService_Temperature(t *testing.T) {
	t.Parallel()

	svc := NewHistoryService(NewHistorySource(config.HistorySourceFixture, testSnapshot(), nil), fixedClock)

	tests := []struct {
		r           timeseries.Range
		wantCount   int
		wantCurrent float64
		wantAverage float64
	}{
		{r: timeseries.Range24h, wantCount: 2, wantCurrent: 71.6, wantAverage: 71.4},
		{r: timeseries.Range7d, wantCount: 4, wantCurrent: 71.6, wantAverage: 72.7},
		{r: timeseries.RangeAll, wantCount: 4, wantCurrent: 71.6, wantAverage: 72.7},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(string(tc.r), func(t *testing.T) {
			t.Parallel()
			h, err := svc.Temperature(context.Background(), tc.r)
			if err != nil {
				t.Fatalf("Temperature: %v", err)
			}
			if h.Summary.Count != tc.wantCount || len(h.Points) != tc.wantCount {
				t.Fatalf("count: want %d, got %d (%d points)", tc.wantCount, h.Summary.Count, len(h.Points))
			}
			if h.Summary.Current != tc.wantCurrent || h.Summary.Average != tc.wantAverage {
				t.Fatalf("summary: got %+v", h.Summary)
			}
			if h.Optimal != timeseries.TemperatureOptimal || h.Domain != timeseries.TemperatureDomain {
				t.Fatalf("bands not attached: %+v %+v", h.Optimal, h.Domain)
			}
		})
	}
}

func TestHistoryService_Water(t *testing.T) {
	t.Parallel()

	svc := NewHistoryService(NewHistorySource(config.HistorySourceFixture, testSnapshot(), nil), fixedClock)

	h, err := svc.Water(context.Background(), timeseries.Range7d)
	if err != nil {
		t.Fatalf("Water: %v", err)
	}
	if h.PH.Current != 7.4 || h.Ammonia.Current != 0.01 || h.Status != timeseries.StatusSafe {
		t.Fatalf("unexpected water history: %+v", h)
	}

	h, err = svc.Water(context.Background(), timeseries.Range24h)
	if err != nil {
		t.Fatalf("Water: %v", err)
	}
	if len(h.Points) != 1 || h.Status != timeseries.StatusSafe {
		t.Fatalf("24h: %+v", h)
	}
}

func TestHistoryService_EmptyWaterIsCheck(t *testing.T) {
	t.Parallel()

	snap := testSnapshot()
	snap.WaterQuality.History = []models.WaterQualityPoint{}
	svc := NewHistoryService(NewHistorySource(config.HistorySourceFixture, snap, nil), fixedClock)

	h, err := svc.Water(context.Background(), timeseries.Range24h)
	if err != nil {
		t.Fatalf("Water: %v", err)
	}
	if h.Points == nil || len(h.Points) != 0 {
		t.Fatalf("expected empty non-nil points, got %#v", h.Points)
	}
	if h.PH.Current != 0 || h.Ammonia.Average != 0 || h.Status != timeseries.StatusCheck {
		t.Fatalf("empty range: %+v", h)
	}
}

func TestHistoryService_SQLiteSourcePassesLowerBound(t *testing.T) {
	t.Parallel()

	temps := &fakeTempRepo{points: []models.TemperaturePoint{{Timestamp: testNow.Add(-time.Hour), Value: 73}}}
	water := &fakeWaterRepo{err: errors.New("locked")}
	repos := &repository.Repository{Temperature: temps, Water: water}
	svc := NewHistoryService(NewHistorySource(config.HistorySourceSQLite, models.Snapshot{}, repos), fixedClock)

	h, err := svc.Temperature(context.Background(), timeseries.Range24h)
	if err != nil {
		t.Fatalf("Temperature: %v", err)
	}
	if !temps.gotFrom.Equal(testNow.Add(-24*time.Hour)) || !temps.gotTo.IsZero() {
		t.Fatalf("bounds: from=%v to=%v", temps.gotFrom, temps.gotTo)
	}
	if h.Summary.Current != 73 {
		t.Fatalf("summary: %+v", h.Summary)
	}

	if _, err := svc.Temperature(context.Background(), timeseries.RangeAll); err != nil || !temps.gotFrom.IsZero() {
		t.Fatalf("all range should be unbounded, from=%v err=%v", temps.gotFrom, err)
	}

	if _, err := svc.Water(context.Background(), timeseries.Range7d); !errors.Is(err, water.err) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
