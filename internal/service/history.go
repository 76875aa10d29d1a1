package service

import (
	"context"
	"fmt"
	"time"

	"shelldon/internal/config"
	"shelldon/internal/models"
	"shelldon/internal/repository"
	"shelldon/internal/timeseries"
)

// HistorySource supplies the raw series. since is a lower bound hint; a zero
// value asks for everything.
type HistorySource interface {
	Temperature(ctx context.Context, since time.Time) ([]models.TemperaturePoint, error)
	Water(ctx context.Context, since time.Time) ([]models.WaterQualityPoint, error)
}

// NewHistorySource picks the snapshot or the sqlite readings as the series source.
func NewHistorySource(kind string, snap models.Snapshot, repos *repository.Repository) HistorySource {
	if kind == config.HistorySourceSQLite && repos != nil {
		return &storeSource{temps: repos.Temperature, water: repos.Water}
	}
	return &snapshotSource{snap: snap}
}

type snapshotSource struct {
	snap models.Snapshot
}

func (s *snapshotSource) Temperature(context.Context, time.Time) ([]models.TemperaturePoint, error) {
	return s.snap.Temperature.History, nil
}

func (s *snapshotSource) Water(context.Context, time.Time) ([]models.WaterQualityPoint, error) {
	return s.snap.WaterQuality.History, nil
}

type storeSource struct {
	temps repository.TemperatureRepo
	water repository.WaterRepo
}

func (s *storeSource) Temperature(ctx context.Context, since time.Time) ([]models.TemperaturePoint, error) {
	return s.temps.List(ctx, since, time.Time{})
}

func (s *storeSource) Water(ctx context.Context, since time.Time) ([]models.WaterQualityPoint, error) {
	return s.water.List(ctx, since, time.Time{})
}

// TemperatureHistory is the temperature modal content for one range.
type TemperatureHistory struct {
	Range   timeseries.Range          `json:"range"`
	Points  []models.TemperaturePoint `json:"points"`
	Summary timeseries.Summary        `json:"summary"`
	Optimal timeseries.Band           `json:"optimal"`
	Domain  timeseries.Band           `json:"domain"`
}

// WaterHistory is the water quality modal content for one range. Status is
// derived from the last filtered point; an empty range reads as pH 0,
// ammonia 0 and is therefore Check.
type WaterHistory struct {
	Range        timeseries.Range           `json:"range"`
	Points       []models.WaterQualityPoint `json:"points"`
	PH           timeseries.Summary         `json:"ph"`
	Ammonia      timeseries.Summary         `json:"ammonia"`
	Status       timeseries.Status          `json:"status"`
	PHBand       timeseries.Band            `json:"phBand"`
	AmmoniaAlert float64                    `json:"ammoniaAlert"`
}

type HistoryService struct {
	source HistorySource
	now    func() time.Time
}

func NewHistoryService(source HistorySource, now func() time.Time) *HistoryService {
	if now == nil {
		now = time.Now
	}
	return &HistoryService{source: source, now: now}
}

// since returns the lower bound handed to the source for r.
func since(r timeseries.Range, now time.Time) time.Time {
	window, bounded := r.Window()
	if !bounded {
		return time.Time{}
	}
	return now.Add(-window)
}

func (s *HistoryService) Temperature(ctx context.Context, r timeseries.Range) (TemperatureHistory, error) {
	now := s.now()
	all, err := s.source.Temperature(ctx, since(r, now))
	if err != nil {
		return TemperatureHistory{}, fmt.Errorf("load temperature history: %w", err)
	}
	points := timeseries.Filter(all, r, now)
	return TemperatureHistory{
		Range:   r,
		Points:  points,
		Summary: timeseries.Summarize(points, func(p models.TemperaturePoint) float64 { return p.Value }),
		Optimal: timeseries.TemperatureOptimal,
		Domain:  timeseries.TemperatureDomain,
	}, nil
}

func (s *HistoryService) Water(ctx context.Context, r timeseries.Range) (WaterHistory, error) {
	now := s.now()
	all, err := s.source.Water(ctx, since(r, now))
	if err != nil {
		return WaterHistory{}, fmt.Errorf("load water history: %w", err)
	}
	points := timeseries.Filter(all, r, now)
	ph := timeseries.Summarize(points, func(p models.WaterQualityPoint) float64 { return p.PH })
	ammonia := timeseries.Summarize(points, func(p models.WaterQualityPoint) float64 { return p.Ammonia })
	return WaterHistory{
		Range:        r,
		Points:       points,
		PH:           ph,
		Ammonia:      ammonia,
		Status:       timeseries.WaterStatus(ph.Current, ammonia.Current),
		PHBand:       timeseries.PHBand,
		AmmoniaAlert: timeseries.AmmoniaAlert,
	}, nil
}
