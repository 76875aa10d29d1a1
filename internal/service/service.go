package service

import (
	"context"
	"time"

	"shelldon/internal/config"
	"shelldon/internal/logger"
	"shelldon/internal/models"
	"shelldon/internal/repository"
	"shelldon/internal/timeseries"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Dashboard exposes the page view derived from the snapshot.
type Dashboard interface {
	View(ctx context.Context) (DashboardView, error)
}

// History exposes the filtered series and statistics behind the modals.
type History interface {
	Temperature(ctx context.Context, r timeseries.Range) (TemperatureHistory, error)
	Water(ctx context.Context, r timeseries.Range) (WaterHistory, error)
}

// Charts renders history as SVG.
type Charts interface {
	TemperatureChart(ctx context.Context, r timeseries.Range) ([]byte, error)
	WaterChart(ctx context.Context, r timeseries.Range) ([]byte, error)
}

// Readings records and lists persisted sensor readings.
type Readings interface {
	RecordTemperature(ctx context.Context, p models.TemperaturePoint) (models.TemperaturePoint, error)
	RecordWater(ctx context.Context, p models.WaterQualityPoint) (models.WaterQualityPoint, error)
	ListTemperature(ctx context.Context, from, to time.Time) ([]models.TemperaturePoint, error)
	ListWater(ctx context.Context, from, to time.Time) ([]models.WaterQualityPoint, error)
}

// CareLog exposes the append-only care log with filtering access.
type CareLog interface {
	List(ctx context.Context, f LogFilter) ([]models.CareEvent, error)
	Record(ctx context.Context, e models.CareEvent) (models.CareEvent, error)
}

// Warmer runs the background loop that re-renders cached charts.
// Stop via context cancellation for graceful shutdown.
type Warmer interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Authorization
	Dashboard
	History
	Charts
	Readings
	CareLog
	Warmer
}

// Options carries everything besides storage that the services need.
type Options struct {
	Snapshot models.Snapshot
	Config   *config.Config
	Log      *logger.Logger
	Now      func() time.Time // defaults to time.Now
}

func NewService(repos *repository.Repository, opts Options) *Service {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{History: config.HistoryConfig{Source: config.HistorySourceFixture}}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	source := NewHistorySource(cfg.History.Source, opts.Snapshot, repos)
	history := NewHistoryService(source, now)
	charts := NewChartService(history, cfg.Charts, now)

	return &Service{
		Authorization: NewAuthService(repos.Auth, cfg.Auth, opts.Log),
		Dashboard:     NewDashboardService(opts.Snapshot, repos.CareEvents, cfg.Stream, opts.Log, now),
		History:       history,
		Charts:        charts,
		Readings:      NewReadingsService(repos.Temperature, repos.Water, now),
		CareLog:       NewCareLogService(repos.CareEvents, now),
		Warmer:        NewChartWarmer(charts, opts.Log),
	}
}
