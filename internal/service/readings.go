package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"shelldon/internal/models"
	"shelldon/internal/repository"
)

// Plausible sensor bounds. Anything outside is a broken probe.
const (
	minTemperatureF = 32.0
	maxTemperatureF = 120.0
	maxPH           = 14.0
)

type ReadingsService struct {
	temps repository.TemperatureRepo
	water repository.WaterRepo
	now   func() time.Time
}

func NewReadingsService(temps repository.TemperatureRepo, water repository.WaterRepo, now func() time.Time) *ReadingsService {
	if now == nil {
		now = time.Now
	}
	return &ReadingsService{temps: temps, water: water, now: now}
}

// RecordTemperature validates and stores p. A zero timestamp means now.
func (s *ReadingsService) RecordTemperature(ctx context.Context, p models.TemperaturePoint) (models.TemperaturePoint, error) {
	if err := validateTemperature(p.Value); err != nil {
		return models.TemperaturePoint{}, err
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = s.now().UTC()
	}
	return s.temps.Append(ctx, p)
}

// RecordWater validates and stores p. A zero timestamp means now.
func (s *ReadingsService) RecordWater(ctx context.Context, p models.WaterQualityPoint) (models.WaterQualityPoint, error) {
	if err := validateWater(p.PH, p.Ammonia); err != nil {
		return models.WaterQualityPoint{}, err
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = s.now().UTC()
	}
	return s.water.Append(ctx, p)
}

func (s *ReadingsService) ListTemperature(ctx context.Context, from, to time.Time) ([]models.TemperaturePoint, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, err
	}
	return s.temps.List(ctx, from, to)
}

func (s *ReadingsService) ListWater(ctx context.Context, from, to time.Time) ([]models.WaterQualityPoint, error) {
	from, to, err := normalizeRange(from, to)
	if err != nil {
		return nil, err
	}
	return s.water.List(ctx, from, to)
}

func validateTemperature(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < minTemperatureF || v > maxTemperatureF {
		return fmt.Errorf("%w: temperature %v°F outside [%v, %v]", ErrInvalidReading, v, minTemperatureF, maxTemperatureF)
	}
	return nil
}

func validateWater(ph, ammonia float64) error {
	if math.IsNaN(ph) || ph < 0 || ph > maxPH {
		return fmt.Errorf("%w: pH %v outside [0, %v]", ErrInvalidReading, ph, maxPH)
	}
	if math.IsNaN(ammonia) || math.IsInf(ammonia, 0) || ammonia < 0 {
		return fmt.Errorf("%w: ammonia %v must be >= 0", ErrInvalidReading, ammonia)
	}
	return nil
}
