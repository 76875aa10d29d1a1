package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shelldon/internal/models"
	"shelldon/internal/repository"

	"github.com/google/uuid"
)

type CareLogService struct {
	eventRepo repository.CareEventRepo
	now       func() time.Time
}

func NewCareLogService(eventRepo repository.CareEventRepo, now func() time.Time) *CareLogService {
	if now == nil {
		now = time.Now
	}
	return &CareLogService{eventRepo: eventRepo, now: now}
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeEventType trims spaces and uppercases the event type.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeRange converts both bounds to UTC and rejects from > to.
func normalizeRange(from, to time.Time) (time.Time, time.Time, error) {
	from, to = normalizeToUTC(from), normalizeToUTC(to)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, ErrInvalidTimeRange
	}
	return from, to, nil
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f LogFilter) (time.Time, time.Time, string, error) {
	from, to, err := normalizeRange(f.From, f.To)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	return from, to, normalizeEventType(f.Type), nil
}

func (s *CareLogService) List(ctx context.Context, f LogFilter) ([]models.CareEvent, error) {
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, from, to, typ)
}

// Record validates e, fills id and time, and appends it to the log.
func (s *CareLogService) Record(ctx context.Context, e models.CareEvent) (models.CareEvent, error) {
	e.Type = normalizeEventType(e.Type)
	if !models.IsCareType(e.Type) {
		return models.CareEvent{}, fmt.Errorf("%w: unknown type %q", ErrInvalidCareEvent, e.Type)
	}
	e.Description = strings.TrimSpace(e.Description)
	if e.Description == "" {
		return models.CareEvent{}, fmt.Errorf("%w: description is required", ErrInvalidCareEvent)
	}
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = s.now()
	}
	e.OccurredAt = e.OccurredAt.UTC()

	if err := s.eventRepo.Append(ctx, e); err != nil {
		return models.CareEvent{}, err
	}
	return e, nil
}
