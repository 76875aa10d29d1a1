package repository

import (
	"context"
	"database/sql"
	"time"

	"shelldon/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.Caretaker, error)
}

// TemperatureRepo stores temperature readings. List bounds are inclusive;
// a zero bound is open.
type TemperatureRepo interface {
	Append(ctx context.Context, p models.TemperaturePoint) (models.TemperaturePoint, error)
	List(ctx context.Context, from, to time.Time) ([]models.TemperaturePoint, error)
}

// WaterRepo stores water quality readings.
type WaterRepo interface {
	Append(ctx context.Context, p models.WaterQualityPoint) (models.WaterQualityPoint, error)
	List(ctx context.Context, from, to time.Time) ([]models.WaterQualityPoint, error)
}

// CareEventRepo is the append-only care log.
type CareEventRepo interface {
	Append(ctx context.Context, e models.CareEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.CareEvent, error)
	Latest(ctx context.Context, typ string) (*models.CareEvent, error)
}

type Repository struct {
	Temperature TemperatureRepo
	Water       WaterRepo
	CareEvents  CareEventRepo
	Auth        Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Temperature: NewTemperatureSQLite(db),
		Water:       NewWaterSQLite(db),
		CareEvents:  NewCareEventSQLite(db),
		Auth:        NewCaretakerRepository(db),
	}
}

// rangeClause builds the WHERE fragment for an inclusive [from, to] filter
// on column. Zero bounds are skipped.
func rangeClause(column string, from, to time.Time) ([]string, []any) {
	var (
		conds []string
		args  []any
	)
	if !from.IsZero() {
		conds = append(conds, column+" >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, column+" <= ?")
		args = append(args, to.UTC())
	}
	return conds, args
}
