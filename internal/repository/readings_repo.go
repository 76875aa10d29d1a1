package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shelldon/internal/models"

	"github.com/google/uuid"
)

const (
	insertTemperatureSQL = `
		INSERT INTO temperature_readings (id, recorded_at, value)
		VALUES (?, ?, ?)
		ON CONFLICT(recorded_at) DO NOTHING
	`
	selectTemperatureSQL = `SELECT id, recorded_at, value FROM temperature_readings`

	insertWaterSQL = `
		INSERT INTO water_readings (id, recorded_at, ph, ammonia)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(recorded_at) DO NOTHING
	`
	selectWaterSQL = `SELECT id, recorded_at, ph, ammonia FROM water_readings`

	orderByRecordedAt = " ORDER BY recorded_at ASC"
)

// ErrDuplicateReading means a reading with the same timestamp is already stored.
var ErrDuplicateReading = errors.New("reading already recorded at this timestamp")

// insertedOrDuplicate turns an insert that touched no rows into ErrDuplicateReading.
func insertedOrDuplicate(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrDuplicateReading
	}
	return nil
}

// stampReading fills a missing id and normalizes the timestamp to UTC.
func stampReading(id string, ts time.Time) (string, time.Time) {
	if id == "" {
		id = uuid.NewString()
	}
	if ts.IsZero() {
		return id, time.Now().UTC()
	}
	return id, ts.UTC()
}

func listQuery(base string, from, to time.Time) (string, []any) {
	conds, args := rangeClause("recorded_at", from, to)
	q := base
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	return q + orderByRecordedAt, args
}

type TemperatureSQLite struct {
	db *sql.DB
}

func NewTemperatureSQLite(db *sql.DB) *TemperatureSQLite { return &TemperatureSQLite{db: db} }

var _ TemperatureRepo = (*TemperatureSQLite)(nil)

// Append stores a reading. A reading with the same timestamp as an
// existing one is not stored and yields ErrDuplicateReading.
func (r *TemperatureSQLite) Append(ctx context.Context, p models.TemperaturePoint) (models.TemperaturePoint, error) {
	p.ID, p.Timestamp = stampReading(p.ID, p.Timestamp)
	res, err := r.db.ExecContext(ctx, insertTemperatureSQL, p.ID, p.Timestamp, p.Value)
	if err != nil {
		return models.TemperaturePoint{}, fmt.Errorf("insert temperature reading: %w", err)
	}
	if err := insertedOrDuplicate(res); err != nil {
		return models.TemperaturePoint{}, err
	}
	return p, nil
}

// List returns readings within [from, to] ordered by time ascending.
func (r *TemperatureSQLite) List(ctx context.Context, from, to time.Time) ([]models.TemperaturePoint, error) {
	q, args := listQuery(selectTemperatureSQL, from, to)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select temperature readings: %w", err)
	}
	defer rows.Close()

	out := make([]models.TemperaturePoint, 0, 64)
	for rows.Next() {
		var p models.TemperaturePoint
		if err := rows.Scan(&p.ID, &p.Timestamp, &p.Value); err != nil {
			return nil, fmt.Errorf("scan temperature reading: %w", err)
		}
		p.Timestamp = p.Timestamp.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type WaterSQLite struct {
	db *sql.DB
}

func NewWaterSQLite(db *sql.DB) *WaterSQLite { return &WaterSQLite{db: db} }

var _ WaterRepo = (*WaterSQLite)(nil)

// Append stores a reading or yields ErrDuplicateReading for a taken timestamp.
func (r *WaterSQLite) Append(ctx context.Context, p models.WaterQualityPoint) (models.WaterQualityPoint, error) {
	p.ID, p.Timestamp = stampReading(p.ID, p.Timestamp)
	res, err := r.db.ExecContext(ctx, insertWaterSQL, p.ID, p.Timestamp, p.PH, p.Ammonia)
	if err != nil {
		return models.WaterQualityPoint{}, fmt.Errorf("insert water reading: %w", err)
	}
	if err := insertedOrDuplicate(res); err != nil {
		return models.WaterQualityPoint{}, err
	}
	return p, nil
}

func (r *WaterSQLite) List(ctx context.Context, from, to time.Time) ([]models.WaterQualityPoint, error) {
	q, args := listQuery(selectWaterSQL, from, to)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select water readings: %w", err)
	}
	defer rows.Close()

	out := make([]models.WaterQualityPoint, 0, 64)
	for rows.Next() {
		var p models.WaterQualityPoint
		if err := rows.Scan(&p.ID, &p.Timestamp, &p.PH, &p.Ammonia); err != nil {
			return nil, fmt.Errorf("scan water reading: %w", err)
		}
		p.Timestamp = p.Timestamp.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
