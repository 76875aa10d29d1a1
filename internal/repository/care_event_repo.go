package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"shelldon/internal/models"

	"github.com/google/uuid"
)

const (
	insertCareEventSQL = `
		INSERT INTO care_events (id, occurred_at, type, message, meta)
		VALUES (?, ?, ?, ?, ?)
	`
	selectCareEventsSQL = `SELECT id, occurred_at, type, message, meta FROM care_events`
	latestCareEventSQL  = selectCareEventsSQL + ` WHERE type = ? ORDER BY occurred_at DESC LIMIT 1`
)

type CareEventSQLite struct {
	db *sql.DB
}

func NewCareEventSQLite(db *sql.DB) *CareEventSQLite { return &CareEventSQLite{db: db} }

var _ CareEventRepo = (*CareEventSQLite)(nil)

func normalizeCareType(typ string) string {
	return strings.ToUpper(strings.TrimSpace(typ))
}

// Append inserts a new event. If EventID or OccurredAt are empty, they're set.
func (r *CareEventSQLite) Append(ctx context.Context, e models.CareEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	var metaPtr *string
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, insertCareEventSQL,
		e.EventID,
		e.OccurredAt,
		normalizeCareType(e.Type),
		e.Description,
		metaPtr,
	)
	if err != nil {
		return fmt.Errorf("insert care event: %w", err)
	}
	return nil
}

// List returns events filtered by [from, to] (inclusive) and/or type, ordered ASC.
func (r *CareEventSQLite) List(ctx context.Context, from, to time.Time, typ string) ([]models.CareEvent, error) {
	conds, args := rangeClause("occurred_at", from, to)
	if typ = normalizeCareType(typ); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	q := selectCareEventsSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select care events: %w", err)
	}
	defer rows.Close()

	out := make([]models.CareEvent, 0, 64)
	for rows.Next() {
		ev, err := scanCareEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Latest returns the most recent event of the given type, or nil if none.
func (r *CareEventSQLite) Latest(ctx context.Context, typ string) (*models.CareEvent, error) {
	row := r.db.QueryRowContext(ctx, latestCareEventSQL, normalizeCareType(typ))
	ev, err := scanCareEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ev, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCareEvent(s scanner) (models.CareEvent, error) {
	var (
		ev      models.CareEvent
		metaStr sql.NullString
	)
	if err := s.Scan(&ev.EventID, &ev.OccurredAt, &ev.Type, &ev.Description, &metaStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CareEvent{}, err
		}
		return models.CareEvent{}, fmt.Errorf("scan care event: %w", err)
	}
	ev.OccurredAt = ev.OccurredAt.UTC()

	if metaStr.Valid && metaStr.String != "" {
		var v any
		if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
			ev.Metadata = v
		} else {
			ev.Metadata = metaStr.String // keep raw if malformed
		}
	}
	return ev, nil
}
