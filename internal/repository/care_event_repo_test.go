package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"shelldon/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var careEventColumns = []string{"id", "occurred_at", "type", "message", "meta"}

func TestCareEventAppend_FillsDefaults(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewCareEventSQLite(db)

	mock.ExpectExec(regexp.QuoteMeta(insertCareEventSQL)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), models.CareFeeding, "one shrimp pellet", `{"food":"pellet"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(context.Background(), models.CareEvent{
		Type:        "  feeding ",
		Description: "one shrimp pellet",
		Metadata:    map[string]string{"food": "pellet"},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
}

func TestCareEventAppend_DBError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewCareEventSQLite(db)

	mock.ExpectExec("INSERT INTO care_events").WillReturnError(errors.New("down"))

	err := repo.Append(context.Background(), models.CareEvent{Type: "note", Description: "x"})
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestCareEventList_NoFilters(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewCareEventSQLite(db)

	at := time.Date(2026, 2, 10, 16, 0, 0, 0, time.UTC)
	meta, _ := json.Marshal(map[string]any{"food": "pellet"})
	rows := sqlmock.NewRows(careEventColumns).
		AddRow("e1", at, models.CareFeeding, "fed", string(meta)).
		AddRow("e2", at.Add(time.Hour), models.CareNote, "molted?", "not json").
		AddRow("e3", at.Add(2*time.Hour), models.CareMilestone, "moved in", nil)

	mock.ExpectQuery(regexp.QuoteMeta(selectCareEventsSQL + " ORDER BY occurred_at ASC")).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 events, got %d", len(got))
	}
	if m, ok := got[0].Metadata.(map[string]any); !ok || m["food"] != "pellet" {
		t.Errorf("metadata not decoded: %#v", got[0].Metadata)
	}
	if s, ok := got[1].Metadata.(string); !ok || s != "not json" {
		t.Errorf("malformed metadata should be kept raw, got %#v", got[1].Metadata)
	}
	if got[2].Metadata != nil {
		t.Errorf("null metadata should stay nil, got %#v", got[2].Metadata)
	}
}

func TestCareEventList_WithFilters(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewCareEventSQLite(db)

	from := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	to := from.Add(48 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(selectCareEventsSQL+
		" WHERE occurred_at >= ? AND occurred_at <= ? AND type = ? ORDER BY occurred_at ASC")).
		WithArgs(from, to, models.CareFeeding).
		WillReturnRows(sqlmock.NewRows(careEventColumns))

	got, err := repo.List(context.Background(), from, to, "feeding")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestCareEventList_QueryError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewCareEventSQLite(db)

	mock.ExpectQuery("SELECT id, occurred_at").WillReturnError(errors.New("boom"))

	if _, err := repo.List(context.Background(), time.Time{}, time.Time{}, ""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestCareEventLatest(t *testing.T) {
	at := time.Date(2026, 2, 10, 16, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expect  func(sqlmock.Sqlmock)
		wantNil bool
		wantErr bool
	}{
		{
			name: "found",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(latestCareEventSQL)).
					WithArgs(models.CareFeeding).
					WillReturnRows(sqlmock.NewRows(careEventColumns).
						AddRow("e9", at, models.CareFeeding, "fed", nil))
			},
		},
		{
			name: "none",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(latestCareEventSQL)).
					WithArgs(models.CareFeeding).
					WillReturnError(sql.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name: "error",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(latestCareEventSQL)).
					WithArgs(models.CareFeeding).
					WillReturnError(errors.New("locked"))
			},
			wantNil: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()
			repo := NewCareEventSQLite(db)
			tt.expect(mock)

			ev, err := repo.Latest(context.Background(), "feeding")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if (ev == nil) != tt.wantNil {
				t.Fatalf("event = %+v, wantNil %v", ev, tt.wantNil)
			}
			if ev != nil && (!ev.OccurredAt.Equal(at) || ev.EventID != "e9") {
				t.Fatalf("unexpected event: %+v", ev)
			}
		})
	}
}
