package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shelldon/internal/models"
	"shelldon/internal/service"
)

func TestLogsHandler_ListAndValidation(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	events := []models.CareEvent{
		{EventID: "e1", OccurredAt: now, Type: models.CareFeeding, Description: "shrimp pellet"},
		{EventID: "e2", OccurredAt: now.Add(1 * time.Second), Type: models.CareWaterChange, Description: "25% change"},
	}
	logs := &mockCareLog{resp: events}
	r := newTestRouter(&service.Service{CareLog: logs})

	// invalid 'from' → 400
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/logs?from=notatime", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid 'from', got %d", w.Code)
	}

	// Valid range and type (lowercase type should be normalized to upper in service call)
	w = httptest.NewRecorder()
	q := "/api/v1/logs?from=" + now.Format(time.RFC3339) + "&to=" + now.Add(2*time.Second).Format(time.RFC3339) + "&type=water_change"
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, q, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("logs status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int                `json:"count"`
		Events []models.CareEvent `json:"events"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Events) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if logs.lastType != models.CareWaterChange {
		t.Fatalf("expected lastType WATER_CHANGE, got %q", logs.lastType)
	}
	if !logs.lastFrom.Equal(now) {
		t.Fatalf("lastFrom=%v, want %v", logs.lastFrom, now)
	}
}

func TestLogsHandler_RangeRules(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		wantCode int
		wantTo   time.Time
	}{
		{"date-only to is end of day", "?to=2026-02-10", http.StatusOK, time.Date(2026, 2, 10, 23, 59, 59, 999999999, time.UTC)},
		{"datetime to kept", "?to=2026-02-10%2012:00:00", http.StatusOK, time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)},
		{"from after to", "?from=2026-02-11&to=2026-02-10T00:00:00Z", http.StatusBadRequest, time.Time{}},
		{"bad to", "?to=yesterday", http.StatusBadRequest, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logs := &mockCareLog{}
			r := newTestRouter(&service.Service{CareLog: logs})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/logs"+tc.query, nil))
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.wantCode, w.Body.String())
			}
			if tc.wantCode == http.StatusOK && !logs.lastTo.Equal(tc.wantTo) {
				t.Fatalf("lastTo=%v, want %v", logs.lastTo, tc.wantTo)
			}
		})
	}
}

func TestLogsHandler_ServiceErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid range", service.ErrInvalidTimeRange, http.StatusBadRequest},
		{"storage failure", errors.New("disk gone"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{CareLog: &mockCareLog{err: tc.err}})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/logs", nil))
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d", w.Code, tc.want)
			}
		})
	}
}

func postLogRequest(body string, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/logs", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}

func TestLogsHandler_PostRequiresToken(t *testing.T) {
	logs := &mockCareLog{}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 7}, CareLog: logs})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, postLogRequest(`{"type":"FEEDING","description":"pellet"}`, ""))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", w.Code)
	}
	if len(logs.recorded) != 0 {
		t.Fatalf("unauthorized request reached the service")
	}
}

func TestLogsHandler_PostCreates(t *testing.T) {
	logs := &mockCareLog{}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 7}, CareLog: logs})

	w := httptest.NewRecorder()
	body := `{"type":"feeding","description":"One shrimp pellet","occurred_at":"2026-02-10T18:30:00-06:00","metadata":{"food":"pellet"}}`
	r.ServeHTTP(w, postLogRequest(body, "good"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if len(logs.recorded) != 1 {
		t.Fatalf("recorded=%d, want 1", len(logs.recorded))
	}
	got := logs.recorded[0]
	if !got.OccurredAt.Equal(time.Date(2026, 2, 11, 0, 30, 0, 0, time.UTC)) {
		t.Fatalf("occurred_at=%v", got.OccurredAt)
	}
	meta, ok := got.Metadata.(map[string]any)
	if !ok || meta["food"] != "pellet" || meta["caretaker_id"] != 7 {
		t.Fatalf("metadata=%#v", got.Metadata)
	}

	var saved models.CareEvent
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if saved.EventID != "evt-1" {
		t.Fatalf("event_id=%q", saved.EventID)
	}
}

func TestLogsHandler_PostErrors(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		recordErr error
		want      int
	}{
		{"missing description", `{"type":"NOTE"}`, nil, http.StatusBadRequest},
		{"bad occurred_at", `{"type":"NOTE","description":"x","occurred_at":"later"}`, nil, http.StatusBadRequest},
		{"rejected by service", `{"type":"DANCE","description":"x"}`, service.ErrInvalidCareEvent, http.StatusBadRequest},
		{"storage failure", `{"type":"NOTE","description":"x"}`, errors.New("locked"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logs := &mockCareLog{recordErr: tc.recordErr}
			r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, CareLog: logs})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, postLogRequest(tc.body, "good"))
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.want, w.Body.String())
			}
		})
	}
}
