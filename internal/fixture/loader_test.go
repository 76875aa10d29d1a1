package fixture

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"shelldon/internal/config"
	"shelldon/internal/logger"
)

var loadTime = time.Date(2026, 2, 10, 18, 0, 0, 0, time.UTC)

func writeFixture(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return p
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.FixtureConfig{Path: filepath.Join(t.TempDir(), "nope.json")}
	snap := Load(context.Background(), cfg, logger.Nop(), loadTime)

	if !snap.Fallback {
		t.Fatalf("expected Fallback=true")
	}
	if snap.Temperature.Current != 71.1 {
		t.Errorf("temperature: want 71.1, got %v", snap.Temperature.Current)
	}
	if snap.DaysInHabitat != 3 {
		t.Errorf("daysInHabitat: want 3, got %d", snap.DaysInHabitat)
	}
	if snap.LastFed.HoursAgo != -1 {
		t.Errorf("lastFed.hoursAgo: want -1, got %d", snap.LastFed.HoursAgo)
	}
	if snap.WaterQuality.Status != "Safe" {
		t.Errorf("water status: want Safe, got %q", snap.WaterQuality.Status)
	}
	if snap.Temperature.History == nil || len(snap.Temperature.History) != 0 {
		t.Errorf("expected empty non-nil history, got %#v", snap.Temperature.History)
	}
	if !snap.LoadedAt.Equal(loadTime) {
		t.Errorf("LoadedAt: want %v, got %v", loadTime, snap.LoadedAt)
	}
}

func TestLoad_NoSourceConfigured(t *testing.T) {
	t.Parallel()

	snap := Load(context.Background(), config.FixtureConfig{}, nil, loadTime)
	if !snap.Fallback {
		t.Fatalf("expected fallback without a source")
	}
}

func TestLoad_InvalidJSONFallsBack(t *testing.T) {
	t.Parallel()

	p := writeFixture(t, "bad.json", `{"temperature": `)
	snap := Load(context.Background(), config.FixtureConfig{Path: p}, logger.Nop(), loadTime)
	if !snap.Fallback || snap.Temperature.Current != DefaultTemperature {
		t.Fatalf("expected defaults on parse failure, got %+v", snap)
	}
}

func TestLoad_JSONAppliesFieldDefaults(t *testing.T) {
	t.Parallel()

	p := writeFixture(t, "status.json", `{
		"temperature": {"current": 72.4, "history": [
			{"timestamp": "2026-02-10T09:54:00-06:00", "value": 71.2},
			{"timestamp": "not a time", "value": 99},
			{"timestamp": "2026-02-10T16:46:00-06:00", "value": 71.6}
		]},
		"waterQuality": {"ph": 6.9},
		"lastFed": {"hoursAgo": 5, "food": "shrimp pellet"},
		"donations": {"current": 25, "goal": 100}
	}`)
	snap := Load(context.Background(), config.FixtureConfig{Path: p}, logger.Nop(), loadTime)

	if snap.Fallback {
		t.Fatalf("unexpected fallback")
	}
	if snap.Temperature.Current != 72.4 {
		t.Errorf("temperature: got %v", snap.Temperature.Current)
	}
	if got := len(snap.Temperature.History); got != 2 {
		t.Fatalf("malformed point should be dropped, got %d points", got)
	}
	if snap.Temperature.History[1].Value != 71.6 {
		t.Errorf("order not preserved: %+v", snap.Temperature.History)
	}
	if snap.WaterQuality.PH != 6.9 || snap.WaterQuality.Ammonia != DefaultAmmonia || snap.WaterQuality.Status != DefaultWaterStatus {
		t.Errorf("water defaults not applied: %+v", snap.WaterQuality)
	}
	if snap.DaysInHabitat != DefaultDaysInHabitat {
		t.Errorf("daysInHabitat default: got %d", snap.DaysInHabitat)
	}
	if snap.LastFed.HoursAgo != 5 || snap.LastFed.Food != "shrimp pellet" {
		t.Errorf("lastFed: got %+v", snap.LastFed)
	}
	if snap.Donations.Percentage != 25 {
		t.Errorf("derived percentage: want 25, got %v", snap.Donations.Percentage)
	}
	if snap.Uptime != DefaultUptime || len(snap.Timeline) == 0 {
		t.Errorf("uptime/timeline defaults not applied")
	}
	if snap.Source != p {
		t.Errorf("source: want %q, got %q", p, snap.Source)
	}
}

func TestLoad_ExplicitZeroIsNotDefaulted(t *testing.T) {
	t.Parallel()

	p := writeFixture(t, "zero.json", `{"daysInHabitat": 0, "lastFed": {"hoursAgo": 0}, "donations": {"percentage": 0, "goal": 50, "current": 10}}`)
	snap := Load(context.Background(), config.FixtureConfig{Path: p}, nil, loadTime)

	if snap.DaysInHabitat != 0 || snap.LastFed.HoursAgo != 0 {
		t.Fatalf("explicit zeros overwritten: %+v", snap)
	}
	if snap.Donations.Percentage != 0 {
		t.Fatalf("explicit percentage should win, got %v", snap.Donations.Percentage)
	}
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	p := writeFixture(t, "status.yaml", `
temperature:
  current: 73.0
  history:
    - timestamp: "2026-02-09T09:00:00-06:00"
      value: 74.0
waterQuality:
  ph: 7.1
  ammonia: 0.03
  status: Check
  history:
    - timestamp: "2026-02-09T09:00:00-06:00"
      ph: 7.1
      ammonia: 0.03
daysInHabitat: 4
activity:
  status: Hiding
`)
	snap := Load(context.Background(), config.FixtureConfig{Path: p}, nil, loadTime)

	if snap.Fallback {
		t.Fatalf("unexpected fallback")
	}
	if snap.Temperature.Current != 73 || len(snap.Temperature.History) != 1 {
		t.Errorf("temperature: %+v", snap.Temperature)
	}
	if snap.WaterQuality.Status != "Check" || len(snap.WaterQuality.History) != 1 {
		t.Errorf("water: %+v", snap.WaterQuality)
	}
	if snap.Activity.Status != "Hiding" || snap.Activity.Level != DefaultActivityLevel {
		t.Errorf("activity: %+v", snap.Activity)
	}
	if snap.DaysInHabitat != 4 {
		t.Errorf("daysInHabitat: %d", snap.DaysInHabitat)
	}
}

func TestLoad_URL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/status.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"temperature": {"current": 75.5}, "uptime": 99.5}`))
		case "/status":
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write([]byte("daysInHabitat: 9\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	snap := Load(context.Background(), config.FixtureConfig{URL: srv.URL + "/status.json", Timeout: time.Second}, nil, loadTime)
	if snap.Fallback || snap.Temperature.Current != 75.5 || snap.Uptime != 99.5 {
		t.Fatalf("unexpected snapshot from json url: %+v", snap)
	}

	snap = Load(context.Background(), config.FixtureConfig{URL: srv.URL + "/status"}, nil, loadTime)
	if snap.Fallback || snap.DaysInHabitat != 9 {
		t.Fatalf("unexpected snapshot from yaml url: %+v", snap)
	}

	snap = Load(context.Background(), config.FixtureConfig{URL: srv.URL + "/missing.json"}, nil, loadTime)
	if !snap.Fallback {
		t.Fatalf("expected fallback on 404")
	}
}

func TestFormatFromName(t *testing.T) {
	t.Parallel()

	cases := map[string]format{
		"a.json": formatJSON,
		"a.YAML": formatYAML,
		"a.yml":  formatYAML,
		"noext":  formatJSON,
	}
	for name, want := range cases {
		if got := formatFromName(name); got != want {
			t.Errorf("formatFromName(%q) = %v, want %v", name, got, want)
		}
	}
}
