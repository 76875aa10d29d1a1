package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWhenNoConfigFound(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != defaultPort {
		t.Errorf("Port: want %q, got %q", defaultPort, cfg.Port)
	}
	if cfg.History.Source != HistorySourceFixture {
		t.Errorf("History.Source: want %q, got %q", HistorySourceFixture, cfg.History.Source)
	}
	if cfg.Fixture.Timeout != defaultFixtureTO {
		t.Errorf("Fixture.Timeout: want %v, got %v", defaultFixtureTO, cfg.Fixture.Timeout)
	}
	if cfg.DB.Path == "" {
		t.Errorf("DB.Path must have a default")
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yml")
	_, err := Load(missing)
	if err == nil {
		t.Fatalf("expected error for missing --config file")
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
port: "9090"
log:
  level: debug
fixture:
  path: data/status.yaml
  timeout: 2s
history:
  source: sqlite
charts:
  cache_ttl: 30s
stream:
  channel: crayfishcam
  parents: [example.org, www.example.org]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Log.Level != "debug" {
		t.Errorf("unexpected port/log: %+v %+v", cfg.Port, cfg.Log)
	}
	if cfg.Fixture.Path != "data/status.yaml" || cfg.Fixture.Timeout != 2*time.Second {
		t.Errorf("unexpected fixture config: %+v", cfg.Fixture)
	}
	if cfg.History.Source != HistorySourceSQLite {
		t.Errorf("History.Source: got %q", cfg.History.Source)
	}
	if cfg.Charts.CacheTTL != 30*time.Second || cfg.Charts.Width != defaultChartWidth {
		t.Errorf("unexpected charts config: %+v", cfg.Charts)
	}
	if len(cfg.Stream.Parents) != 2 {
		t.Errorf("Stream.Parents: got %v", cfg.Stream.Parents)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "port: \"9090\"\n")
	t.Setenv("SHELLDON_PORT", "7000")
	t.Setenv("SHELLDON_DB_PATH", "/tmp/override.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "7000" {
		t.Errorf("Port: want env override 7000, got %q", cfg.Port)
	}
	if cfg.DB.Path != "/tmp/override.db" {
		t.Errorf("DB.Path: want env override, got %q", cfg.DB.Path)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		errPart string
	}{
		{name: "history source", body: "history:\n  source: redis\n", errPart: "history.source"},
		{name: "mqtt without broker", body: "mqtt:\n  enabled: true\n", errPart: "mqtt.broker"},
		{name: "negative rate", body: "ratelimit:\n  rps: -1\n", errPart: "ratelimit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.errPart) {
				t.Fatalf("expected error containing %q, got %v", tt.errPart, err)
			}
		})
	}
}

func TestStreamConfig_URLs(t *testing.T) {
	s := StreamConfig{Channel: "shelldonlive", Parents: []string{"shelldon.live", "localhost"}}
	want := "https://player.twitch.tv/?channel=shelldonlive&parent=shelldon.live&parent=localhost&muted=false"
	if got := s.StreamEmbedURL(); got != want {
		t.Fatalf("StreamEmbedURL:\n got %s\nwant %s", got, want)
	}
	if got := s.ChannelURL(); got != "https://twitch.tv/shelldonlive" {
		t.Fatalf("ChannelURL: got %s", got)
	}
}
