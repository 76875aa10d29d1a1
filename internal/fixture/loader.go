package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"shelldon/internal/config"
	"shelldon/internal/logger"
	"shelldon/internal/models"
	"shelldon/internal/timeseries"

	"gopkg.in/yaml.v3"
)

const maxFixtureBytes = 4 << 20 // 4 MB

var errNoSource = errors.New("fixture: neither path nor url configured")

type format int

const (
	formatJSON format = iota
	formatYAML
)

// Load reads the fixture once and returns the resulting Snapshot. It never
// fails: a fetch or parse error is logged and the defaults are returned
// with Fallback set. There is no retry.
func Load(ctx context.Context, cfg config.FixtureConfig, log *logger.Logger, now time.Time) models.Snapshot {
	source := cfg.URL
	if source == "" {
		source = cfg.Path
	}

	raw, err := fetch(ctx, cfg)
	if err != nil {
		if log != nil {
			log.Errorw("fixture_load_failed", "err", err, "source", source)
		}
		snap := Defaults()
		snap.LoadedAt = now.UTC()
		snap.Source = source
		snap.Fallback = true
		return snap
	}

	snap := build(raw, log)
	snap.LoadedAt = now.UTC()
	snap.Source = source
	if log != nil {
		log.Infow("fixture_loaded", "source", source,
			"temperature_points", len(snap.Temperature.History),
			"water_points", len(snap.WaterQuality.History))
	}
	return snap
}

// fetch reads and decodes the fixture without applying defaults.
func fetch(ctx context.Context, cfg config.FixtureConfig) (*rawSnapshot, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var (
		data []byte
		f    format
		err  error
	)
	switch {
	case cfg.URL != "":
		data, f, err = fetchURL(ctx, cfg.URL)
	case cfg.Path != "":
		data, err = os.ReadFile(cfg.Path)
		if err != nil {
			err = fmt.Errorf("read fixture %q: %w", cfg.Path, err)
		}
		f = formatFromName(cfg.Path)
	default:
		err = errNoSource
	}
	if err != nil {
		return nil, err
	}
	return decode(data, f)
}

func fetchURL(ctx context.Context, url string) ([]byte, format, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, formatJSON, fmt.Errorf("build fixture request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, formatJSON, fmt.Errorf("fetch fixture %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, formatJSON, fmt.Errorf("fetch fixture %q: unexpected status %s", url, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFixtureBytes))
	if err != nil {
		return nil, formatJSON, fmt.Errorf("read fixture body: %w", err)
	}

	f := formatFromName(path.Base(req.URL.Path))
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "yaml") {
		f = formatYAML
	}
	return data, f, nil
}

func formatFromName(name string) format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// decode parses a fixture document.
func decode(data []byte, f format) (*rawSnapshot, error) {
	var raw rawSnapshot
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse fixture yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse fixture json: %w", err)
		}
	}
	return &raw, nil
}

// build applies defaults to every missing field and parses timestamps.
// Points with unparseable timestamps are dropped and logged.
func build(raw *rawSnapshot, log *logger.Logger) models.Snapshot {
	snap := Defaults()
	if raw == nil {
		return snap
	}

	if t := raw.Temperature; t != nil {
		if t.Current != nil {
			snap.Temperature.Current = *t.Current
		}
		snap.Temperature.History = temperatureHistory(t.History, log)
	}

	if w := raw.WaterQuality; w != nil {
		if w.PH != nil {
			snap.WaterQuality.PH = *w.PH
		}
		if w.Ammonia != nil {
			snap.WaterQuality.Ammonia = *w.Ammonia
		}
		if w.Status != nil && strings.TrimSpace(*w.Status) != "" {
			snap.WaterQuality.Status = strings.TrimSpace(*w.Status)
		}
		snap.WaterQuality.History = waterHistory(w.History, log)
	}

	if raw.DaysInHabitat != nil {
		snap.DaysInHabitat = *raw.DaysInHabitat
	}

	if lf := raw.LastFed; lf != nil {
		if lf.HoursAgo != nil {
			snap.LastFed.HoursAgo = *lf.HoursAgo
		}
		snap.LastFed.Food = lf.Food
		if lf.At != "" {
			if at, err := timeseries.ParseTimestamp(lf.At); err == nil {
				snap.LastFed.At = at
			} else if log != nil {
				log.Warnw("fixture_field_ignored", "field", "lastFed.at", "err", err)
			}
		}
	}

	if a := raw.Activity; a != nil {
		if a.Status != nil && *a.Status != "" {
			snap.Activity.Status = *a.Status
		}
		if a.Level != nil {
			snap.Activity.Level = *a.Level
		}
	}

	if d := raw.Donations; d != nil {
		if d.Current != nil {
			snap.Donations.Current = *d.Current
		}
		if d.Goal != nil {
			snap.Donations.Goal = *d.Goal
		}
		switch {
		case d.Percentage != nil:
			snap.Donations.Percentage = *d.Percentage
		case snap.Donations.Goal > 0:
			snap.Donations.Percentage = timeseries.Round1(snap.Donations.Current / snap.Donations.Goal * 100)
		}
	}

	if raw.Uptime != nil {
		snap.Uptime = *raw.Uptime
	}
	if len(raw.Timeline) > 0 {
		snap.Timeline = raw.Timeline
	}
	return snap
}

func temperatureHistory(in []rawTemperaturePoint, log *logger.Logger) []models.TemperaturePoint {
	out := make([]models.TemperaturePoint, 0, len(in))
	for i, p := range in {
		ts, err := timeseries.ParseTimestamp(p.Timestamp)
		if err != nil {
			logDropped(log, "temperature", i, err)
			continue
		}
		out = append(out, models.TemperaturePoint{Timestamp: ts, Value: p.Value})
	}
	return out
}

func waterHistory(in []rawWaterPoint, log *logger.Logger) []models.WaterQualityPoint {
	out := make([]models.WaterQualityPoint, 0, len(in))
	for i, p := range in {
		ts, err := timeseries.ParseTimestamp(p.Timestamp)
		if err != nil {
			logDropped(log, "waterQuality", i, err)
			continue
		}
		out = append(out, models.WaterQualityPoint{Timestamp: ts, PH: p.PH, Ammonia: p.Ammonia})
	}
	return out
}

func logDropped(log *logger.Logger, series string, index int, err error) {
	if log == nil {
		return
	}
	log.Warnw("fixture_point_dropped", "series", series, "index", index, "err", err)
}
