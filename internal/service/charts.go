package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"shelldon/internal/config"
	"shelldon/internal/timeseries"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	metricTemperature = "temperature"
	metricWater       = "water"

	defaultChartWidth  = 960
	defaultChartHeight = 400

	// spanPad widens an X axis whose points collapse to a single instant.
	spanPad = time.Hour
)

var (
	colorTemperature = drawing.ColorFromHex("f97316")
	colorPH          = drawing.ColorFromHex("3b82f6")
	colorAmmonia     = drawing.ColorFromHex("a855f7")
	colorOptimal     = drawing.ColorFromHex("22c55e")
	colorAlert       = drawing.ColorFromHex("ef4444")
)

type chartKey struct {
	metric string
	r      timeseries.Range
}

type cachedChart struct {
	svg     []byte
	expires time.Time
}

// ChartService renders history charts and caches the SVG per metric and
// range for the configured TTL. A zero TTL disables the cache.
type ChartService struct {
	history History
	width   int
	height  int
	ttl     time.Duration
	now     func() time.Time

	mu    sync.RWMutex
	cache map[chartKey]cachedChart
}

func NewChartService(history History, cfg config.ChartsConfig, now func() time.Time) *ChartService {
	if now == nil {
		now = time.Now
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = defaultChartWidth
	}
	if h <= 0 {
		h = defaultChartHeight
	}
	return &ChartService{
		history: history,
		width:   w,
		height:  h,
		ttl:     cfg.CacheTTL,
		now:     now,
		cache:   make(map[chartKey]cachedChart),
	}
}

func (s *ChartService) TemperatureChart(ctx context.Context, r timeseries.Range) ([]byte, error) {
	return s.cached(chartKey{metricTemperature, r}, func() ([]byte, error) {
		return s.renderTemperature(ctx, r)
	})
}

func (s *ChartService) WaterChart(ctx context.Context, r timeseries.Range) ([]byte, error) {
	return s.cached(chartKey{metricWater, r}, func() ([]byte, error) {
		return s.renderWater(ctx, r)
	})
}

// Refresh re-renders every metric and range, replacing cached entries.
func (s *ChartService) Refresh(ctx context.Context) error {
	for _, r := range timeseries.Ranges() {
		svg, err := s.renderTemperature(ctx, r)
		if err != nil {
			return err
		}
		s.store(chartKey{metricTemperature, r}, svg)

		svg, err = s.renderWater(ctx, r)
		if err != nil {
			return err
		}
		s.store(chartKey{metricWater, r}, svg)
	}
	return nil
}

func (s *ChartService) cached(key chartKey, render func() ([]byte, error)) ([]byte, error) {
	if s.ttl > 0 {
		s.mu.RLock()
		c, ok := s.cache[key]
		s.mu.RUnlock()
		if ok && s.now().Before(c.expires) {
			return c.svg, nil
		}
	}

	svg, err := render()
	if err != nil {
		return nil, err
	}
	s.store(key, svg)
	return svg, nil
}

func (s *ChartService) store(key chartKey, svg []byte) {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	s.cache[key] = cachedChart{svg: svg, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()
}

func (s *ChartService) renderTemperature(ctx context.Context, r timeseries.Range) ([]byte, error) {
	h, err := s.history.Temperature(ctx, r)
	if err != nil {
		return nil, err
	}

	times := make([]time.Time, len(h.Points))
	values := make([]float64, len(h.Points))
	for i, p := range h.Points {
		times[i] = p.Timestamp
		values[i] = p.Value
	}
	from, to := xSpan(times, r, s.now())

	series := []chart.Series{
		referenceLine("Optimal min", from, to, h.Optimal.Min, colorOptimal, chart.YAxisPrimary),
		referenceLine("Optimal max", from, to, h.Optimal.Max, colorOptimal, chart.YAxisPrimary),
	}
	if len(times) > 0 {
		series = append(series, dataSeries("Temperature (°F)", times, values, colorTemperature, chart.YAxisPrimary))
	}

	c := s.baseChart(from, to)
	c.YAxis = chart.YAxis{
		Name:  "°F",
		Range: &chart.ContinuousRange{Min: h.Domain.Min, Max: h.Domain.Max},
	}
	c.Series = series
	return renderSVG(&c, metricTemperature)
}

func (s *ChartService) renderWater(ctx context.Context, r timeseries.Range) ([]byte, error) {
	h, err := s.history.Water(ctx, r)
	if err != nil {
		return nil, err
	}

	times := make([]time.Time, len(h.Points))
	ph := make([]float64, len(h.Points))
	ammonia := make([]float64, len(h.Points))
	for i, p := range h.Points {
		times[i] = p.Timestamp
		ph[i] = p.PH
		ammonia[i] = p.Ammonia
	}
	from, to := xSpan(times, r, s.now())

	series := []chart.Series{
		referenceLine("pH min", from, to, h.PHBand.Min, colorOptimal, chart.YAxisPrimary),
		referenceLine("pH max", from, to, h.PHBand.Max, colorOptimal, chart.YAxisPrimary),
		referenceLine("Ammonia alert", from, to, h.AmmoniaAlert, colorAlert, chart.YAxisSecondary),
	}
	if len(times) > 0 {
		series = append(series,
			dataSeries("pH", times, ph, colorPH, chart.YAxisPrimary),
			dataSeries("Ammonia (ppm)", times, ammonia, colorAmmonia, chart.YAxisSecondary),
		)
	}

	c := s.baseChart(from, to)
	c.YAxis = chart.YAxis{
		Name:  "pH",
		Range: &chart.ContinuousRange{Min: timeseries.PHDomain.Min, Max: timeseries.PHDomain.Max},
	}
	c.YAxisSecondary = chart.YAxis{
		Name:  "ppm",
		Range: &chart.ContinuousRange{Min: timeseries.AmmoniaDomain.Min, Max: timeseries.AmmoniaDomain.Max},
	}
	c.Series = series
	return renderSVG(&c, metricWater)
}

func (s *ChartService) baseChart(from, to time.Time) chart.Chart {
	return chart.Chart{
		Width:      s.width,
		Height:     s.height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 2 15:04"),
			Range:          &chart.ContinuousRange{Min: chart.TimeToFloat64(from), Max: chart.TimeToFloat64(to)},
		},
	}
}

func renderSVG(c *chart.Chart, metric string) ([]byte, error) {
	c.Elements = []chart.Renderable{chart.Legend(c)}
	var buf bytes.Buffer
	if err := c.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render %s chart: %w", metric, err)
	}
	return buf.Bytes(), nil
}

// xSpan is the range window ending at now, or for RangeAll the span of the
// points. A degenerate span is padded on both sides.
func xSpan(times []time.Time, r timeseries.Range, now time.Time) (time.Time, time.Time) {
	if window, bounded := r.Window(); bounded {
		return now.Add(-window), now
	}
	if len(times) == 0 {
		return now.Add(-spanPad), now.Add(spanPad)
	}
	from, to := times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(from) {
			from = t
		}
		if t.After(to) {
			to = t
		}
	}
	if !to.After(from) {
		return from.Add(-spanPad), to.Add(spanPad)
	}
	return from, to
}

func dataSeries(name string, times []time.Time, values []float64, col drawing.Color, axis chart.YAxisType) chart.TimeSeries {
	return chart.TimeSeries{
		Name:    name,
		YAxis:   axis,
		XValues: times,
		YValues: values,
		Style: chart.Style{
			StrokeColor: col,
			StrokeWidth: 2,
			DotColor:    col,
			DotWidth:    3,
		},
	}
}

func referenceLine(name string, from, to time.Time, y float64, col drawing.Color, axis chart.YAxisType) chart.TimeSeries {
	return chart.TimeSeries{
		Name:    name,
		YAxis:   axis,
		XValues: []time.Time{from, to},
		YValues: []float64{y, y},
		Style: chart.Style{
			StrokeColor:     col.WithAlpha(128),
			StrokeWidth:     1,
			StrokeDashArray: []float64{3, 3},
		},
	}
}
