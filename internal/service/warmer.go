package service

import (
	"context"
	"time"

	"shelldon/internal/logger"
)

// ChartWarmer keeps the chart cache hot so page loads never wait on a render.
type ChartWarmer struct {
	charts *ChartService
	log    *logger.Logger
}

func NewChartWarmer(charts *ChartService, log *logger.Logger) *ChartWarmer {
	return &ChartWarmer{charts: charts, log: log}
}

// Run refreshes once, then at every tick until ctx is canceled. A
// non-positive tick or a disabled cache makes Run return immediately.
func (w *ChartWarmer) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 || w.charts.ttl <= 0 {
		return
	}
	w.refresh(ctx)

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.refresh(ctx)
		}
	}
}

func (w *ChartWarmer) refresh(ctx context.Context) {
	start := time.Now()
	if err := w.charts.Refresh(ctx); err != nil {
		if w.log != nil && ctx.Err() == nil {
			w.log.Warnw("chart_refresh_failed", "err", err)
		}
		return
	}
	if w.log != nil {
		w.log.Debugw("charts_refreshed", "took", time.Since(start))
	}
}
