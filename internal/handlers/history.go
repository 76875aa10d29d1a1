package handlers

import (
	"context"
	"errors"
	"net/http"

	"shelldon/internal/timeseries"

	"github.com/gin-gonic/gin"
)

const svgContentType = "image/svg+xml"

// parseRangeOrBadRequest reads ?range= and writes a 400 JSON on failure.
// Returns false if the request was already handled.
func (h *Handler) parseRangeOrBadRequest(c *gin.Context) (timeseries.Range, bool) {
	r, err := timeseries.ParseRange(c.Query("range"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return r, true
}

// @Summary      Temperature history
// @Description  Points within the range window plus current/average/min/max.
// @Tags         history
// @Produce      json
// @Param        range  query  string  false  "Time range"  Enums(24h,7d,30d,all)  default(7d)
// @Success      200  {object}  service.TemperatureHistory
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/history/temperature [get]
func (h *Handler) getTemperatureHistory(c *gin.Context) {
	r, ok := h.parseRangeOrBadRequest(c)
	if !ok {
		return
	}
	out, err := h.services.History.Temperature(c.Request.Context(), r)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errHistory, "temperature_history_failed", err, "range", r)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Water quality history
// @Description  Points within the range window, pH and ammonia statistics, Safe/Check status.
// @Tags         history
// @Produce      json
// @Param        range  query  string  false  "Time range"  Enums(24h,7d,30d,all)  default(7d)
// @Success      200  {object}  service.WaterHistory
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/history/water [get]
func (h *Handler) getWaterHistory(c *gin.Context) {
	r, ok := h.parseRangeOrBadRequest(c)
	if !ok {
		return
	}
	out, err := h.services.History.Water(c.Request.Context(), r)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errHistory, "water_history_failed", err, "range", r)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary      Temperature chart
// @Tags         charts
// @Produce      image/svg+xml
// @Param        range  query  string  false  "Time range"  Enums(24h,7d,30d,all)  default(7d)
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /charts/temperature.svg [get]
func (h *Handler) temperatureChart(c *gin.Context) {
	h.serveChart(c, "temperature", h.services.Charts.TemperatureChart)
}

// @Summary      Water quality chart
// @Tags         charts
// @Produce      image/svg+xml
// @Param        range  query  string  false  "Time range"  Enums(24h,7d,30d,all)  default(7d)
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /charts/water.svg [get]
func (h *Handler) waterChart(c *gin.Context) {
	h.serveChart(c, "water", h.services.Charts.WaterChart)
}

func (h *Handler) serveChart(c *gin.Context, metric string, render func(context.Context, timeseries.Range) ([]byte, error)) {
	r, ok := h.parseRangeOrBadRequest(c)
	if !ok {
		return
	}
	svg, err := render(c.Request.Context(), r)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errChart, "chart_render_failed", err, "metric", metric, "range", r)
		return
	}
	c.Header("Cache-Control", "public, max-age=60")
	c.Data(http.StatusOK, svgContentType, svg)
}
