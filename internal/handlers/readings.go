package handlers

import (
	"errors"
	"net/http"
	"time"

	"shelldon/internal/models"
	"shelldon/internal/repository"
	"shelldon/internal/service"
	"shelldon/internal/timeseries"

	"github.com/gin-gonic/gin"
)

// TemperatureReadingRequest is the payload for recording a temperature.
type TemperatureReadingRequest struct {
	// Reading time (RFC3339). Defaults to now.
	Timestamp string `json:"timestamp,omitempty" example:"2026-02-10T16:46:00-06:00"`
	// Temperature in °F
	Value *float64 `json:"value" binding:"required" example:"71.6"`
}

// WaterReadingRequest is the payload for recording a water test.
type WaterReadingRequest struct {
	// Reading time (RFC3339). Defaults to now.
	Timestamp string   `json:"timestamp,omitempty" example:"2026-02-10T09:54:00-06:00"`
	PH        *float64 `json:"ph" binding:"required" example:"7.4"`
	Ammonia   *float64 `json:"ammonia" binding:"required" example:"0.01"`
}

// parseOptionalTimestamp returns the zero time for an empty string.
func parseOptionalTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return timeseries.ParseTimestamp(s)
}

// @Summary      Record temperature reading
// @Tags         readings
// @Accept       json
// @Produce      json
// @Param        body  body   TemperatureReadingRequest  true  "Reading"
// @Success      201   {object}  models.TemperaturePoint
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/readings/temperature [post]
// @Security     BearerAuth
func (h *Handler) recordTemperature(c *gin.Context) {
	var req TemperatureReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ts, err := parseOptionalTimestamp(req.Timestamp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	p, err := h.services.Readings.RecordTemperature(c.Request.Context(), models.TemperaturePoint{Timestamp: ts, Value: *req.Value})
	if err != nil {
		h.recordReadingError(c, err, "temperature_record_failed")
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary      Record water reading
// @Tags         readings
// @Accept       json
// @Produce      json
// @Param        body  body   WaterReadingRequest  true  "Reading"
// @Success      201   {object}  models.WaterQualityPoint
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/readings/water [post]
// @Security     BearerAuth
func (h *Handler) recordWater(c *gin.Context) {
	var req WaterReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ts, err := parseOptionalTimestamp(req.Timestamp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	p, err := h.services.Readings.RecordWater(c.Request.Context(), models.WaterQualityPoint{
		Timestamp: ts,
		PH:        *req.PH,
		Ammonia:   *req.Ammonia,
	})
	if err != nil {
		h.recordReadingError(c, err, "water_record_failed")
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary      List temperature readings
// @Tags         readings
// @Produce      json
// @Param        from  query   string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"
// @Param        to    query   string  false  "End of range. Date-only treated as end of day."
// @Success      200   {object}  map[string]interface{}  "count, readings"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/readings/temperature [get]
func (h *Handler) listTemperatureReadings(c *gin.Context) {
	from, to, ok := h.parseRangeQuery(c)
	if !ok {
		return
	}
	points, err := h.services.Readings.ListTemperature(c.Request.Context(), from, to)
	if err != nil {
		h.listReadingsError(c, err, "temperature")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(points), "readings": points})
}

// @Summary      List water readings
// @Tags         readings
// @Produce      json
// @Param        from  query   string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"
// @Param        to    query   string  false  "End of range. Date-only treated as end of day."
// @Success      200   {object}  map[string]interface{}  "count, readings"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/readings/water [get]
func (h *Handler) listWaterReadings(c *gin.Context) {
	from, to, ok := h.parseRangeQuery(c)
	if !ok {
		return
	}
	points, err := h.services.Readings.ListWater(c.Request.Context(), from, to)
	if err != nil {
		h.listReadingsError(c, err, "water")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(points), "readings": points})
}

func (h *Handler) recordReadingError(c *gin.Context, err error, event string) {
	switch {
	case errors.Is(err, service.ErrInvalidReading):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicateReading):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errRecordReading, event, err)
	}
}

func (h *Handler) listReadingsError(c *gin.Context, err error, series string) {
	if errors.Is(err, service.ErrInvalidTimeRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": errRangeOrder})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, errReadings, "readings_list_failed", err, "series", series)
}
