package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shelldon/internal/models"
	"shelldon/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errRangeOrder  = "'from' must be <= 'to'"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// CareEventRequest is the payload for appending to the care log.
type CareEventRequest struct {
	// Event type. Allowed: FEEDING, WATER_CHANGE, MILESTONE, NOTE
	Type string `json:"type" binding:"required" example:"FEEDING"`
	// What happened
	Description string `json:"description" binding:"required" example:"One shrimp pellet"`
	// When it happened (RFC3339). Defaults to now.
	OccurredAt string `json:"occurred_at,omitempty" example:"2026-02-10T18:30:00-06:00"`
	// Free-form details
	Metadata map[string]any `json:"metadata,omitempty"`
}

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// parseRangeQuery reads optional ?from and ?to. A date-only 'to' covers the
// whole day. Writes a 400 and returns false on bad input.
func (h *Handler) parseRangeQuery(c *gin.Context) (time.Time, time.Time, bool) {
	var from, to time.Time
	var err error
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return time.Time{}, time.Time{}, false
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return time.Time{}, time.Time{}, false
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": errRangeOrder})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// @Summary      List care log
// @Description  Filter care events by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). If 'to' is date-only, it is treated as end-of-day inclusive (23:59:59.999999999Z).
// @Tags         logs
// @Produce      json
// @Param        from  query   string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2026-02-01)
// @Param        to    query   string  false  "End of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). Date-only treated as end of day."  example(2026-02-28)
// @Param        type  query   string  false  "Event type"  Enums(FEEDING,WATER_CHANGE,MILESTONE,NOTE)
// @Success      200   {object}  map[string]interface{}  "count, events"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/logs [get]
func (h *Handler) getLogs(c *gin.Context) {
	from, to, ok := h.parseRangeQuery(c)
	if !ok {
		return
	}
	eventType := strings.ToUpper(strings.TrimSpace(c.Query("type")))

	events, err := h.services.CareLog.List(c.Request.Context(), service.LogFilter{
		From: from,
		To:   to,
		Type: eventType,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errRangeOrder})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLogs, "logs_list_failed", err,
			"from", from, "to", to, "type", eventType)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}

// @Summary      Append to care log
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        body  body   CareEventRequest  true  "Care event"
// @Success      201   {object}  models.CareEvent
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/logs [post]
// @Security     BearerAuth
func (h *Handler) postLog(c *gin.Context) {
	var req CareEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	var at time.Time
	if req.OccurredAt != "" {
		t, err := parseQueryTime(req.OccurredAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
			return
		}
		at = t
	}

	e := models.CareEvent{
		OccurredAt:  at,
		Type:        req.Type,
		Description: req.Description,
	}
	if len(req.Metadata) > 0 {
		e.Metadata = req.Metadata
	}
	if uid, ok := c.Get("userId"); ok {
		if m, isMap := e.Metadata.(map[string]any); isMap {
			m["caretaker_id"] = uid
		} else {
			e.Metadata = map[string]any{"caretaker_id": uid}
		}
	}

	saved, err := h.services.CareLog.Record(c.Request.Context(), e)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCareEvent) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errRecordLog, "log_record_failed", err, "type", req.Type)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func parseQueryTime(s string) (time.Time, error) {
	// Try multiple accepted formats, normalizing to UTC.
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
