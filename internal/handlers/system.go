package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errDashboard       = "failed to load dashboard"
	errHistory         = "failed to load history"
	errChart           = "failed to render chart"
	errReadings        = "failed to load readings"
	errRecordReading   = "failed to record reading"
	errLogs            = "failed to load logs"
	errRecordLog       = "failed to record log entry"
	errInvalidBodyPref = "invalid body: "
	errRateLimited     = "too many requests"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
