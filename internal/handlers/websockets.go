package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"shelldon/internal/logger"
	"shelldon/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
	maxMsgSize      = 1 << 12 // 4 KB, subscribers only send control frames
	defaultInterval = 1 * time.Second
	maxInterval     = 10 * time.Second

	msgDashboard = "dashboard"
	msgError     = "error"
)

// wsEnvelope wraps every message pushed to live dashboard subscribers.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// The page and the stream embed are served from the same host; any origin may read the public dashboard.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dashboardStream pushes the dashboard view to one subscriber.
type dashboardStream struct {
	conn      *websocket.Conn
	dashboard service.Dashboard
	log       *logger.Logger
}

// @Summary      Live dashboard
// @Description  WebSocket that pushes the dashboard view every interval (?interval=2s or ?interval_ms=2000, max 10s).
// @Tags         dashboard
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	s := &dashboardStream{conn: conn, dashboard: h.services.Dashboard, log: h.log}
	s.run(c.Request.Context(), interval)
}

// run sends a view immediately, then every interval, until the subscriber
// disconnects, the request ends or a write fails.
func (s *dashboardStream) run(ctx context.Context, interval time.Duration) {
	closed := s.watchClose()

	if err := s.push(ctx); err != nil {
		s.logInfo("ws_write_failed_initial", err)
		return
	}

	views := time.NewTicker(interval)
	defer views.Stop()
	pings := time.NewTicker(pingPeriod)
	defer pings.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case <-pings.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.logInfo("ws_ping_failed", err)
				return
			}
		case <-views.C:
			if err := s.push(ctx); err != nil {
				s.logInfo("ws_write_failed", err)
				return
			}
		}
	}
}

// watchClose reads control frames in the background; the returned channel
// closes when the subscriber goes away or stops answering pings.
func (s *dashboardStream) watchClose() <-chan struct{} {
	s.conn.SetReadLimit(maxMsgSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := s.conn.ReadMessage(); err != nil {
				s.logInfo("ws_read_closed", err)
				return
			}
		}
	}()
	return done
}

// push writes the current view. A failed view is reported to the subscriber
// as an error message before the error is returned.
func (s *dashboardStream) push(ctx context.Context) error {
	view, err := s.dashboard.View(ctx)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("ws_dashboard_failed", "err", err)
		}
		_ = s.write(wsEnvelope{Type: msgError, Error: errDashboard})
		return err
	}
	return s.write(wsEnvelope{Type: msgDashboard, Data: view})
}

func (s *dashboardStream) write(env wsEnvelope) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(env)
}

func (s *dashboardStream) logInfo(event string, err error) {
	if s.log != nil {
		s.log.Infow(event, "err", err)
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000. Values outside
// (0, 10s] fall back to one second; interval wins when both are valid.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}
	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 {
			if d := time.Duration(v) * time.Millisecond; d <= maxInterval {
				return d
			}
		}
	}
	return defaultInterval
}
