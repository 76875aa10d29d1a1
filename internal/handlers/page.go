package handlers

import (
	"net/http"
	"net/url"

	"shelldon/internal/service"
	"shelldon/internal/timeseries"

	"github.com/gin-gonic/gin"
)

const (
	modalTemperature = "temperature"
	modalWater       = "water"
)

type rangeOption struct {
	Label  string
	URL    string
	Active bool
}

// pageData is the template model. Modal state is the open metric plus the
// selected range; nothing else is kept between requests.
type pageData struct {
	Dashboard service.DashboardView

	Modal       string
	Range       timeseries.Range
	Ranges      []rangeOption
	ChartURL    string
	Temperature *service.TemperatureHistory
	Water       *service.WaterHistory
}

// page renders the whole site. A bad ?range= on the page falls back to the
// default range instead of failing.
func (h *Handler) page(c *gin.Context) {
	ctx := c.Request.Context()

	view, err := h.services.Dashboard.View(ctx)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("page_dashboard_failed", "err", err)
		}
		c.String(http.StatusInternalServerError, errDashboard)
		return
	}
	data := pageData{Dashboard: view}

	modal := c.Query("modal")
	if modal != modalTemperature && modal != modalWater {
		c.HTML(http.StatusOK, "page.tmpl", data)
		return
	}

	r, err := timeseries.ParseRange(c.Query("range"))
	if err != nil {
		r = timeseries.DefaultRange
	}
	data.Modal = modal
	data.Range = r
	data.Ranges = rangeOptions(modal, r)
	data.ChartURL = "/charts/" + modal + ".svg?range=" + url.QueryEscape(string(r))

	switch modal {
	case modalTemperature:
		if th, err := h.services.History.Temperature(ctx, r); err == nil {
			data.Temperature = &th
		} else if h.log != nil {
			h.log.Errorw("page_history_failed", "err", err, "modal", modal, "range", r)
		}
	case modalWater:
		if wh, err := h.services.History.Water(ctx, r); err == nil {
			data.Water = &wh
		} else if h.log != nil {
			h.log.Errorw("page_history_failed", "err", err, "modal", modal, "range", r)
		}
	}

	c.HTML(http.StatusOK, "page.tmpl", data)
}

func rangeOptions(modal string, selected timeseries.Range) []rangeOption {
	out := make([]rangeOption, 0, len(timeseries.Ranges()))
	for _, r := range timeseries.Ranges() {
		q := url.Values{"modal": {modal}, "range": {string(r)}}
		out = append(out, rangeOption{
			Label:  r.Label(),
			URL:    "/?" + q.Encode() + "#dashboard",
			Active: r == selected,
		})
	}
	return out
}

// @Summary      Dashboard
// @Description  Snapshot values with gauges, last-fed label, donation tiers and timeline.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  service.DashboardView
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	view, err := h.services.Dashboard.View(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDashboard, "dashboard_failed", err)
		return
	}
	c.JSON(http.StatusOK, view)
}
