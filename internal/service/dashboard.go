package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"shelldon/internal/config"
	"shelldon/internal/logger"
	"shelldon/internal/models"
	"shelldon/internal/repository"

	"github.com/dustin/go-humanize"
)

// GaugeCircumference is the stroke length of the dashboard ring (r = 54).
const GaugeCircumference = 339.292

// Gauge scales.
const (
	temperatureGaugeMax = 80.0 // °F
	daysGaugeMax        = 30.0
	lastFedGaugeMax     = 72.0 // hours
)

// Gauge is a ring indicator. Offset is the SVG stroke-dashoffset.
type Gauge struct {
	Fraction float64 `json:"fraction"`
	Offset   float64 `json:"offset"`
}

// NewGauge clamps fraction to [0, 1] and computes the ring offset.
func NewGauge(fraction float64) Gauge {
	if math.IsNaN(fraction) {
		fraction = 0
	}
	fraction = math.Max(0, math.Min(1, fraction))
	return Gauge{
		Fraction: fraction,
		Offset:   math.Round(GaugeCircumference*(1-fraction)*1000) / 1000,
	}
}

type TierStatus string

const (
	TierUnlocked TierStatus = "unlocked"
	TierCurrent  TierStatus = "current"
	TierNext     TierStatus = "next"
	TierLocked   TierStatus = "locked"
)

// Tier is a donation milestone.
type Tier struct {
	Level     int        `json:"level"`
	Name      string     `json:"name"`
	Goal      float64    `json:"goal"`
	GoalLabel string     `json:"goalLabel"`
	Items     []string   `json:"items"`
	Status    TierStatus `json:"status"`
}

var donationTiers = []Tier{
	{Level: 0, Goal: 0, GoalLabel: "START", Items: []string{"Bare tank", "PVC shelter", "Basic equipment"}},
	{Level: 1, Goal: 100, Items: []string{"Better lighting", "First toy", "Smart automation", "Temp sensor"}},
	{Level: 2, Goal: 250, Items: []string{"Quality hides", "Live plants", "Auto feeder", "Air pump"}},
	{Level: 3, Goal: 500, Items: []string{"20 gallon upgrade", "Substrate", "Better filter", "Aquascaping", "RGB lights"}},
	{Level: 4, Goal: 1000, Items: []string{"Multi-camera setup", "Tank mates", "Advanced enrichment", "Full monitoring"}},
}

// Tiers returns the donation tiers with their status for the raised amount:
// the highest tier whose goal is reached is current, the following one is
// next, lower ones are unlocked and the rest locked.
func Tiers(raised float64) []Tier {
	out := make([]Tier, len(donationTiers))
	current := 0
	for i, t := range donationTiers {
		if t.Goal <= raised {
			current = i
		}
		t.Name = "Level " + strconv.Itoa(t.Level)
		if t.GoalLabel == "" {
			t.GoalLabel = FormatUSD(t.Goal)
			if i == len(donationTiers)-1 {
				t.GoalLabel += "+"
			}
		}
		t.Items = append([]string(nil), t.Items...)
		out[i] = t
	}
	for i := range out {
		switch {
		case i < current:
			out[i].Status = TierUnlocked
		case i == current:
			out[i].Status = TierCurrent
		case i == current+1:
			out[i].Status = TierNext
		default:
			out[i].Status = TierLocked
		}
	}
	return out
}

// FormatUSD renders a dollar amount with thousands separators.
func FormatUSD(v float64) string {
	if v == math.Trunc(v) {
		return "$" + humanize.Comma(int64(v))
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// LastFedLabel renders hours since the last feeding. -1 means no feeding
// has been recorded yet.
func LastFedLabel(hoursAgo int) string {
	switch {
	case hoursAgo < 0:
		return "Loading..."
	case hoursAgo == 0:
		return "Just now"
	case hoursAgo == 1:
		return "1 hour ago"
	default:
		return fmt.Sprintf("%d hours ago", hoursAgo)
	}
}

type TemperatureView struct {
	Current float64 `json:"current"`
	Gauge   Gauge   `json:"gauge"`
}

type WaterView struct {
	PH      float64 `json:"ph"`
	Ammonia float64 `json:"ammonia"`
	Status  string  `json:"status"`
}

type DaysView struct {
	Days  int   `json:"days"`
	Gauge Gauge `json:"gauge"`
}

type LastFedView struct {
	HoursAgo int    `json:"hoursAgo"`
	Label    string `json:"label"`
	Food     string `json:"food,omitempty"`
	Gauge    Gauge  `json:"gauge"`
}

type ActivityView struct {
	Status string  `json:"status"`
	Level  float64 `json:"level"`
	Gauge  Gauge   `json:"gauge"`
}

type UptimeView struct {
	Percent float64 `json:"percent"`
	Gauge   Gauge   `json:"gauge"`
}

type DonationView struct {
	Current      float64 `json:"current"`
	Goal         float64 `json:"goal"`
	Percentage   float64 `json:"percentage"`
	CurrentLabel string  `json:"currentLabel"`
	GoalLabel    string  `json:"goalLabel"`
	Gauge        Gauge   `json:"gauge"`
	Tiers        []Tier  `json:"tiers"`
}

type StreamView struct {
	EmbedURL   string `json:"embedUrl"`
	ChannelURL string `json:"channelUrl"`
}

// DashboardView is everything the page renders outside the history modals.
type DashboardView struct {
	Temperature   TemperatureView    `json:"temperature"`
	WaterQuality  WaterView          `json:"waterQuality"`
	DaysInHabitat DaysView           `json:"daysInHabitat"`
	LastFed       LastFedView        `json:"lastFed"`
	Activity      ActivityView       `json:"activity"`
	Uptime        UptimeView         `json:"uptime"`
	Donations     DonationView       `json:"donations"`
	Timeline      []models.Milestone `json:"timeline"`
	Stream        StreamView         `json:"stream"`
	LoadedAt      time.Time          `json:"loadedAt"`
	Fallback      bool               `json:"fallback"`
}

type DashboardService struct {
	snap   models.Snapshot
	events repository.CareEventRepo
	stream config.StreamConfig
	log    *logger.Logger
	now    func() time.Time
}

// NewDashboardService builds views from snap. events may be nil; when set,
// the latest FEEDING event takes precedence over the snapshot's lastFed.
func NewDashboardService(snap models.Snapshot, events repository.CareEventRepo, stream config.StreamConfig, log *logger.Logger, now func() time.Time) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{snap: snap, events: events, stream: stream, log: log, now: now}
}

func (s *DashboardService) View(ctx context.Context) (DashboardView, error) {
	snap := s.snap
	lastFed := s.lastFed(ctx)

	fedFraction := 0.0
	if lastFed.HoursAgo >= 0 {
		fedFraction = float64(lastFed.HoursAgo) / lastFedGaugeMax
	}

	return DashboardView{
		Temperature: TemperatureView{
			Current: snap.Temperature.Current,
			Gauge:   NewGauge(snap.Temperature.Current / temperatureGaugeMax),
		},
		WaterQuality: WaterView{
			PH:      snap.WaterQuality.PH,
			Ammonia: snap.WaterQuality.Ammonia,
			Status:  snap.WaterQuality.Status,
		},
		DaysInHabitat: DaysView{
			Days:  snap.DaysInHabitat,
			Gauge: NewGauge(float64(snap.DaysInHabitat) / daysGaugeMax),
		},
		LastFed: LastFedView{
			HoursAgo: lastFed.HoursAgo,
			Label:    LastFedLabel(lastFed.HoursAgo),
			Food:     lastFed.Food,
			Gauge:    NewGauge(fedFraction),
		},
		Activity: ActivityView{
			Status: snap.Activity.Status,
			Level:  snap.Activity.Level,
			Gauge:  NewGauge(snap.Activity.Level / 100),
		},
		Uptime: UptimeView{
			Percent: snap.Uptime,
			Gauge:   NewGauge(snap.Uptime / 100),
		},
		Donations: DonationView{
			Current:      snap.Donations.Current,
			Goal:         snap.Donations.Goal,
			Percentage:   snap.Donations.Percentage,
			CurrentLabel: FormatUSD(snap.Donations.Current),
			GoalLabel:    FormatUSD(snap.Donations.Goal),
			Gauge:        NewGauge(snap.Donations.Percentage / 100),
			Tiers:        Tiers(snap.Donations.Current),
		},
		Timeline: snap.Timeline,
		Stream: StreamView{
			EmbedURL:   s.stream.StreamEmbedURL(),
			ChannelURL: s.stream.ChannelURL(),
		},
		LoadedAt: snap.LoadedAt,
		Fallback: snap.Fallback,
	}, nil
}

// lastFed prefers the care log over the snapshot. Storage errors are logged
// and the snapshot value is used.
func (s *DashboardService) lastFed(ctx context.Context) models.LastFed {
	fed := s.snap.LastFed
	if s.events == nil {
		return fed
	}
	ev, err := s.events.Latest(ctx, models.CareFeeding)
	if err != nil {
		if s.log != nil {
			s.log.Warnw("last_fed_lookup_failed", "err", err)
		}
		return fed
	}
	if ev == nil {
		return fed
	}

	hours := int(s.now().Sub(ev.OccurredAt).Hours())
	if hours < 0 {
		hours = 0
	}
	return models.LastFed{HoursAgo: hours, Food: ev.Description, At: ev.OccurredAt}
}
