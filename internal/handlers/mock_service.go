package handlers

import (
	"context"
	"net/http"
	"time"

	"shelldon/internal/models"
	"shelldon/internal/service"
	"shelldon/internal/timeseries"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockDashboard struct {
	view  service.DashboardView
	err   error
	calls int
}

func (m *mockDashboard) View(ctx context.Context) (service.DashboardView, error) {
	m.calls++
	return m.view, m.err
}

type mockHistory struct {
	temp      service.TemperatureHistory
	water     service.WaterHistory
	err       error
	lastRange timeseries.Range
}

func (m *mockHistory) Temperature(ctx context.Context, r timeseries.Range) (service.TemperatureHistory, error) {
	m.lastRange = r
	out := m.temp
	out.Range = r
	return out, m.err
}
func (m *mockHistory) Water(ctx context.Context, r timeseries.Range) (service.WaterHistory, error) {
	m.lastRange = r
	out := m.water
	out.Range = r
	return out, m.err
}

type mockCharts struct {
	svg       []byte
	err       error
	lastRange timeseries.Range
	lastChart string
}

func (m *mockCharts) TemperatureChart(ctx context.Context, r timeseries.Range) ([]byte, error) {
	m.lastRange, m.lastChart = r, "temperature"
	return m.svg, m.err
}
func (m *mockCharts) WaterChart(ctx context.Context, r timeseries.Range) ([]byte, error) {
	m.lastRange, m.lastChart = r, "water"
	return m.svg, m.err
}

type mockReadings struct {
	recordErr error
	listErr   error
	temps     []models.TemperaturePoint
	water     []models.WaterQualityPoint

	lastTemp  models.TemperaturePoint
	lastWater models.WaterQualityPoint
	lastFrom  time.Time
	lastTo    time.Time
}

func (m *mockReadings) RecordTemperature(ctx context.Context, p models.TemperaturePoint) (models.TemperaturePoint, error) {
	m.lastTemp = p
	return p, m.recordErr
}
func (m *mockReadings) RecordWater(ctx context.Context, p models.WaterQualityPoint) (models.WaterQualityPoint, error) {
	m.lastWater = p
	return p, m.recordErr
}
func (m *mockReadings) ListTemperature(ctx context.Context, from, to time.Time) ([]models.TemperaturePoint, error) {
	m.lastFrom, m.lastTo = from, to
	return m.temps, m.listErr
}
func (m *mockReadings) ListWater(ctx context.Context, from, to time.Time) ([]models.WaterQualityPoint, error) {
	m.lastFrom, m.lastTo = from, to
	return m.water, m.listErr
}

type mockCareLog struct {
	resp      []models.CareEvent
	err       error
	recordErr error
	lastFrom  time.Time
	lastTo    time.Time
	lastType  string
	recorded  []models.CareEvent
}

func (m *mockCareLog) List(ctx context.Context, f service.LogFilter) ([]models.CareEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}
func (m *mockCareLog) Record(ctx context.Context, e models.CareEvent) (models.CareEvent, error) {
	m.recorded = append(m.recorded, e)
	if m.recordErr != nil {
		return models.CareEvent{}, m.recordErr
	}
	e.EventID = "evt-1"
	return e, nil
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, opts ...Option) *gin.Engine {
	h := NewHandler(s, nil, opts...)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
