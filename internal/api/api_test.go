package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gehtsoft-usa/go_ingalls"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, config Config) *httptest.Server {
	calculator, err := go_ingalls.CreateStandardIngallsCalculator()
	require.NoError(t, err)
	metrics := NewMetricsCollector(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httptest.NewServer(NewServer(go_ingalls.CreateTrajectorySolver(calculator), config, metrics, logger).Handler())
	t.Cleanup(server.Close)
	return server
}

func post(t *testing.T, server *httptest.Server, path string, body any) *http.Response {
	var reader io.Reader
	if s, ok := body.(string); ok {
		reader = strings.NewReader(s)
	} else {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	response, err := http.Post(server.URL+path, "application/json", reader)
	require.NoError(t, err)
	t.Cleanup(func() { response.Body.Close() })
	return response
}

func validTrajectory() TrajectoryRequest {
	return TrajectoryRequest{
		BallisticCoefficient: 0.5,
		MuzzleVelocity:       2700,
		BulletWeight:         168,
		SightHeight:          1.5,
		ZeroRange:            100,
		MaximumRange:         1000,
		Step:                 100,
		WindSpeed:            10,
		WindAngle:            90,
	}
}

func TestHealthz(t *testing.T) {
	server := newTestServer(t, DefaultConfig())

	response, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusOK, response.StatusCode)
}

func TestTrajectoryEndpoint(t *testing.T) {
	server := newTestServer(t, DefaultConfig())

	response := post(t, server, "/v1/trajectory", validTrajectory())
	require.Equal(t, http.StatusOK, response.StatusCode)

	var body TrajectoryResponse
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	require.Len(t, body.Rows, 11)
	assert.InDelta(t, 0.06356, body.MuzzleAngle, 1e-3)
	assert.InDelta(t, -1.5, body.Rows[0].Path, 1e-9)
	assert.InDelta(t, 100, body.Rows[1].Range, 1e-9)
	assert.InDelta(t, 0, body.Rows[1].Path, 1e-3)
	assert.Greater(t, body.Rows[10].Windage, 0.0)
	assert.Less(t, body.Rows[10].Velocity, 2700.0)

	t.Run("custom atmosphere", func(t *testing.T) {
		request := validTrajectory()
		altitude, temperature := 5000.0, 90.0
		request.Altitude = &altitude
		request.Temperature = &temperature

		response := post(t, server, "/v1/trajectory", request)
		require.Equal(t, http.StatusOK, response.StatusCode)
		var thin TrajectoryResponse
		require.NoError(t, json.NewDecoder(response.Body).Decode(&thin))
		assert.Greater(t, thin.BallisticCoefficient, body.BallisticCoefficient)
		assert.Greater(t, thin.Rows[10].Velocity, body.Rows[10].Velocity)
	})
}

func TestTrajectoryEndpointErrors(t *testing.T) {
	server := newTestServer(t, DefaultConfig())

	cases := []struct {
		name   string
		modify func(*TrajectoryRequest)
	}{
		{"zero coefficient", func(r *TrajectoryRequest) { r.BallisticCoefficient = 0 }},
		{"muzzle velocity above the table", func(r *TrajectoryRequest) { r.MuzzleVelocity = 5000 }},
		{"zero range", func(r *TrajectoryRequest) { r.ZeroRange = 0 }},
		{"zero step", func(r *TrajectoryRequest) { r.Step = 0 }},
		{"too many rows", func(r *TrajectoryRequest) { r.MaximumRange, r.Step = 1e300, 1e-300 }},
		{"humidity above 100%", func(r *TrajectoryRequest) { h := 150.0; r.Humidity = &h }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			request := validTrajectory()
			c.modify(&request)
			response := post(t, server, "/v1/trajectory", request)
			assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)

			var body errorResponse
			require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
			assert.NotEmpty(t, body.Error)
		})
	}

	response := post(t, server, "/v1/trajectory", `{"bc": 0.5,`)
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	response = post(t, server, "/v1/trajectory", `{"ballistic": 0.5}`)
	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestPointBlankEndpoint(t *testing.T) {
	server := newTestServer(t, DefaultConfig())

	response := post(t, server, "/v1/point-blank", PointBlankRequest{
		BallisticCoefficient: 0.5,
		MuzzleVelocity:       2700,
		MaximumOrdinate:      3,
		SightHeight:          1.5,
		MuzzleAngle:          0.06356,
	})
	require.Equal(t, http.StatusOK, response.StatusCode)

	var body PointBlankResponse
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.InDelta(t, 208.9926, body.Zero, 1e-2)
	assert.InDelta(t, 233.0944, body.Range, 5e-2)
	assert.InDelta(t, 8.4678, body.Clicks, 1e-3)

	response = post(t, server, "/v1/point-blank", PointBlankRequest{BallisticCoefficient: 0.5, MuzzleVelocity: 2700})
	assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
}

func TestRateLimit(t *testing.T) {
	server := newTestServer(t, Config{RequestsPerMinute: 1, Burst: 2})

	request := PointBlankRequest{BallisticCoefficient: 0.5, MuzzleVelocity: 2700, MaximumOrdinate: 3, SightHeight: 1.5}
	assert.Equal(t, http.StatusOK, post(t, server, "/v1/point-blank", request).StatusCode)
	assert.Equal(t, http.StatusOK, post(t, server, "/v1/point-blank", request).StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, post(t, server, "/v1/point-blank", request).StatusCode)

	// health checks are not limited
	response, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusOK, response.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t, DefaultConfig())

	post(t, server, "/v1/trajectory", validTrajectory())
	bad := validTrajectory()
	bad.MuzzleVelocity = 5000
	post(t, server, "/v1/trajectory", bad)

	response, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer response.Body.Close()
	data, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `ingalls_requests_total{endpoint="trajectory",status="200"} 1`)
	assert.Contains(t, text, `ingalls_requests_total{endpoint="trajectory",status="422"} 1`)
	assert.Contains(t, text, `ingalls_solver_errors_total{kind="out_of_range"} 1`)
	assert.Contains(t, text, "ingalls_trajectory_rows_count 1")
}

func TestConfigFromEnv(t *testing.T) {
	config, err := ConfigFromEnv(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	t.Setenv("INGALLS_ADDR", "127.0.0.1:9000")
	t.Setenv("INGALLS_RATE", "120")
	config, err = ConfigFromEnv(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, Config{Addr: "127.0.0.1:9000", RequestsPerMinute: 120, Burst: 12}, config)

	t.Setenv("INGALLS_RATE", "fast")
	_, err = ConfigFromEnv(DefaultConfig())
	assert.Error(t, err)
}

func TestTrajectoryEndpointHugeRange(t *testing.T) {
	server := newTestServer(t, DefaultConfig())

	request := validTrajectory()
	request.MaximumRange, request.Step = 1e15, 1
	response := post(t, server, "/v1/trajectory", request)
	require.Equal(t, http.StatusOK, response.StatusCode)

	var body TrajectoryResponse
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	require.NotEmpty(t, body.Rows)
	assert.Less(t, body.Rows[len(body.Rows)-1].Range, 20000.0)
}

func TestRequestHumidityInPercents(t *testing.T) {
	request := validTrajectory()
	for _, c := range []struct{ percents, fraction float64 }{{0, 0}, {1, 0.01}, {50, 0.5}, {100, 1}} {
		h := c.percents
		request.Humidity = &h
		a, err := request.atmosphere()
		require.NoError(t, err)
		assert.InDelta(t, c.fraction, a.Humidity(), 1e-12, "%g%%", c.percents)
	}

	h := -1.0
	request.Humidity = &h
	_, err := request.atmosphere()
	assert.ErrorIs(t, err, go_ingalls.ErrDegenerateInput)

	request.Humidity = nil
	a, err := request.atmosphere()
	require.NoError(t, err)
	assert.InDelta(t, 0.78, a.Humidity(), 1e-12)
}

func TestRateLimiterForgetsIdleClients(t *testing.T) {
	limiter := NewIPRateLimiter(60, 2)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	limiter.lastSweep = now

	first := limiter.Limiter("10.0.0.1")
	kept := limiter.Limiter("10.0.0.2")
	assert.Same(t, first, limiter.Limiter("10.0.0.1"))
	assert.Equal(t, 2, limiter.Len())

	now = now.Add(30 * time.Second)
	limiter.Limiter("10.0.0.2")
	now = now.Add(31 * time.Second)
	limiter.Limiter("10.0.0.3")

	assert.Equal(t, 2, limiter.Len())
	assert.Same(t, kept, limiter.Limiter("10.0.0.2"))
	assert.NotSame(t, first, limiter.Limiter("10.0.0.1"))
}

type failingWriter struct {
	header http.Header
	status int
}

func (w *failingWriter) Header() http.Header { return w.header }
func (w *failingWriter) WriteHeader(status int) { w.status = status }
func (w *failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestResponseNotWritten(t *testing.T) {
	var log bytes.Buffer
	calculator, err := go_ingalls.CreateStandardIngallsCalculator()
	require.NoError(t, err)
	server := NewServer(go_ingalls.CreateTrajectorySolver(calculator), DefaultConfig(),
		NewMetricsCollector(prometheus.NewRegistry()), slog.New(slog.NewTextHandler(&log, nil)))

	w := &failingWriter{header: http.Header{}}
	server.respond(w, httptest.NewRequest(http.MethodGet, "/healthz", nil), http.StatusOK, map[string]string{"status": "ok"})
	assert.Equal(t, http.StatusOK, w.status)
	assert.Contains(t, log.String(), "response not written")
	assert.Contains(t, log.String(), io.ErrClosedPipe.Error())
}
