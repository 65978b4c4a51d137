//Package api serves the Ingalls solver over HTTP as JSON.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gehtsoft-usa/go_ingalls"
	"github.com/gehtsoft-usa/go_ingalls/bmath/unit"
)

//TrajectoryRequest is the body of POST /v1/trajectory.
//
//Distances to the target are in yards, heights in inches, velocities in feet per second,
//the wind and target speeds in miles per hour. Omitted atmosphere fields mean the
//standard conditions.
type TrajectoryRequest struct {
	BallisticCoefficient float64  `json:"bc"`
	MuzzleVelocity       float64  `json:"muzzle_velocity"`
	BulletWeight         float64  `json:"bullet_weight"` //grains
	SightHeight          float64  `json:"sight_height"`
	ZeroRange            float64  `json:"zero_range"`
	MaximumRange         float64  `json:"max_range"`
	Step                 float64  `json:"step"`
	WindSpeed            float64  `json:"wind_speed"`
	WindAngle            float64  `json:"wind_angle"` //degrees, 90 is from the right
	Altitude             *float64 `json:"altitude,omitempty"`
	Temperature          *float64 `json:"temperature,omitempty"` //°F
	Pressure             *float64 `json:"pressure,omitempty"`    //inHg
	Humidity             *float64 `json:"humidity,omitempty"`    //percents
	TargetSpeed          float64  `json:"target_speed"`
}

//TrajectoryRow is one range of the trajectory table
type TrajectoryRow struct {
	Range             float64 `json:"range"`
	Velocity          float64 `json:"velocity"`
	Time              float64 `json:"time"`
	Drop              float64 `json:"drop"`
	Path              float64 `json:"path"`
	PathAdjustment    float64 `json:"path_adjustment"` //MOA
	Windage           float64 `json:"windage"`
	WindageAdjustment float64 `json:"windage_adjustment"` //MOA
	Lead              float64 `json:"lead"`
	Energy            float64 `json:"energy"`
}

//TrajectoryResponse is the answer to POST /v1/trajectory
type TrajectoryResponse struct {
	BallisticCoefficient float64         `json:"bc"` //corrected for the atmosphere
	MuzzleAngle          float64         `json:"muzzle_angle"`
	Rows                 []TrajectoryRow `json:"rows"`
}

//PointBlankRequest is the body of POST /v1/point-blank
type PointBlankRequest struct {
	BallisticCoefficient float64 `json:"bc"`
	MuzzleVelocity       float64 `json:"muzzle_velocity"`
	MaximumOrdinate      float64 `json:"max_ordinate"`
	SightHeight          float64 `json:"sight_height"`
	ClicksPerMOA         float64 `json:"clicks_per_moa"` //4 if omitted
	MuzzleAngle          float64 `json:"muzzle_angle"`   //degrees
}

//PointBlankResponse is the answer to POST /v1/point-blank
type PointBlankResponse struct {
	Zero   float64 `json:"zero"`
	Range  float64 `json:"range"`
	Clicks float64 `json:"clicks"`
}

type errorResponse struct {
	Error string `json:"error"`
}

//Server answers the solver requests. All handlers share one solver.
type Server struct {
	solver  go_ingalls.TrajectorySolver
	metrics *MetricsCollector
	limiter *IPRateLimiter
	logger  *slog.Logger
}

//NewServer creates the server with the configuration specified
func NewServer(solver go_ingalls.TrajectorySolver, config Config, metrics *MetricsCollector, logger *slog.Logger) *Server {
	return &Server{
		solver:  solver,
		metrics: metrics,
		limiter: NewIPRateLimiter(config.RequestsPerMinute, config.Burst),
		logger:  logger,
	}
}

//Handler returns the routes of the service
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /v1/trajectory", s.metrics.Instrument("trajectory", s.limiter.Middleware(http.HandlerFunc(s.handleTrajectory))))
	mux.Handle("POST /v1/point-blank", s.metrics.Instrument("point-blank", s.limiter.Middleware(http.HandlerFunc(s.handlePointBlank))))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", s.metrics.Handler())
	return mux
}

//writeJSON fails only when the client went away, the status is sent by then
func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := writeJSON(w, status, v); err != nil {
		s.logger.Warn("response not written", "path", r.URL.Path, "status", status, "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.respond(w, r, status, errorResponse{Error: message})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		s.logger.Info("malformed request", "path", r.URL.Path, "error", err)
		s.respondError(w, r, http.StatusBadRequest, "malformed request: "+err.Error())
		return false
	}
	return true
}

//fail answers 422 for the inputs the solver rejects and 500 otherwise
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	kind := ""
	switch {
	case errors.Is(err, go_ingalls.ErrOutOfRange):
		kind = "out_of_range"
	case errors.Is(err, go_ingalls.ErrDegenerateInput):
		kind = "degenerate"
	case errors.Is(err, go_ingalls.ErrConvergence):
		kind = "convergence"
	}
	if kind == "" {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		s.respondError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	s.metrics.RecordSolverError(kind)
	s.logger.Info("request rejected", "path", r.URL.Path, "kind", kind, "error", err)
	s.respondError(w, r, http.StatusUnprocessableEntity, err.Error())
}

func (req TrajectoryRequest) atmosphere() (go_ingalls.Atmosphere, error) {
	if req.Altitude == nil && req.Temperature == nil && req.Pressure == nil && req.Humidity == nil {
		return go_ingalls.CreateDefaultAtmosphere(), nil
	}
	standard := go_ingalls.CreateDefaultAtmosphere()
	altitude := standard.Altitude()
	temperature := standard.Temperature()
	pressure := standard.Pressure()
	humidity := standard.Humidity()
	if req.Altitude != nil {
		altitude = unit.MustCreateDistance(*req.Altitude, unit.DistanceFoot)
	}
	if req.Temperature != nil {
		temperature = unit.MustCreateTemperature(*req.Temperature, unit.TemperatureFahrenheit)
	}
	if req.Pressure != nil {
		pressure = unit.MustCreatePressure(*req.Pressure, unit.PressureInHg)
	}
	if req.Humidity != nil {
		if !(*req.Humidity >= 0 && *req.Humidity <= 100) {
			return standard, fmt.Errorf("humidity %g%% is not in 0..100: %w", *req.Humidity, go_ingalls.ErrDegenerateInput)
		}
		humidity = *req.Humidity / 100
	}
	return go_ingalls.CreateAtmosphere(altitude, pressure, temperature, humidity)
}

func (s *Server) handleTrajectory(w http.ResponseWriter, r *http.Request) {
	var req TrajectoryRequest
	if !s.decode(w, r, &req) {
		return
	}

	atmosphere, err := req.atmosphere()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	bc, err := go_ingalls.CreateBallisticCoefficient(req.BallisticCoefficient, go_ingalls.DragTableG1)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ammunition := go_ingalls.CreateAmmunition(
		go_ingalls.CreateProjectile(bc, unit.MustCreateWeight(req.BulletWeight, unit.WeightGrain)),
		unit.MustCreateVelocity(req.MuzzleVelocity, unit.VelocityFPS))
	weapon := go_ingalls.CreateWeapon(unit.MustCreateDistance(req.SightHeight, unit.DistanceInch),
		unit.MustCreateDistance(req.ZeroRange, unit.DistanceYard))
	shot := go_ingalls.CreateShotParameters(unit.MustCreateDistance(req.MaximumRange, unit.DistanceYard),
		unit.MustCreateDistance(req.Step, unit.DistanceYard))
	shot.SetTargetSpeed(unit.MustCreateVelocity(req.TargetSpeed, unit.VelocityMPH))
	wind := go_ingalls.CreateWindInfo(unit.MustCreateVelocity(req.WindSpeed, unit.VelocityMPH),
		unit.MustCreateAngular(req.WindAngle, unit.AngularDegree))

	modified := atmosphere.ModifyBallisticCoefficient(req.BallisticCoefficient)
	angle, err := s.solver.MuzzleAngleDegreesForZeroRange(req.MuzzleVelocity, req.ZeroRange, req.SightHeight, modified)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	shot = withMuzzleAngle(shot, angle)

	data, err := s.solver.Trajectory(ammunition, weapon, atmosphere, shot, wind)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.metrics.RecordTrajectory(len(data))

	response := TrajectoryResponse{
		BallisticCoefficient: modified,
		MuzzleAngle:          angle,
		Rows:                 make([]TrajectoryRow, 0, len(data)),
	}
	for _, d := range data {
		response.Rows = append(response.Rows, TrajectoryRow{
			Range:             d.TravelledDistance().In(unit.DistanceYard),
			Velocity:          d.Velocity().In(unit.VelocityFPS),
			Time:              d.Time().TotalSeconds(),
			Drop:              d.Drop().In(unit.DistanceInch),
			Path:              d.Path().In(unit.DistanceInch),
			PathAdjustment:    d.PathAdjustment().In(unit.AngularMOA),
			Windage:           d.Windage().In(unit.DistanceInch),
			WindageAdjustment: d.WindageAdjustment().In(unit.AngularMOA),
			Lead:              d.Lead().In(unit.DistanceInch),
			Energy:            d.Energy().In(unit.EnergyFootPound),
		})
	}
	s.respond(w, r, http.StatusOK, response)
}

//withMuzzleAngle fixes the angle found for the response so the table is not searched for it twice
func withMuzzleAngle(shot go_ingalls.ShotParameters, angle float64) go_ingalls.ShotParameters {
	fixed := go_ingalls.CreateShotParametersWithAngle(unit.MustCreateAngular(angle, unit.AngularDegree),
		shot.MaximumDistance(), shot.Step())
	fixed.SetTargetSpeed(shot.TargetSpeed())
	return fixed
}

func (s *Server) handlePointBlank(w http.ResponseWriter, r *http.Request) {
	var req PointBlankRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.ClicksPerMOA == 0 {
		req.ClicksPerMOA = 4
	}

	zero, err := s.solver.MaximumPointBlankRangeZero(req.BallisticCoefficient, req.MuzzleVelocity, req.MaximumOrdinate)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	pointBlank, err := s.solver.MaximumPointBlankRange(req.BallisticCoefficient, req.MuzzleVelocity, req.MaximumOrdinate)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	clicks, err := s.solver.ClicksToReachMaximumPointBlankRangeZero(req.BallisticCoefficient, req.SightHeight,
		req.ClicksPerMOA, req.MaximumOrdinate, req.MuzzleVelocity, req.MuzzleAngle)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, PointBlankResponse{Zero: zero, Range: pointBlank, Clicks: clicks})
}
