// README: Recommendation service; runs the metrics/risk/scoring pipeline.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"log"

	"roadfit/internal/ai"
	"roadfit/internal/modules/inventory"
	"roadfit/internal/modules/risk"
	"roadfit/internal/modules/route"
	"roadfit/internal/modules/scoring"
	"roadfit/internal/modules/trip"
	"roadfit/internal/types"
)

var ErrNoTrace = errors.New("no route trace provided")

// VehicleSource resolves a booking id into candidate vehicles.
type VehicleSource interface {
	Lookup(ctx context.Context, bookingID types.ID) ([]inventory.Vehicle, error)
}

// TracePlanner builds a route trace when the request only names endpoints.
// It returns the trace plus the trip length in km and rounded-up hours.
type TracePlanner interface {
	PlanTrace(ctx context.Context, origin, destination types.Point) (route.Trace, float64, int, error)
}

// Service ties the pure scoring core to its collaborators. The collaborators
// are all invoked up front; the core computation itself never blocks.
type Service struct {
	source  VehicleSource
	planner TracePlanner
	advisor ai.Advisor
	topN    int
}

// NewService wires a recommendation service. planner and advisor may be nil;
// source may be nil when callers always pass inline vehicle lists.
func NewService(source VehicleSource, planner TracePlanner, advisor ai.Advisor, topN int) *Service {
	if topN <= 0 {
		topN = scoring.DefaultTopN
	}
	return &Service{source: source, planner: planner, advisor: advisor, topN: topN}
}

// Evaluate scores and ranks the candidate vehicles for one trip.
func (s *Service) Evaluate(ctx context.Context, req Request) (*Response, error) {
	trace := req.Trace
	if len(trace) == 0 && s.planner != nil && req.Origin != nil && req.Destination != nil {
		planned, lengthKm, hours, err := s.planner.PlanTrace(ctx, *req.Origin, *req.Destination)
		if err != nil {
			return nil, fmt.Errorf("plan trace: %w", err)
		}
		trace = planned
		if req.Trip.TripLengthKm == 0 {
			req.Trip.TripLengthKm = lengthKm
		}
		if req.Trip.TripLengthHours == 0 {
			req.Trip.TripLengthHours = hours
		}
	}
	if len(trace) == 0 {
		return nil, ErrNoTrace
	}

	vehicles := req.Vehicles
	if len(vehicles) == 0 && req.BookingID != "" {
		if s.source == nil {
			return nil, inventory.ErrBookingNotFound
		}
		fetched, err := s.source.Lookup(ctx, req.BookingID)
		if err != nil {
			return nil, err
		}
		vehicles = fetched
	}

	// From here on everything is pure and synchronous.
	metrics := route.Aggregate(trace)
	composition := route.Classify(trace)
	riskScore := risk.TotalRisk(risk.Input{
		Weather:            req.Weather,
		Trace:              trace,
		TripLengthKm:       req.Trip.TripLengthKm,
		TripLengthHours:    req.Trip.TripLengthHours,
		ManualTransmission: req.Trip.Transmission == trip.TransmissionManual,
		DriverSkill:        req.Trip.DriverSkill,
	})

	ranked := scoring.Rank(vehicles, req.Trip, riskScore, metrics, composition, s.topN)

	resp := &Response{
		RiskScore:           riskScore,
		ConditionMultiplier: risk.ConditionMultiplier(req.Weather.ConditionCode),
		HighwayPercent:      composition.HighwayPercent,
		MaxSlope:            metrics.MaxSlope,
		TotalAscentM:        metrics.TotalAscentM,
		TotalDescentM:       metrics.TotalDescentM,
		AverageSlope:        metrics.AverageSlope,
		Vehicles:            make([]RankedVehicle, 0, len(ranked)),
	}
	for _, sv := range ranked {
		resp.Vehicles = append(resp.Vehicles, RankedVehicle{ID: sv.Vehicle.ID, Rank: sv.Rank})
	}

	if s.advisor != nil && len(ranked) > 0 {
		s.attachAdvice(ctx, resp, ranked[0], req.Trip)
	}
	return resp, nil
}

// attachAdvice asks the advisor for a note about the top pick. Failures are
// logged and swallowed; the ranking stands on its own.
func (s *Service) attachAdvice(ctx context.Context, resp *Response, top scoring.ScoredVehicle, t trip.Context) {
	note, err := s.advisor.Explain(ctx, ai.Summary{
		TopVehicle:     top.Vehicle.Brand + " " + top.Vehicle.Model,
		RiskScore:      resp.RiskScore,
		HighwayPercent: resp.HighwayPercent,
		MaxSlope:       resp.MaxSlope,
		Preference:     string(t.Preference),
	})
	if err != nil {
		log.Printf("recommend: advisor note skipped: %v", err)
		return
	}
	resp.AdvisorNote = note
}
