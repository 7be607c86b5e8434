package recommend

import (
	"context"
	"errors"
	"math"
	"testing"

	"roadfit/internal/ai"
	"roadfit/internal/modules/inventory"
	"roadfit/internal/modules/route"
	"roadfit/internal/modules/trip"
	"roadfit/internal/types"
)

type stubSource struct {
	vehicles []inventory.Vehicle
	err      error
}

func (s *stubSource) Lookup(_ context.Context, _ types.ID) ([]inventory.Vehicle, error) {
	return s.vehicles, s.err
}

type stubPlanner struct {
	trace    route.Trace
	lengthKm float64
	hours    int
	err      error
	calls    int
}

func (s *stubPlanner) PlanTrace(_ context.Context, _, _ types.Point) (route.Trace, float64, int, error) {
	s.calls++
	return s.trace, s.lengthKm, s.hours, s.err
}

type stubAdvisor struct {
	note string
	err  error
}

func (s *stubAdvisor) Explain(_ context.Context, _ ai.Summary) (string, error) {
	return s.note, s.err
}

func highwayTrace() route.Trace {
	return route.Trace{
		{Lat: 52.52001, Lng: 13.40494, Elevation: 36.5, Speed: 120},
		{Lat: 52.53, Lng: 13.41, Elevation: 40.0, Speed: 110},
		{Lat: 52.54, Lng: 13.42, Elevation: 38.0, Speed: 95},
	}
}

func testVehicles() []inventory.Vehicle {
	return []inventory.Vehicle{
		{
			ID: "golf", Brand: "VOLKSWAGEN", Model: "GOLF",
			Transmission: "Automatic", PassengerCount: 5, BagCount: 4,
			HasDiscount: true, CostEur: 36400,
		},
		{
			ID: "tcross", Brand: "VOLKSWAGEN", Model: "T-CROSS",
			Transmission: "Automatic", PassengerCount: 5, BagCount: 4,
			IsRecommended: true, CostEur: 28800,
		},
	}
}

func clearWeatherRequest() Request {
	return Request{
		Trip: trip.Context{
			OccupantCount: 3, LargeBagCount: 1, SmallBagCount: 2,
			TripLengthKm: 10, TripLengthHours: 1,
			Preference: trip.PreferComfort, Transmission: trip.TransmissionAuto,
			DriverSkill: trip.SkillComfortable, ParkingDifficulty: 5,
		},
		Weather: trip.Weather{ConditionCode: 800, TemperatureC: 20, VisibilityM: 10000},
		Trace:   highwayTrace(),
	}
}

func TestEvaluate_ClearHighwayTrip(t *testing.T) {
	svc := NewService(nil, nil, nil, 3)

	req := clearWeatherRequest()
	req.Vehicles = testVehicles()

	resp, err := svc.Evaluate(context.Background(), req)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	// Clear weather contributes nothing; only trip length (0.5) and time (0.5)
	// remain, and every point moves at highway speed.
	if math.Abs(resp.RiskScore-1.0) > 1e-9 {
		t.Errorf("RiskScore = %f, want 1.0", resp.RiskScore)
	}
	if resp.HighwayPercent != 100 {
		t.Errorf("HighwayPercent = %f, want 100", resp.HighwayPercent)
	}
	if resp.ConditionMultiplier != 1.0 {
		t.Errorf("ConditionMultiplier = %f, want 1.0", resp.ConditionMultiplier)
	}
	if resp.TotalAscentM <= 0 || resp.TotalDescentM <= 0 {
		t.Errorf("expected both ascent and descent, got %f / %f", resp.TotalAscentM, resp.TotalDescentM)
	}

	// The recommended, cheaper T-Cross outranks the Golf.
	if len(resp.Vehicles) != 2 {
		t.Fatalf("ranked %d vehicles, want 2", len(resp.Vehicles))
	}
	if resp.Vehicles[0].ID != "tcross" || resp.Vehicles[0].Rank != 1 {
		t.Errorf("top vehicle = %s/%d, want tcross/1", resp.Vehicles[0].ID, resp.Vehicles[0].Rank)
	}
	if resp.Vehicles[1].ID != "golf" || resp.Vehicles[1].Rank != 2 {
		t.Errorf("second vehicle = %s/%d, want golf/2", resp.Vehicles[1].ID, resp.Vehicles[1].Rank)
	}
}

func TestEvaluate_NoTrace(t *testing.T) {
	svc := NewService(nil, nil, nil, 3)

	req := clearWeatherRequest()
	req.Trace = nil

	_, err := svc.Evaluate(context.Background(), req)
	if !errors.Is(err, ErrNoTrace) {
		t.Errorf("Evaluate() error = %v, want ErrNoTrace", err)
	}
}

func TestEvaluate_PlannerBuildsTraceAndTripLengths(t *testing.T) {
	planner := &stubPlanner{trace: highwayTrace(), lengthKm: 10, hours: 1}
	svc := NewService(nil, planner, nil, 3)

	req := clearWeatherRequest()
	req.Trace = nil
	req.Trip.TripLengthKm = 0
	req.Trip.TripLengthHours = 0
	req.Origin = &types.Point{Lat: 52.52, Lng: 13.40}
	req.Destination = &types.Point{Lat: 48.13, Lng: 11.58}
	req.Vehicles = testVehicles()

	resp, err := svc.Evaluate(context.Background(), req)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if planner.calls != 1 {
		t.Errorf("planner calls = %d, want 1", planner.calls)
	}
	// Trip lengths from the planner flow into the risk score: 5*0.1 + 0.5*1.
	if math.Abs(resp.RiskScore-1.0) > 1e-9 {
		t.Errorf("RiskScore = %f, want 1.0", resp.RiskScore)
	}
}

func TestEvaluate_BookingLookup(t *testing.T) {
	svc := NewService(&stubSource{vehicles: testVehicles()}, nil, nil, 3)

	req := clearWeatherRequest()
	req.BookingID = "bk-1"

	resp, err := svc.Evaluate(context.Background(), req)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(resp.Vehicles) != 2 {
		t.Errorf("ranked %d vehicles, want 2", len(resp.Vehicles))
	}
}

func TestEvaluate_BookingLookupFailure(t *testing.T) {
	svc := NewService(&stubSource{err: inventory.ErrBookingNotFound}, nil, nil, 3)

	req := clearWeatherRequest()
	req.BookingID = "bk-404"

	_, err := svc.Evaluate(context.Background(), req)
	if !errors.Is(err, inventory.ErrBookingNotFound) {
		t.Errorf("Evaluate() error = %v, want ErrBookingNotFound", err)
	}
}

func TestEvaluate_EmptyVehicleSetIsValid(t *testing.T) {
	svc := NewService(nil, nil, nil, 3)

	req := clearWeatherRequest()

	resp, err := svc.Evaluate(context.Background(), req)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(resp.Vehicles) != 0 {
		t.Errorf("ranked %d vehicles, want 0", len(resp.Vehicles))
	}
	if resp.RiskScore == 0 {
		t.Errorf("metrics should still be computed for an empty candidate set")
	}
}

func TestEvaluate_AdvisorNote(t *testing.T) {
	req := clearWeatherRequest()
	req.Vehicles = testVehicles()

	svc := NewService(nil, nil, &stubAdvisor{note: "Great fit for a calm highway run."}, 3)
	resp, err := svc.Evaluate(context.Background(), req)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if resp.AdvisorNote != "Great fit for a calm highway run." {
		t.Errorf("AdvisorNote = %q", resp.AdvisorNote)
	}

	// Advisor failures are advisory only.
	svc = NewService(nil, nil, &stubAdvisor{err: errors.New("quota exhausted")}, 3)
	resp, err = svc.Evaluate(context.Background(), req)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if resp.AdvisorNote != "" {
		t.Errorf("AdvisorNote = %q, want empty on advisor failure", resp.AdvisorNote)
	}
}

func TestEvaluate_TopNTruncation(t *testing.T) {
	vehicles := testVehicles()
	extra := vehicles[0]
	extra.ID = "passat"
	extra.CostEur = 41000
	vehicles = append(vehicles, extra)

	svc := NewService(nil, nil, nil, 2)

	req := clearWeatherRequest()
	req.Vehicles = vehicles

	resp, err := svc.Evaluate(context.Background(), req)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if len(resp.Vehicles) != 2 {
		t.Fatalf("ranked %d vehicles, want 2", len(resp.Vehicles))
	}
	for i, v := range resp.Vehicles {
		if v.Rank != i+1 {
			t.Errorf("rank at %d = %d, want %d", i, v.Rank, i+1)
		}
	}
}
