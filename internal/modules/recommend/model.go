// README: Recommendation request/response model.
package recommend

import (
	"roadfit/internal/modules/inventory"
	"roadfit/internal/modules/route"
	"roadfit/internal/modules/trip"
	"roadfit/internal/types"
)

// Request is one trip-evaluation request. Exactly one of Trace or the
// Origin/Destination pair supplies route geometry; exactly one of Vehicles or
// BookingID supplies candidates (an empty candidate set is allowed and yields
// an empty ranking).
type Request struct {
	Trip    trip.Context
	Weather trip.Weather

	Trace       route.Trace
	Origin      *types.Point
	Destination *types.Point

	Vehicles  []inventory.Vehicle
	BookingID types.ID
}

// RankedVehicle is one entry of the response ranking.
type RankedVehicle struct {
	ID   types.ID
	Rank int
}

// Response carries the aggregate trip metrics plus the truncated ranking.
// All of it is derived fresh per request; nothing persists.
type Response struct {
	RiskScore           float64
	ConditionMultiplier float64
	HighwayPercent      float64
	MaxSlope            float64
	TotalAscentM        float64
	TotalDescentM       float64
	AverageSlope        float64
	Vehicles            []RankedVehicle

	// AdvisorNote is a best-effort plain-language explanation; empty when no
	// advisor is configured or it failed.
	AdvisorNote string
}
