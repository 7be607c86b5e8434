// README: Composite trip risk model (weather + road + driver factors).
package risk

import (
	"math"

	"roadfit/internal/modules/route"
	"roadfit/internal/modules/trip"
)

const (
	maxRiskScore = 100.0
	// slowSpeedKmh marks a trace point as a slow (non-flowing) segment.
	slowSpeedKmh = 50.0
)

// Input bundles everything the risk model reads.
type Input struct {
	Weather            trip.Weather
	Trace              route.Trace
	TripLengthKm       float64
	TripLengthHours    int
	ManualTransmission bool
	DriverSkill        trip.DriverSkill
}

// ConditionMultiplier maps an OpenWeather condition code to a severity band.
// Exactly one band applies per code; unknown codes read as standard conditions.
//
// The multiplier is reported alongside the total but is NOT folded into it;
// whether TotalRisk should be scaled by it before clamping is an open product
// question, so it stays an available factor only.
func ConditionMultiplier(conditionCode int) float64 {
	switch {
	case conditionCode >= 600 && conditionCode < 700: // snow
		return 1.6
	case (conditionCode >= 200 && conditionCode < 300) || // thunderstorm
		(conditionCode >= 502 && conditionCode < 600): // heavy rain
		return 1.4
	case conditionCode >= 700 && conditionCode < 800: // fog / mist
		return 1.3
	default:
		return 1.0
	}
}

// weatherRisk scores the forecast. Each factor is clamped so a single extreme
// reading cannot dominate the sum.
func weatherRisk(w trip.Weather) float64 {
	snowFactor := math.Min(w.SnowMmPerH, 50)
	rainFactor := math.Min(w.RainMmPerH, 50)
	visibilityFactor := math.Max(0, 100-float64(w.VisibilityM)/10)
	freezeFactor := 0.0
	if w.TemperatureC < 0 {
		freezeFactor = 1
	}
	windFactor := math.Min(w.WindSpeedMps, 30)

	return 0.2*snowFactor + 0.15*rainFactor + 0.25*visibilityFactor +
		10*freezeFactor + 0.3*windFactor
}

// tripRoadRisk scores trip length, duration, and how much of the route moves
// at slow speeds.
func tripRoadRisk(trace route.Trace, tripLengthKm float64, tripLengthHours int) float64 {
	lengthFactor := math.Min(tripLengthKm/100, 10)
	timeFactor := float64(tripLengthHours)

	slowSegments := 0
	for _, p := range trace {
		if p.Speed < slowSpeedKmh {
			slowSegments++
		}
	}
	roadTypeFactor := float64(2 * slowSegments)

	return 5*lengthFactor + 0.5*timeFactor + roadTypeFactor
}

// driverVehicleRisk penalizes a manual gearbox and a driver who asked for
// extra caution.
func driverVehicleRisk(manualTransmission bool, skill trip.DriverSkill) float64 {
	r := 0.0
	if manualTransmission {
		r += 10
	}
	if skill != trip.SkillComfortable {
		r += 5
	}
	return r
}

// TotalRisk sums the three sub-scores and clamps the result at 100.
// All sub-scores are non-negative for documented input ranges, so the
// effective range is [0,100].
func TotalRisk(in Input) float64 {
	score := weatherRisk(in.Weather) +
		tripRoadRisk(in.Trace, in.TripLengthKm, in.TripLengthHours) +
		driverVehicleRisk(in.ManualTransmission, in.DriverSkill)

	return math.Min(score, maxRiskScore)
}
