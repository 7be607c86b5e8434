// README: Per-vehicle suitability score combining trip, route, and risk inputs.
package scoring

import (
	"math"

	"roadfit/internal/modules/inventory"
	"roadfit/internal/modules/route"
	"roadfit/internal/modules/trip"
)

// priceBonusCostCapEur is the cost ceiling below which price-focused renters
// get the cheap-car bonus.
const priceBonusCostCapEur = 30000

// Score computes the additive suitability score for one vehicle.
// Terms are independent and order-insensitive; the result is unbounded and
// higher is better. Pure function of its inputs.
func Score(v inventory.Vehicle, t trip.Context, riskScore float64, m route.Metrics, c route.Composition) float64 {
	score := 0.0

	if v.IsRecommended {
		score += 20
	}
	if v.IsMoreLuxury {
		score += 15
	}
	if v.HasDiscount {
		score += 10
	}

	// Cost normalized to a 0-100 term; anything from 100k EUR up scores 0 here.
	score += 100 - math.Min(v.CostEur/1000, 100)

	if v.PassengerCount >= t.OccupantCount && v.BagCount >= t.LargeBagCount+t.SmallBagCount {
		score += 10
	}

	score += 0.2 * c.HighwayPercent
	score -= 0.1 * c.ResidentialPercent
	score -= 0.5 * m.MaxSlope
	score -= 0.2 * riskScore

	// The comfort and price bonuses are mutually exclusive, comfort first.
	if t.Preference == trip.PreferComfort && v.IsAutomatic() {
		score += 10
	} else if t.Preference == trip.PreferPrice && v.CostEur < priceBonusCostCapEur {
		score += 15
	}

	score -= 0.5 * float64(t.ParkingDifficulty)

	return score
}
