// README: Ranking of scored vehicles.
package scoring

import (
	"sort"

	"roadfit/internal/modules/inventory"
	"roadfit/internal/modules/route"
	"roadfit/internal/modules/trip"
)

// DefaultTopN is how many ranked vehicles a response carries unless
// configured otherwise.
const DefaultTopN = 3

// ScoredVehicle pairs a candidate with its score and 1-based rank.
type ScoredVehicle struct {
	Vehicle inventory.Vehicle
	Score   float64
	Rank    int
}

// Rank scores every candidate, orders them best-first, and truncates to topN.
// The sort is stable: exact ties keep their original relative order. Ranks are
// a contiguous 1..len(result) sequence. An empty candidate list yields an
// empty result.
func Rank(vehicles []inventory.Vehicle, t trip.Context, riskScore float64, m route.Metrics, c route.Composition, topN int) []ScoredVehicle {
	scored := make([]ScoredVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		scored = append(scored, ScoredVehicle{
			Vehicle: v,
			Score:   Score(v, t, riskScore, m, c),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topN > 0 && len(scored) > topN {
		scored = scored[:topN]
	}
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}
