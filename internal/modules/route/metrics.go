// README: Slope and distance aggregation over a route trace.
package route

import "math"

// Metrics summarizes the geometry of a trace.
type Metrics struct {
	MaxSlope      float64 // max absolute elevation-delta/distance ratio
	TotalAscentM  float64
	TotalDescentM float64
	AverageSlope  float64
	TotalDistM    float64
}

// Aggregate walks consecutive point pairs and accumulates slope statistics.
// Pairs with zero horizontal distance are skipped so slope stays defined.
// A trace with fewer than two points yields zero metrics.
func Aggregate(trace Trace) Metrics {
	var m Metrics

	for i := 1; i < len(trace); i++ {
		prev, cur := trace[i-1], trace[i]

		dist := Distance(prev, cur)
		if dist == 0 {
			continue
		}

		delta := cur.Elevation - prev.Elevation
		slope := delta / dist
		m.MaxSlope = math.Max(m.MaxSlope, math.Abs(slope))

		if delta > 0 {
			m.TotalAscentM += delta
		} else {
			m.TotalDescentM += -delta
		}
		m.TotalDistM += dist
	}

	if m.TotalDistM > 0 {
		m.AverageSlope = (m.TotalAscentM + m.TotalDescentM) / m.TotalDistM
	}
	return m
}
