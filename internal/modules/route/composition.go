// README: Highway/residential road mix derived from point speeds.
package route

const (
	// highwayThresholdKmh and residentialThresholdKmh deliberately leave a
	// (60,80) band that counts toward neither bucket.
	highwayThresholdKmh     = 80.0
	residentialThresholdKmh = 60.0
)

// Composition is the share of trace points classified per road bucket.
// The two percentages need not sum to 100.
type Composition struct {
	HighwayPercent     float64
	ResidentialPercent float64
}

// Classify buckets every point by its recorded speed: >= 80 km/h reads as
// highway, <= 60 km/h as residential. An empty trace yields zero shares.
func Classify(trace Trace) Composition {
	if len(trace) == 0 {
		return Composition{}
	}

	var highway, residential int
	for _, p := range trace {
		switch {
		case p.Speed >= highwayThresholdKmh:
			highway++
		case p.Speed <= residentialThresholdKmh:
			residential++
		}
	}

	total := float64(len(trace))
	return Composition{
		HighwayPercent:     float64(highway) / total * 100,
		ResidentialPercent: float64(residential) / total * 100,
	}
}
