package ai

// Summary is the condensed recommendation outcome handed to the Advisor.
type Summary struct {
	// TopVehicle is the "brand model" of the best-ranked candidate.
	TopVehicle string

	// RiskScore is the trip risk in [0,100].
	RiskScore float64

	// HighwayPercent is the share of the route driven at highway speeds.
	HighwayPercent float64

	// MaxSlope is the steepest elevation/distance ratio along the route.
	MaxSlope float64

	// Preference is what the renter said they value most (comfort, price, ...).
	Preference string
}
