// README: Rental vehicle records as returned by the booking inventory.
package inventory

import (
	"errors"

	"roadfit/internal/types"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNoVehicles      = errors.New("no vehicles for booking")
	ErrUpstream        = errors.New("inventory upstream unavailable")
)

// Vehicle is a static rental candidate. Candidates are read-only inside a
// request; all derived scoring data lives elsewhere.
type Vehicle struct {
	ID             types.ID
	Brand          string
	Model          string
	AcrissCode     string
	GroupType      string
	Transmission   string // "Automatic" or "Manual"
	FuelType       string
	PassengerCount int
	BagCount       int
	IsNew          bool
	IsRecommended  bool
	IsMoreLuxury   bool
	HasDiscount    bool
	CostEur        float64 // whole currency units
}

// IsAutomatic reports whether the vehicle has an automatic gearbox.
func (v Vehicle) IsAutomatic() bool {
	return v.Transmission == "Automatic"
}
