// README: Common value objects shared across modules.
package types

import "fmt"

// ID is an opaque identifier (vehicle id, booking id). Stable within a request.
type ID string

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64
	Lng float64
}

// String renders the point in the "lat,lng" form the Google APIs accept.
func (p Point) String() string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}
