// README: Route trace model and JSON normalization for the two upstream point shapes.
package route

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedTracePoint is returned when a trace element is neither a keyed
// object nor a 4-element [lat, lng, elevation, speed] array.
var ErrMalformedTracePoint = errors.New("malformed trace point")

// TracePoint is one sample along the planned route. Speed is in km/h,
// elevation in meters.
type TracePoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lon"`
	Elevation float64 `json:"elevation"`
	Speed     float64 `json:"speed"`
}

// Trace is an ordered sequence of points; order is travel order.
type Trace []TracePoint

// UnmarshalJSON accepts both representations the upstream emits:
// {"lat":..,"lon":..,"elevation":..,"speed":..} and [lat, lon, elevation, speed].
// Anything else fails the whole request rather than defaulting silently; in
// particular a keyed object must carry all four fields, so null, {}, or a
// misspelled key cannot decode into a phantom point at (0,0).
func (p *TracePoint) UnmarshalJSON(data []byte) error {
	var obj struct {
		Lat       *float64 `json:"lat"`
		Lng       *float64 `json:"lon"`
		Elevation *float64 `json:"elevation"`
		Speed     *float64 `json:"speed"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		if obj.Lat == nil || obj.Lng == nil || obj.Elevation == nil || obj.Speed == nil {
			return fmt.Errorf("%w: %s", ErrMalformedTracePoint, data)
		}
		p.Lat, p.Lng, p.Elevation, p.Speed = *obj.Lat, *obj.Lng, *obj.Elevation, *obj.Speed
		return nil
	}

	var tuple []float64
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedTracePoint, data)
	}
	if len(tuple) != 4 {
		return fmt.Errorf("%w: want 4 values, got %d", ErrMalformedTracePoint, len(tuple))
	}
	p.Lat, p.Lng, p.Elevation, p.Speed = tuple[0], tuple[1], tuple[2], tuple[3]
	return nil
}
