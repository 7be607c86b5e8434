// README: Builds route traces from Google Directions + Elevation.
package routeplan

import (
	"context"
	"fmt"
	"math"
	"time"

	"googlemaps.github.io/maps"

	"roadfit/internal/modules/route"
	"roadfit/internal/types"
)

// maxTracePoints caps the trace length so the Elevation request stays within
// one API call.
const maxTracePoints = 50

// Builder handles interactions with Google Maps API.
type Builder struct {
	client *maps.Client
}

// NewBuilder creates a new Builder with the given API Key.
func NewBuilder(apiKey string) (*Builder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Builder{client: client}, nil
}

// PlanTrace drives the Directions API from origin to destination, decodes the
// step polylines into points with per-step speeds, samples them down, and
// attaches elevations. It returns the trace plus the trip length in km and
// the driving time in rounded-up hours.
func (b *Builder) PlanTrace(ctx context.Context, origin, destination types.Point) (route.Trace, float64, int, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin.String(),
		Destination: destination.String(),
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := b.client.Directions(ctx, r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, 0, 0, fmt.Errorf("no route found")
	}

	var (
		trace         route.Trace
		totalMeters   int
		totalDuration time.Duration
	)
	for _, leg := range routes[0].Legs {
		totalMeters += leg.Distance.Meters
		totalDuration += leg.Duration

		legSpeed := speedKmh(leg.Distance.Meters, leg.Duration)
		for _, step := range leg.Steps {
			speed := speedKmh(step.Distance.Meters, step.Duration)
			if speed == 0 {
				speed = legSpeed
			}
			lls, _ := step.Polyline.Decode()
			for _, ll := range lls {
				trace = append(trace, route.TracePoint{Lat: ll.Lat, Lng: ll.Lng, Speed: speed})
			}
		}
	}

	trace = sample(trace, maxTracePoints)
	if err := b.attachElevations(ctx, trace); err != nil {
		return nil, 0, 0, err
	}

	lengthKm := float64(totalMeters) / 1000
	hours := int(math.Ceil(totalDuration.Hours()))
	return trace, lengthKm, hours, nil
}

func (b *Builder) attachElevations(ctx context.Context, trace route.Trace) error {
	if len(trace) == 0 {
		return nil
	}

	locations := make([]maps.LatLng, len(trace))
	for i, p := range trace {
		locations[i] = maps.LatLng{Lat: p.Lat, Lng: p.Lng}
	}

	results, err := b.client.Elevation(ctx, &maps.ElevationRequest{Locations: locations})
	if err != nil {
		return fmt.Errorf("elevation api error: %w", err)
	}
	// Results come back in request order.
	for i := range trace {
		if i < len(results) {
			trace[i].Elevation = results[i].Elevation
		}
	}
	return nil
}

func speedKmh(meters int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(meters) / d.Seconds() * 3.6
}

// sample strides through points so at most max survive, always keeping the
// last point.
func sample(trace route.Trace, max int) route.Trace {
	if len(trace) <= max {
		return trace
	}
	stride := float64(len(trace)-1) / float64(max-1)
	out := make(route.Trace, 0, max)
	for i := 0; i < max; i++ {
		out = append(out, trace[int(math.Round(float64(i)*stride))])
	}
	return out
}
