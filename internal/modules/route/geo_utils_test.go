package route

import (
	"math"
	"testing"
)

func TestDistance_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		p1        TracePoint
		p2        TracePoint
		wantM     float64
		tolerance float64
	}{
		{
			name:      "same point",
			p1:        TracePoint{Lat: 25.033, Lng: 121.565},
			p2:        TracePoint{Lat: 25.033, Lng: 121.565},
			wantM:     0,
			tolerance: 0.001,
		},
		{
			name:      "Taipei 101 to Taipei Main Station (~5km)",
			p1:        TracePoint{Lat: 25.0340, Lng: 121.5645},
			p2:        TracePoint{Lat: 25.0478, Lng: 121.5170},
			wantM:     5200,
			tolerance: 1000,
		},
		{
			name:      "New York to Los Angeles (~3944km)",
			p1:        TracePoint{Lat: 40.7128, Lng: -74.0060},
			p2:        TracePoint{Lat: 34.0522, Lng: -118.2437},
			wantM:     3944000,
			tolerance: 50000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.p1, tt.p2)
			if math.Abs(got-tt.wantM) > tt.tolerance {
				t.Errorf("Distance() = %f, want %f (±%f)", got, tt.wantM, tt.tolerance)
			}
		})
	}
}

func TestDistance_Symmetry(t *testing.T) {
	a := TracePoint{Lat: 25.0, Lng: 121.0}
	b := TracePoint{Lat: 26.0, Lng: 122.0}
	d1 := Distance(a, b)
	d2 := Distance(b, a)
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("distance is not symmetric: %f vs %f", d1, d2)
	}
}
