package route

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name            string
		speeds          []float64
		wantHighway     float64
		wantResidential float64
	}{
		{
			name:            "empty trace",
			speeds:          nil,
			wantHighway:     0,
			wantResidential: 0,
		},
		{
			name:            "all highway",
			speeds:          []float64{80, 95, 120, 100},
			wantHighway:     100,
			wantResidential: 0,
		},
		{
			name:            "mixed city drive",
			speeds:          []float64{120, 30, 85, 25, 40},
			wantHighway:     40,
			wantResidential: 60,
		},
		{
			name: "dead zone counts toward neither bucket",
			// 61..79 km/h is deliberately unclassified.
			speeds:          []float64{70, 65, 90, 50},
			wantHighway:     25,
			wantResidential: 25,
		},
		{
			name:            "boundary speeds",
			speeds:          []float64{80, 60},
			wantHighway:     50,
			wantResidential: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace := make(Trace, len(tt.speeds))
			for i, s := range tt.speeds {
				trace[i] = TracePoint{Speed: s}
			}

			got := Classify(trace)
			if got.HighwayPercent != tt.wantHighway {
				t.Errorf("HighwayPercent = %f, want %f", got.HighwayPercent, tt.wantHighway)
			}
			if got.ResidentialPercent != tt.wantResidential {
				t.Errorf("ResidentialPercent = %f, want %f", got.ResidentialPercent, tt.wantResidential)
			}
		})
	}
}
