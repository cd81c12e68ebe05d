package orbital

import (
	"math"
	"testing"
)

func TestClassifyPhase(t *testing.T) {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	tests := []struct {
		name string
		deg  float64
		want Phase
	}{
		{"zero", 0, PhaseNew},
		{"just under new boundary", 44.9, PhaseNew},
		{"crescent lower edge", 45, PhaseCrescent},
		{"quarter lower edge", 90, PhaseQuarter},
		{"gibbous lower edge", 135, PhaseGibbous},
		{"just under full", 179.9, PhaseGibbous},
		{"full", 180, PhaseFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyPhase(rad(tt.deg)); got != tt.want {
				t.Errorf("ClassifyPhase(%g°) = %v, want %v", tt.deg, got, tt.want)
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseNew, "new"},
		{PhaseCrescent, "crescent"},
		{PhaseQuarter, "quarter"},
		{PhaseGibbous, "gibbous"},
		{PhaseFull, "full"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
