package sweep

import (
	"math"
	"testing"

	"github.com/jmpark/venuslab/internal/orbital"
	"github.com/jmpark/venuslab/internal/theory"
)

func TestRunSampleCount(t *testing.T) {
	observer := orbital.OrbitPosition{RadiusAU: 1.0, AngleDeg: 0}
	r, err := Run(observer, 0.72, 10)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(r.Samples) != 36 {
		t.Errorf("got %d samples, want 36", len(r.Samples))
	}
	if r.Skipped != 0 {
		t.Errorf("skipped %d samples, want 0", r.Skipped)
	}
}

func TestRunInvalidStep(t *testing.T) {
	observer := orbital.OrbitPosition{RadiusAU: 1.0, AngleDeg: 0}
	for _, step := range []float64{0, -5, 121} {
		if _, err := Run(observer, 0.72, step); err == nil {
			t.Errorf("step %g: expected an error", step)
		}
	}
}

func TestRunMaxElongation(t *testing.T) {
	// For circular orbits the greatest elongation is asin(r_planet/r_observer).
	observer := orbital.OrbitPosition{RadiusAU: 1.0, AngleDeg: 0}
	r, err := Run(observer, 0.72, 0.5)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := math.Asin(0.72 / 1.0)
	// The sweep only samples every 0.5°, so allow a coarse tolerance.
	if math.Abs(r.MaxElongation-want) > 0.01 {
		t.Errorf("max elongation = %.4f rad, want ~%.4f", r.MaxElongation, want)
	}
}

func TestRunDistanceRange(t *testing.T) {
	observer := orbital.OrbitPosition{RadiusAU: 1.0, AngleDeg: 0}
	r, err := Run(observer, 0.72, 1)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if math.Abs(r.MinDistanceAU-0.28) > 1e-6 {
		t.Errorf("min distance = %.4f, want 0.28", r.MinDistanceAU)
	}
	if math.Abs(r.MaxDistanceAU-1.72) > 1e-6 {
		t.Errorf("max distance = %.4f, want 1.72", r.MaxDistanceAU)
	}
}

func TestRunCoOrbitalSkips(t *testing.T) {
	// Observer and planet share the orbit; the conjunction sample at the
	// observer's own angle is degenerate and must be skipped, not fatal.
	observer := orbital.OrbitPosition{RadiusAU: 0.72, AngleDeg: 90}
	r, err := Run(observer, 0.72, 10)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if r.Skipped != 1 {
		t.Errorf("skipped %d samples, want 1", r.Skipped)
	}
	if len(r.Samples) != 35 {
		t.Errorf("got %d samples, want 35", len(r.Samples))
	}
}

func TestRunOuterObserverGeocentricFraction(t *testing.T) {
	// From outside the planet's orbit some angles show gibbous phases, which
	// have no geocentric account; the compatible share must be zero.
	observer := orbital.OrbitPosition{RadiusAU: 2.0, AngleDeg: 0}
	r, err := Run(observer, 0.72, 5)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if r.GeocentricFraction != 0 {
		t.Errorf("geocentric fraction = %g, want 0", r.GeocentricFraction)
	}
}

func TestRunInnerObserverPhaseBound(t *testing.T) {
	// From inside the planet's orbit the phase angle is capped at
	// asin(r_observer/r_planet), so the rule table's all-phases branch is
	// never reached by real geometry and every verdict lands crescent-only.
	observer := orbital.OrbitPosition{RadiusAU: 0.39, AngleDeg: 0}
	r, err := Run(observer, 0.72, 5)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	bound := math.Asin(0.39 / 0.72)
	for _, s := range r.Samples {
		if s.Observation.PhaseAngle > bound+1e-9 {
			t.Errorf("angle %g: phase %.4f exceeds geometric bound %.4f",
				s.PlanetAngleDeg, s.Observation.PhaseAngle, bound)
		}
		if s.Verdict.Case != theory.InnerObserverCrescentOnly {
			t.Errorf("angle %g: case %v, want %v",
				s.PlanetAngleDeg, s.Verdict.Case, theory.InnerObserverCrescentOnly)
		}
	}
	if r.GeocentricFraction != 0 {
		t.Errorf("geocentric fraction = %g, want 0", r.GeocentricFraction)
	}
}

func TestSeries(t *testing.T) {
	observer := orbital.OrbitPosition{RadiusAU: 1.0, AngleDeg: 0}
	r, err := Run(observer, 0.72, 30)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	series := r.Series(func(s Sample) float64 { return s.Observation.ObserverPlanetAU })
	if len(series) != len(r.Samples) {
		t.Fatalf("series length %d, want %d", len(series), len(r.Samples))
	}
	for i, s := range r.Samples {
		if series[i] != s.Observation.ObserverPlanetAU {
			t.Errorf("series[%d] = %g, want %g", i, series[i], s.Observation.ObserverPlanetAU)
		}
	}
}
