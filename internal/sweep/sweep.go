// Package sweep evaluates a full planetary circuit for a fixed observer.
//
// Holding the observer still while the planet walks its orbit answers the
// questions the single-shot calculator cannot: what is the greatest
// elongation from this vantage point, and over what share of the orbit
// would a geocentrist still have an answer?
package sweep

import (
	"fmt"
	"math"

	"github.com/jmpark/venuslab/internal/orbital"
	"github.com/jmpark/venuslab/internal/theory"
)

// Sample is one evaluated planet angle.
type Sample struct {
	PlanetAngleDeg float64
	Observation    orbital.Observation
	Verdict        theory.Verdict
}

// Result holds the series plus circuit-level summaries.
type Result struct {
	Observer       orbital.OrbitPosition
	PlanetRadiusAU float64
	StepDeg        float64
	Samples        []Sample

	MaxElongation      float64 // greatest on-sky star-planet separation, radians
	MinDistanceAU      float64
	MaxDistanceAU      float64
	GeocentricFraction float64 // share of sampled angles with a geocentric account
	Skipped            int     // degenerate samples (co-orbital conjunction)
}

// Run sweeps the planet angle through [0°, 360°) at stepDeg increments.
func Run(observer orbital.OrbitPosition, planetRadiusAU, stepDeg float64) (*Result, error) {
	if stepDeg <= 0 || stepDeg > 120 {
		return nil, fmt.Errorf("sweep: step %g° out of range (0, 120]", stepDeg)
	}

	r := &Result{
		Observer:       observer,
		PlanetRadiusAU: planetRadiusAU,
		StepDeg:        stepDeg,
	}

	compatible := 0
	for angle := 0.0; angle < 360; angle += stepDeg {
		planet := orbital.OrbitPosition{RadiusAU: planetRadiusAU, AngleDeg: angle}
		obs, err := orbital.Observe(observer, planet)
		if err != nil {
			// A co-orbital observer meets the planet once per circuit;
			// that sample carries no geometry worth keeping.
			r.Skipped++
			continue
		}

		v := theory.Evaluate(obs.PhaseAngle, observer.RadiusAU, planetRadiusAU)
		r.Samples = append(r.Samples, Sample{PlanetAngleDeg: angle, Observation: obs, Verdict: v})

		if v.GeocentricCompatible {
			compatible++
		}
		// Observation.Elongation runs from the anti-starward direction, so
		// the separation on the sky is its supplement.
		if sep := math.Pi - obs.Elongation; sep > r.MaxElongation {
			r.MaxElongation = sep
		}
		if r.MinDistanceAU == 0 || obs.ObserverPlanetAU < r.MinDistanceAU {
			r.MinDistanceAU = obs.ObserverPlanetAU
		}
		if obs.ObserverPlanetAU > r.MaxDistanceAU {
			r.MaxDistanceAU = obs.ObserverPlanetAU
		}
	}

	if len(r.Samples) > 0 {
		r.GeocentricFraction = float64(compatible) / float64(len(r.Samples))
	}
	return r, nil
}

// Series extracts one column of the sweep for plotting.
func (r *Result) Series(pick func(Sample) float64) []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = pick(s)
	}
	return out
}
