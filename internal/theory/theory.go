// Package theory decides whether a phase observation is compatible with
// geocentric and heliocentric world models.
//
// The decision is a fixed rule table over two discriminants: where the
// observer's orbit sits relative to the planet's, and whether the phase
// angle exceeds a quarter phase (90°, strictly). Heliocentrism explains
// every configuration; geocentrism only survives one corner of the table.
package theory

import "math"

// Case identifies which row of the compatibility rule table applies.
type Case int

const (
	// InnerObserverAllPhases: the observer orbits inside the planet and
	// sees a gibbous-or-fuller disk. A geocentrist can explain this by
	// treating the planet as a superior body.
	InnerObserverAllPhases Case = iota

	// InnerObserverCrescentOnly: inner observer, crescent phase. Matches
	// the geocentric prediction, but only coincidentally.
	InnerObserverCrescentOnly

	// OuterObserverImpossible: outer observer seeing more than a quarter
	// phase. Geocentrism would need the planet beyond the star.
	OuterObserverImpossible

	// OuterObserverCrescentOnly: outer observer, crescent phase. Agrees
	// with the geocentric prediction.
	OuterObserverCrescentOnly

	// CoOrbital: observer and planet share an orbit exactly.
	CoOrbital
)

func (c Case) String() string {
	switch c {
	case InnerObserverAllPhases:
		return "inner-observer-all-phases"
	case InnerObserverCrescentOnly:
		return "inner-observer-crescent-only"
	case OuterObserverImpossible:
		return "outer-observer-impossible"
	case OuterObserverCrescentOnly:
		return "outer-observer-crescent-only"
	case CoOrbital:
		return "co-orbital"
	default:
		return "unknown"
	}
}

// Verdict reports model compatibility for one observed configuration.
type Verdict struct {
	Case                   Case
	GeocentricCompatible   bool
	HeliocentricCompatible bool
	GeocentricRationale    string
	HeliocentricRationale  string
}

const heliocentricRationale = "the planet orbits the star, so every phase is observable"

// Evaluate applies the rule table. phaseAngle is in radians; the quarter
// boundary is strict (exactly 90° counts as crescent-side), and exact
// radius equality is its own branch rather than folding into either side.
func Evaluate(phaseAngle, observerRadiusAU, planetRadiusAU float64) Verdict {
	v := Verdict{
		Case:                   classify(phaseAngle, observerRadiusAU, planetRadiusAU),
		HeliocentricCompatible: true,
		HeliocentricRationale:  heliocentricRationale,
	}

	switch v.Case {
	case InnerObserverAllPhases:
		v.GeocentricCompatible = true
		v.GeocentricRationale = "observer orbits inside the planet, which behaves like a superior body; all phases fit a geocentric reading"
	case InnerObserverCrescentOnly:
		v.GeocentricRationale = "crescent phases only; matches the geocentric prediction, but the agreement is coincidental"
	case OuterObserverImpossible:
		v.GeocentricRationale = "cannot be explained geocentrically: the planet would have to sit beyond the star"
	case OuterObserverCrescentOnly:
		v.GeocentricRationale = "crescent phases only; consistent with the geocentric prediction"
	case CoOrbital:
		v.GeocentricRationale = "degenerate co-orbital configuration; no geocentric account applies"
	}
	return v
}

func classify(phaseAngle, observerRadiusAU, planetRadiusAU float64) Case {
	// Strictly beyond quarter phase; exactly 90° stays on the crescent side.
	beyondQuarter := phaseAngle > math.Pi/2

	switch {
	case observerRadiusAU == planetRadiusAU:
		return CoOrbital
	case observerRadiusAU < planetRadiusAU && beyondQuarter:
		return InnerObserverAllPhases
	case observerRadiusAU < planetRadiusAU:
		return InnerObserverCrescentOnly
	case beyondQuarter:
		return OuterObserverImpossible
	default:
		return OuterObserverCrescentOnly
	}
}
