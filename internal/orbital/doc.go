// Package orbital computes what an inner planet looks like from an
// observer on another circular orbit around the same star.
//
// The package is the pure core of venuslab: two [OrbitPosition] values go
// in, an [Observation] comes out, and nothing is cached or mutated in
// between. All angles are radians internally; callers convert for display.
//
//	obs, err := orbital.Observe(
//	    orbital.OrbitPosition{RadiusAU: 1.0, AngleDeg: 0},
//	    orbital.OrbitPosition{RadiusAU: orbital.VenusOrbitAU, AngleDeg: 90},
//	)
//
// # Singularities
//
// Coincident observer and planet make the sight-line direction undefined,
// so [Observe] fails with [ErrDegenerateGeometry] instead of returning
// NaN. A body radius of zero would put it on the star itself and is
// rejected up front with [ErrInvalidRadius].
package orbital
