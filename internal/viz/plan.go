package viz

import (
	"github.com/jmpark/venuslab/internal/orbital"
)

const (
	planWidth  = 56
	planHeight = 26
)

// RenderPlanView draws the top-down system view: both orbits, the star,
// the two bodies, and the observer-to-planet sight line. With showZones
// the region inside the planet's orbit is stippled — the part of the
// system where a geocentric reading of the phases stays available.
func RenderPlanView(observer, planet orbital.OrbitPosition, showZones bool) string {
	c := NewCanvas(planWidth, planHeight)

	rangeAU := 1.1 * maxFloat(observer.RadiusAU, planet.RadiusAU)
	if rangeAU < 1.1 {
		rangeAU = 1.1
	}
	p := NewProjection(c, rangeAU)

	if showZones {
		stippleDisk(c, p, planet.RadiusAU)
	}

	p.Orbit(observer.RadiusAU)
	p.Orbit(planet.RadiusAU)

	ox, oy := observer.Cartesian()
	px, py := planet.Cartesian()

	p.SightLine(ox, oy, px, py)
	p.Body(0, 0, 2)   // star
	p.Body(ox, oy, 1) // observer
	p.Body(px, py, 1) // planet

	return c.String()
}

// stippleDisk sparsely fills the disk of radius rAU around the star.
func stippleDisk(c *Canvas, p Projection, rAU float64) {
	cx, cy := p.point(0, 0)
	r := p.radius(rAU)
	for dy := -r; dy <= r; dy += 5 {
		for dx := -r; dx <= r; dx += 5 {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
