package viz

import (
	"math"
	"strings"
)

// RenderPhaseDisk draws the planet's disk as seen by the observer:
// illuminated side toward the star, terminator from the phase angle.
//
// sunAngle is the direction from the planet toward the star in plan-view
// coordinates (radians); phaseAngle follows the calculator's convention
// where 0 is a fully lit disk. Cells are sampled at 2:1 horizontal
// stretch to compensate for terminal glyph aspect.
func RenderPhaseDisk(phaseAngle, sunAngle float64, diameter int) string {
	if diameter < 3 {
		diameter = 3
	}
	rows := diameter
	cols := diameter * 2

	sx, sy := math.Cos(sunAngle), math.Sin(sunAngle)
	// The terminator ellipse's semi-minor axis along the sun direction
	// shrinks with cos(phase); negative values swallow the lit side.
	term := math.Cos(phaseAngle)

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			// Normalize to the unit disk, +y up.
			x := (float64(col)/float64(cols-1))*2 - 1
			y := 1 - (float64(row)/float64(rows-1))*2

			r2 := x*x + y*y
			if r2 > 1 {
				b.WriteByte(' ')
				continue
			}

			// Coordinate along the sun direction and across it.
			u := x*sx + y*sy
			v := -x*sy + y*sx

			lit := u >= -term*math.Sqrt(math.Max(0, 1-v*v))
			if lit {
				b.WriteRune('█')
			} else {
				b.WriteRune('░')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
