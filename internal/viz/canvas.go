package viz

import (
	"math"
	"strings"
)

// Braille patterns: 2x4 dots per character cell.
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille-dot drawing surface. Dot coordinates run over
// (Width*2) x (Height*4) sub-pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the dot at sub-pixel (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets every cell to the empty braille character.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line in sub-pixel coordinates using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle traces a circle outline centered at (cx, cy) with sub-pixel
// radius r. Step count scales with radius to keep the outline closed.
func (c *Canvas) DrawCircle(cx, cy, r int) {
	if r <= 0 {
		c.Set(cx, cy)
		return
	}
	steps := 8 * r
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		c.Set(cx+int(math.Round(float64(r)*math.Cos(theta))), cy+int(math.Round(float64(r)*math.Sin(theta))))
	}
}

// FillCircle fills a disk, used for body markers.
func (c *Canvas) FillCircle(cx, cy, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Projection maps world AU coordinates onto canvas sub-pixels, +y up.
type Projection struct {
	canvas  *Canvas
	rangeAU float64
}

// NewProjection centers the star and scales so [-rangeAU, rangeAU] spans
// the canvas in both axes.
func NewProjection(c *Canvas, rangeAU float64) Projection {
	return Projection{canvas: c, rangeAU: rangeAU}
}

func (p Projection) point(x, y float64) (int, int) {
	w := float64(p.canvas.Width*2 - 1)
	h := float64(p.canvas.Height*4 - 1)
	px := (x + p.rangeAU) / (2 * p.rangeAU) * w
	py := (p.rangeAU - y) / (2 * p.rangeAU) * h
	return int(math.Round(px)), int(math.Round(py))
}

func (p Projection) radius(r float64) int {
	h := float64(p.canvas.Height*4 - 1)
	return int(math.Round(r / (2 * p.rangeAU) * h))
}

// Orbit draws a circular orbit of radius rAU around the star.
func (p Projection) Orbit(rAU float64) {
	cx, cy := p.point(0, 0)
	p.canvas.DrawCircle(cx, cy, p.radius(rAU))
}

// Body draws a filled marker at world (x, y).
func (p Projection) Body(x, y float64, size int) {
	cx, cy := p.point(x, y)
	p.canvas.FillCircle(cx, cy, size)
}

// SightLine draws the observer-to-planet line.
func (p Projection) SightLine(ox, oy, px, py float64) {
	x0, y0 := p.point(ox, oy)
	x1, y1 := p.point(px, py)
	p.canvas.DrawLine(x0, y0, x1, y1)
}
