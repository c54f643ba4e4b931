package raster

import "math"

// DrawLine rasterizes a z-buffered segment with DDA stepping. width is the
// stroke thickness in pixels. Colors come from pal, using depth normalized
// against [zMin, zMin+zRange].
func DrawLine(
	fb *FrameBuffer,
	x0, y0, z0, x1, y1, z1 float64,
	width int,
	zMin, zRange float64,
	pal *Palette,
) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps < 1 {
		steps = 1
	}

	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		x := x0 + dx*t
		y := y0 + dy*t
		z := z0 + (z1-z0)*t
		r, g, b := pal.Shade((z - zMin) / zRange)
		stamp(fb, x, y, z, width, r, g, b)
	}
}

// DrawDot fills a square of side 2*radius+1 centered on (x, y).
func DrawDot(fb *FrameBuffer, x, y, z float64, radius int, r, g, b uint8) {
	stamp(fb, x, y, z, 2*radius+1, r, g, b)
}

func stamp(fb *FrameBuffer, x, y, z float64, width int, r, g, b uint8) {
	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	if width <= 1 {
		fb.Plot(cx, cy, z, r, g, b)
		return
	}
	lo := -(width - 1) / 2
	hi := lo + width
	for oy := lo; oy < hi; oy++ {
		for ox := lo; ox < hi; ox++ {
			fb.Plot(cx+ox, cy+oy, z, r, g, b)
		}
	}
}
