package raster

import "math"

// Palette holds depth-cue colors. Near edges take Near, far edges fade to Far.
type Palette struct {
	Near       [3]uint8
	Far        [3]uint8
	Background [4]uint8
	Exposure   float64
	InvGamma   float64
}

// DefaultPalette returns a cyan-to-indigo ramp on a transparent background.
func DefaultPalette() Palette {
	return Palette{
		Near:     [3]uint8{120, 240, 255},
		Far:      [3]uint8{40, 30, 110},
		Exposure: 1.6,
		InvGamma: 1.0 / 2.2,
	}
}

// Shade returns the sRGB color for a normalized depth in [0, 1], 1 = nearest.
// Mixing happens in linear space followed by ACES tone mapping.
func (pl *Palette) Shade(depth float64) (r, g, b uint8) {
	if depth < 0 || math.IsNaN(depth) {
		depth = 0
	}
	if depth > 1 {
		depth = 1
	}

	var out [3]uint8
	for k := 0; k < 3; k++ {
		lin := srgbToLinear[pl.Far[k]] + depth*(srgbToLinear[pl.Near[k]]-srgbToLinear[pl.Far[k]])
		mapped := ACESTonemap(lin * pl.Exposure)
		out[k] = clamp255(math.Pow(mapped, pl.InvGamma) * 255)
	}
	return out[0], out[1], out[2]
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
