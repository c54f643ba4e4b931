package raster

import (
	"image"

	"hypercube-renderer/internal/mathutil"
	"hypercube-renderer/internal/scene"
	"hypercube-renderer/internal/viewmatrix"
)

// Options controls how a frame is drawn.
type Options struct {
	Size        int // output side in pixels, before supersampling
	Supersample int
	Margin      int // pixels, before supersampling
	LineWidth   int // pixels, before supersampling
	DotRadius   int // 0 disables vertex dots
	Camera      mathutil.Mat3
	Palette     Palette
}

// DefaultOptions returns the standard wireframe look for a size×size image.
func DefaultOptions(size, supersample int) Options {
	if supersample < 1 {
		supersample = 1
	}
	return Options{
		Size:        size,
		Supersample: supersample,
		Margin:      16,
		LineWidth:   1,
		DotRadius:   1,
		Camera:      mathutil.DefaultCamera,
		Palette:     DefaultPalette(),
	}
}

// RenderWireframe draws the frame's edges (and optionally its vertices) to
// an NRGBA image of side Size*Supersample. Edges touching a non-finite
// point are skipped.
func RenderWireframe(f scene.Frame, opts Options) *image.NRGBA {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	renderSize := opts.Size * ss

	fb := NewFrameBuffer(renderSize, renderSize, opts.Palette.Background)
	sc := viewmatrix.ToScreen(f.Points, opts.Camera, renderSize, opts.Margin*ss)

	zRange := sc.ZMax - sc.ZMin
	if zRange < 1e-9 {
		zRange = 1
	}

	for _, e := range f.Edges {
		a, b := e.Start, e.End
		if a >= len(f.Points) || b >= len(f.Points) || !sc.Drawable[a] || !sc.Drawable[b] {
			continue
		}
		DrawLine(fb,
			sc.X[a], sc.Y[a], sc.Z[a],
			sc.X[b], sc.Y[b], sc.Z[b],
			opts.LineWidth*ss, sc.ZMin, zRange, &opts.Palette)
	}

	if opts.DotRadius > 0 {
		for i := range f.Points {
			if !sc.Drawable[i] {
				continue
			}
			r, g, b := opts.Palette.Shade((sc.Z[i] - sc.ZMin) / zRange)
			// Nudge dots in front of the edges meeting there.
			DrawDot(fb, sc.X[i], sc.Y[i], sc.Z[i]+1e-6, opts.DotRadius*ss, r, g, b)
		}
	}

	return fb.Image()
}
