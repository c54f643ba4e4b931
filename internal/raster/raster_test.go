package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypercube-renderer/internal/hypercube"
	"hypercube-renderer/internal/mathutil"
	"hypercube-renderer/internal/scene"
)

func alphaAt(fb *FrameBuffer, x, y int) uint8 {
	return fb.Color[(y*fb.Width+x)*4+3]
}

func TestPlotDepthTest(t *testing.T) {
	fb := NewFrameBuffer(4, 4, [4]uint8{})
	fb.Plot(1, 1, 0.5, 10, 20, 30)
	fb.Plot(1, 1, 0.1, 200, 200, 200) // behind, dropped
	fb.Plot(9, 9, 1, 1, 1, 1)         // outside, dropped

	o := (1*4 + 1) * 4
	assert.Equal(t, []uint8{10, 20, 30, 255}, fb.Color[o:o+4])
	assert.Equal(t, 0.5, fb.ZBuf[5])
}

func TestNewFrameBufferBackground(t *testing.T) {
	fb := NewFrameBuffer(2, 1, [4]uint8{1, 2, 3, 4})
	assert.Equal(t, []uint8{1, 2, 3, 4, 1, 2, 3, 4}, fb.Color)
	assert.True(t, math.IsInf(fb.ZBuf[0], -1))
}

func TestDrawLineCoversEndpoints(t *testing.T) {
	fb := NewFrameBuffer(16, 16, [4]uint8{})
	pal := DefaultPalette()
	DrawLine(fb, 2, 3, 0, 13, 9, 1, 1, 0, 1, &pal)

	assert.Equal(t, uint8(255), alphaAt(fb, 2, 3))
	assert.Equal(t, uint8(255), alphaAt(fb, 13, 9))
	assert.Equal(t, uint8(0), alphaAt(fb, 2, 12))
}

func TestShadeRamp(t *testing.T) {
	pal := DefaultPalette()
	nr, ng, nb := pal.Shade(1)
	fr, fg, fb := pal.Shade(0)
	assert.Greater(t, int(nr)+int(ng)+int(nb), int(fr)+int(fg)+int(fb))

	// out-of-range depth clamps
	r0, g0, b0 := pal.Shade(-3)
	assert.Equal(t, [3]uint8{fr, fg, fb}, [3]uint8{r0, g0, b0})
	r1, g1, b1 := pal.Shade(math.NaN())
	assert.Equal(t, [3]uint8{fr, fg, fb}, [3]uint8{r1, g1, b1})
}

func TestRenderWireframeTesseract(t *testing.T) {
	s, err := scene.New(4, 2.5, []mathutil.PlaneRotation{
		{Plane: mathutil.Plane{A: 0, B: 3}, Speed: 1},
	})
	require.NoError(t, err)

	img := RenderWireframe(s.Frame(0.4), DefaultOptions(64, 2))
	require.Equal(t, 128, img.Bounds().Dx())

	drawn := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			drawn++
		}
	}
	assert.Greater(t, drawn, 100)
}

func TestRenderWireframeSkipsSingularPoints(t *testing.T) {
	f := scene.Frame{
		Points: []mathutil.Vec3{{0, 0, 0}, {1, 0, 0}, {math.Inf(1), 0, 0}},
		Edges:  []hypercube.Edge{{Start: 0, End: 1}, {Start: 1, End: 2}},
	}
	opts := DefaultOptions(32, 1)
	opts.DotRadius = 0
	img := RenderWireframe(f, opts)

	assert.Equal(t, 32, img.Bounds().Dy())
}
