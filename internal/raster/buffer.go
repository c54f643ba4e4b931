package raster

import (
	"image"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, len = W*H, initialized to -inf
}

// NewFrameBuffer allocates a color buffer filled with bg and a -inf z-buffer.
func NewFrameBuffer(w, h int, bg [4]uint8) *FrameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	color := make([]uint8, n*4)
	if bg != [4]uint8{} {
		for i := 0; i < n; i++ {
			copy(color[i*4:i*4+4], bg[:])
		}
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  color,
		ZBuf:   zbuf,
	}
}

// Plot writes one pixel if it is inside the buffer and not behind what is
// already there. Larger z is nearer.
func (fb *FrameBuffer) Plot(x, y int, z float64, r, g, b uint8) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if z < fb.ZBuf[i] {
		return
	}
	fb.ZBuf[i] = z
	o := i * 4
	fb.Color[o] = r
	fb.Color[o+1] = g
	fb.Color[o+2] = b
	fb.Color[o+3] = 255
}

// Image copies the color buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
