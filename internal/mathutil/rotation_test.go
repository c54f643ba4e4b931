package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestRotateTesseractCorner(t *testing.T) {
	p := Point{-1, -1, -1, -1}
	Rotate(p, math.Pi/4, 0, 3)

	assert.InDelta(t, 0, p[0], tol)
	assert.Equal(t, -1.0, p[1])
	assert.Equal(t, -1.0, p[2])
	assert.InDelta(t, -math.Sqrt2, p[3], tol)
}

func TestRotatePreservesPlaneLength(t *testing.T) {
	p := Point{0.3, -2.5, 7, 1.25, -4}
	for _, pl := range Planes(len(p)) {
		for _, theta := range []float64{-3.1, -0.5, 0.01, 1, math.Pi, 12.7} {
			q := p.Clone()
			before := q[pl.A]*q[pl.A] + q[pl.B]*q[pl.B]
			Rotate(q, theta, pl.A, pl.B)
			after := q[pl.A]*q[pl.A] + q[pl.B]*q[pl.B]
			assert.InDelta(t, before, after, tol, "plane %v theta %v", pl, theta)

			for i := range p {
				if i != pl.A && i != pl.B {
					assert.Equal(t, p[i], q[i])
				}
			}
		}
	}
}

func TestRotateZeroIsIdentity(t *testing.T) {
	p := Point{1.5, -2, 3, 0.25}
	q := p.Clone()
	Rotate(q, 0, 1, 2)
	for i := range p {
		assert.InDelta(t, p[i], q[i], tol)
	}
}

func TestRotateOutOfRangeIsNoop(t *testing.T) {
	orig := Point{1, 2, 3}
	for _, axes := range [][2]int{{0, 3}, {3, 0}, {5, 7}, {-1, 2}, {1, -4}} {
		p := orig.Clone()
		Rotate(p, 1.234, axes[0], axes[1])
		assert.Equal(t, orig, p, "axes %v", axes)
	}
}

func TestRotatedLeavesInputAlone(t *testing.T) {
	p := Point{-1, -1, -1, -1}
	q := Rotated(p, math.Pi/4, 0, 3)

	assert.Equal(t, Point{-1, -1, -1, -1}, p)
	inPlace := p.Clone()
	Rotate(inPlace, math.Pi/4, 0, 3)
	assert.Equal(t, inPlace, q)
}

func TestRotationOrderMatters(t *testing.T) {
	p := Point{1, 0, 0, 0}

	ab := p.Clone()
	Rotate(ab, math.Pi/2, 0, 1)
	Rotate(ab, math.Pi/2, 1, 2)

	ba := p.Clone()
	Rotate(ba, math.Pi/2, 1, 2)
	Rotate(ba, math.Pi/2, 0, 1)

	assert.InDelta(t, 1, ab[2], tol)
	assert.InDelta(t, 1, ba[1], tol)

	// disjoint planes commute
	x, y := Point{1, 2, 3, 4}, Point{1, 2, 3, 4}
	Rotate(x, 0.7, 0, 1)
	Rotate(x, -1.1, 2, 3)
	Rotate(y, -1.1, 2, 3)
	Rotate(y, 0.7, 0, 1)
	for i := range x {
		assert.InDelta(t, x[i], y[i], tol)
	}
}

func TestRotatePlanes(t *testing.T) {
	p := Point{-1, -1, -1, -1}
	RotatePlanes(p, []PlaneRotation{
		{Plane: Plane{0, 3}, Speed: 0.5},
		{Plane: Plane{4, 5}, Speed: 1}, // skipped
	}, math.Pi/2)

	want := Rotated(Point{-1, -1, -1, -1}, math.Pi/4, 0, 3)
	for i := range p {
		assert.InDelta(t, want[i], p[i], tol)
	}
}

func TestPlanes(t *testing.T) {
	assert.Nil(t, Planes(1))
	assert.Equal(t, []Plane{{0, 1}, {0, 2}, {1, 2}}, Planes(3))
	require.Len(t, Planes(5), 10)

	assert.True(t, Plane{0, 3}.Valid(4))
	assert.False(t, Plane{0, 4}.Valid(4))
	assert.False(t, Plane{2, 2}.Valid(4))
	assert.False(t, Plane{-1, 2}.Valid(4))
}

func transpose(m Mat3) Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func TestCamerasAreOrthonormal(t *testing.T) {
	id := Mat3Identity()
	for name, cam := range map[string]Mat3{"tilt": DefaultCamera, "front": FrontCamera} {
		p := Mat3Mul(transpose(cam), cam)
		for i := range p {
			assert.InDelta(t, id[i], p[i], 1e-12, name)
		}
	}
	assert.Equal(t, id, FrontCamera)
}
