package mathutil

import "math"

// Plane is a rotation plane spanned by two coordinate axes.
type Plane struct {
	A, B int
}

// Valid reports whether both axes are distinct and inside [0, dim).
func (pl Plane) Valid(dim int) bool {
	return pl.A != pl.B && pl.A >= 0 && pl.B >= 0 && pl.A < dim && pl.B < dim
}

// PlaneRotation is an angular speed (radians per unit time) in one plane.
type PlaneRotation struct {
	Plane Plane
	Speed float64
}

// Planes lists every coordinate plane of an N-dimensional space in
// lexical order: (0,1), (0,2), ..., (dim-2, dim-1).
func Planes(dim int) []Plane {
	if dim < 2 {
		return nil
	}
	out := make([]Plane, 0, dim*(dim-1)/2)
	for a := 0; a < dim; a++ {
		for b := a + 1; b < dim; b++ {
			out = append(out, Plane{a, b})
		}
	}
	return out
}

// Rotate rotates p in place by theta radians in the axis1-axis2 plane.
// All other coordinates are untouched.
//
// An axis outside [0, len(p)) makes the call a no-op. Callers iterating
// generic plane lists over points of varying dimension rely on this.
func Rotate(p Point, theta float64, axis1, axis2 int) {
	if axis1 < 0 || axis2 < 0 || axis1 >= len(p) || axis2 >= len(p) {
		return
	}

	c, s := math.Cos(theta), math.Sin(theta)
	v1, v2 := p[axis1], p[axis2]

	p[axis1] = v1*c - v2*s
	p[axis2] = v1*s + v2*c
}

// Rotated is the non-mutating form of Rotate.
func Rotated(p Point, theta float64, axis1, axis2 int) Point {
	q := p.Clone()
	Rotate(q, theta, axis1, axis2)
	return q
}

// RotatePlanes applies each plane rotation in order, using angle Speed*t.
// Order matters unless the planes are disjoint.
func RotatePlanes(p Point, rots []PlaneRotation, t float64) {
	for _, r := range rots {
		Rotate(p, r.Speed*t, r.Plane.A, r.Plane.B)
	}
}

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
