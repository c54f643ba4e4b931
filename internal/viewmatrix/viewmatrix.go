package viewmatrix

import (
	"math"

	"hypercube-renderer/internal/mathutil"
)

// Screen holds per-point canvas coordinates. Z grows toward the viewer.
// Drawable[i] is false for points that projected to Inf or NaN.
type Screen struct {
	X, Y, Z  []float64
	Drawable []bool
	ZMin     float64
	ZMax     float64
}

// ToScreen applies the camera rotation and fits the finite points into a
// size×size canvas, keeping margin pixels free on each side.
func ToScreen(points []mathutil.Vec3, cam mathutil.Mat3, size, margin int) Screen {
	n := len(points)
	sc := Screen{
		X:        make([]float64, n),
		Y:        make([]float64, n),
		Z:        make([]float64, n),
		Drawable: make([]bool, n),
	}

	// Compute bounding box of all transformed finite points
	allMin := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	allMax := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	tv := make([]mathutil.Vec3, n)
	found := false
	for i, p := range points {
		if !p.IsFinite() {
			continue
		}
		tv[i] = cam.MulVec3(p)
		sc.Drawable[i] = true
		found = true
		for k := 0; k < 3; k++ {
			if tv[i][k] < allMin[k] {
				allMin[k] = tv[i][k]
			}
			if tv[i][k] > allMax[k] {
				allMax[k] = tv[i][k]
			}
		}
	}
	if !found {
		return sc
	}

	center := [2]float64{
		(allMin[0] + allMax[0]) / 2,
		(allMin[1] + allMax[1]) / 2,
	}
	span := math.Max(allMax[0]-allMin[0], allMax[1]-allMin[1])
	if span < 0.001 {
		span = 0.001
	}
	scale := float64(size-2*margin) / span
	half := float64(size) / 2

	for i := range points {
		if !sc.Drawable[i] {
			continue
		}
		// Screen Y points down.
		sc.X[i] = half + (tv[i][0]-center[0])*scale
		sc.Y[i] = half - (tv[i][1]-center[1])*scale
		sc.Z[i] = tv[i][2]
	}
	sc.ZMin, sc.ZMax = allMin[2], allMax[2]

	return sc
}
