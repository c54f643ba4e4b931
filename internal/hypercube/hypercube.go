// Package hypercube enumerates the corners and edges of the cube {-1, +1}^D.
//
// Vertex i sits at position i of Vertices' output and its coordinate j is
// +1 when bit j of i is set, -1 otherwise. Edges refer to vertices by that
// index.
package hypercube

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"hypercube-renderer/internal/mathutil"
)

// MaxDimensions is the largest supported D. Vertices(20) holds 20·2^20
// coordinates (160 MiB); every count derived from it fits a 32-bit int.
const MaxDimensions = 20

var (
	ErrNegativeDimensions = errors.New("hypercube: negative dimensions")
	ErrTooManyDimensions  = fmt.Errorf("hypercube: dimensions above %d", MaxDimensions)
)

// Edge joins two vertices whose indices differ in exactly one bit.
// Start < End.
type Edge struct {
	Start int
	End   int
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.Start, e.End)
}

// Check validates a dimension count: 0 <= dims <= MaxDimensions, and the
// coordinate total dims·2^dims must not overflow int.
func Check(dims int) error {
	if dims < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDimensions, dims)
	}
	if dims > MaxDimensions || dims >= bits.UintSize-1 {
		return fmt.Errorf("%w: %d", ErrTooManyDimensions, dims)
	}
	if _, ok := mulInt(dims, 1<<dims); !ok {
		return fmt.Errorf("%w: %d", ErrTooManyDimensions, dims)
	}
	return nil
}

// mulInt returns a*b for non-negative a and b, and false if it exceeds
// math.MaxInt.
func mulInt(a, b int) (int, bool) {
	hi, lo := bits.Mul(uint(a), uint(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

// VertexCount returns 2^dims.
func VertexCount(dims int) (int, error) {
	if err := Check(dims); err != nil {
		return 0, err
	}
	return 1 << dims, nil
}

// EdgeCount returns dims * 2^(dims-1).
func EdgeCount(dims int) (int, error) {
	n, err := VertexCount(dims)
	if err != nil {
		return 0, err
	}
	// dims·2^dims passed Check, so half of it fits as well.
	return dims * n / 2, nil
}

// Vertices returns all 2^dims corners in index order.
// dims == 0 yields one zero-length point.
func Vertices(dims int) ([]mathutil.Point, error) {
	n, err := VertexCount(dims)
	if err != nil {
		return nil, err
	}

	// One backing array, sliced per vertex.
	coords := make([]float64, n*dims)
	verts := make([]mathutil.Point, n)
	for i := 0; i < n; i++ {
		p := mathutil.Point(coords[i*dims : (i+1)*dims : (i+1)*dims])
		for j := 0; j < dims; j++ {
			if (i>>j)&1 == 1 {
				p[j] = 1
			} else {
				p[j] = -1
			}
		}
		verts[i] = p
	}
	return verts, nil
}

// Edges returns the dims * 2^(dims-1) edges of the cube, ordered by Start
// then by axis.
func Edges(dims int) ([]Edge, error) {
	n, err := VertexCount(dims)
	if err != nil {
		return nil, err
	}
	edges := make([]Edge, 0, dims*n/2)
	for i := 0; i < n; i++ {
		for j := 0; j < dims; j++ {
			nb := i ^ (1 << j)
			if i < nb {
				edges = append(edges, Edge{Start: i, End: nb})
			}
		}
	}
	return edges, nil
}
