// Package scene drives the per-frame pipeline: the cube is generated once
// for a dimension, then every frame rotates copies of its vertices and
// projects them to 3D.
package scene

import (
	"fmt"
	"sync"

	"hypercube-renderer/internal/hypercube"
	"hypercube-renderer/internal/mathutil"
)

// Scene holds the fixed geometry of one hypercube and how it spins.
type Scene struct {
	Dims            int
	PerspectiveDist float64
	Rotations       []mathutil.PlaneRotation

	vertices []mathutil.Point
	edges    []hypercube.Edge
}

// Frame is one projected snapshot, ready for a renderer.
// Points[i] is the image of vertex i.
type Frame struct {
	T      float64
	Points []mathutil.Vec3
	Edges  []hypercube.Edge
}

// geometry is shared by every scene; a dimension is generated once.
var geometry = hypercube.NewCache()

// New looks up the vertices and edges for dims. Rotations whose axes fall
// outside dims are kept and skipped at rotation time.
func New(dims int, perspectiveDist float64, rots []mathutil.PlaneRotation) (*Scene, error) {
	if dims < 3 {
		return nil, fmt.Errorf("scene: need at least 3 dimensions, got %d", dims)
	}
	g, err := geometry.Get(dims)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	return &Scene{
		Dims:            dims,
		PerspectiveDist: perspectiveDist,
		Rotations:       rots,
		vertices:        g.Vertices,
		edges:           g.Edges,
	}, nil
}

// Vertices returns the unrotated corners. Callers must not modify them.
func (s *Scene) Vertices() []mathutil.Point { return s.vertices }

// Edges returns the edge list, shared by every frame.
func (s *Scene) Edges() []hypercube.Edge { return s.edges }

// Frame rotates a copy of every vertex to time t and projects it.
func (s *Scene) Frame(t float64) Frame {
	pts := make([]mathutil.Vec3, len(s.vertices))
	for i := range s.vertices {
		pts[i] = s.transform(i, t)
	}
	return Frame{T: t, Points: pts, Edges: s.edges}
}

// FrameParallel is Frame with the vertices split across workers.
// Each vertex is independent so no coordination beyond the final wait is
// needed.
func (s *Scene) FrameParallel(t float64, workers int) Frame {
	n := len(s.vertices)
	if workers <= 1 || n < 2*workers {
		return s.Frame(t)
	}

	pts := make([]mathutil.Vec3, n)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				pts[i] = s.transform(i, t)
			}
		}(lo, hi)
	}
	wg.Wait()

	return Frame{T: t, Points: pts, Edges: s.edges}
}

func (s *Scene) transform(i int, t float64) mathutil.Vec3 {
	p := s.vertices[i].Clone()
	mathutil.RotatePlanes(p, s.Rotations, t)
	return mathutil.Project(p, s.PerspectiveDist)
}
