package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"hypercube-renderer/internal/hypercube"
	"hypercube-renderer/internal/mathutil"
)

func main() {
	dims := flag.Int("dim", 4, "Number of dimensions (>= 3)")
	dist := flag.Float64("dist", 2.5, "Perspective distance")
	theta := flag.Float64("theta", math.Pi/4, "Rotation angle in radians")
	a1 := flag.Int("a1", 0, "First rotation axis")
	a2 := flag.Int("a2", 3, "Second rotation axis")
	vertex := flag.Int("vertex", 0, "Vertex index to trace")
	showEdges := flag.Bool("edges", false, "List every edge")
	flag.Parse()

	if *dims < 3 {
		fmt.Fprintf(os.Stderr, "Error: -dim must be at least 3, got %d\n", *dims)
		os.Exit(1)
	}

	verts, err := hypercube.Vertices(*dims)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	edges, err := hypercube.Edges(*dims)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d vertices and %d edges for %dD cube.\n", len(verts), len(edges), *dims)

	if *vertex < 0 || *vertex >= len(verts) {
		fmt.Fprintf(os.Stderr, "Error: -vertex out of range [0, %d)\n", len(verts))
		os.Exit(1)
	}

	p := verts[*vertex]
	fmt.Printf("Original %dD point: %v\n", *dims, p)

	if !(mathutil.Plane{A: *a1, B: *a2}).Valid(*dims) {
		fmt.Printf("Warning: %d-%d is not a rotation plane of %dD space.\n", *a1, *a2, *dims)
	}
	mathutil.Rotate(p, *theta, *a1, *a2)
	fmt.Printf("Rotated %dD point: %v\n", *dims, p)

	v := mathutil.Project(p, *dist)
	fmt.Printf("Projected 3D point: %v\n", v)
	if !v.IsFinite() {
		fmt.Println("Warning: perspective distance hit a coordinate; projection is singular.")
	}

	if *showEdges {
		for _, e := range edges {
			fmt.Printf("  %v\n", e)
		}
	}
}
