package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hypercube-renderer/internal/batch"
	"hypercube-renderer/internal/config"
	"hypercube-renderer/internal/raster"
	"hypercube-renderer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	dims := flag.Int("dim", 0, "Number of dimensions (default: 4)")
	dist := flag.Float64("dist", config.DefaultPerspectiveDist, "Perspective distance")
	frames := flag.Int("frames", 0, "Number of stills over one period (default: 1)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	camera := flag.String("camera", "", "Camera: tilt or front (default: tilt)")

	flag.Parse()

	// -dist 0 is a legal distance, so only an explicit flag overrides the file
	var distFlag *float64
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "dist" {
			distFlag = dist
		}
	})

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Dimensions:      *dims,
		PerspectiveDist: distFlag,
		OutputDir:       *outputDir,
		Frames:          *frames,
		RenderSize:      *size,
		Workers:         *workers,
	})

	if *camera != "" {
		cfg.Camera = *camera
	}
	cam, err := cfg.CameraMatrix()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sc, err := scene.New(cfg.Dimensions, cfg.Perspective(), cfg.PlaneRotations())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, r := range sc.Rotations {
		if !r.Plane.Valid(sc.Dims) {
			fmt.Fprintf(os.Stderr, "Warning: %d-%d is not a rotation plane of %dD space\n",
				r.Plane.A, r.Plane.B, sc.Dims)
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%dD hypercube wireframe → WebP\n", sc.Dims)
	fmt.Printf("Vertices: %d, Edges: %d, Perspective: %.2f\n", len(sc.Vertices()), len(sc.Edges()), sc.PerspectiveDist)
	fmt.Printf("Frames: %d, Workers: %d\n", cfg.Frames, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	opts := raster.DefaultOptions(cfg.RenderSize, cfg.Supersample)
	opts.LineWidth = cfg.LineWidth
	opts.DotRadius = cfg.DotRadius
	opts.Camera = cam

	batchCfg := batch.Config{
		Scene:     sc,
		OutputDir: cfg.OutputDir,
		Render:    opts,
		Workers:   cfg.Workers,
	}

	results := batch.Run(batchCfg, batch.Frames(cfg.Frames, cfg.Period))

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(20, len(errors))
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Image, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, batchCfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
