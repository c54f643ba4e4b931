package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"hypercube-renderer/internal/postprocess"
	"hypercube-renderer/internal/raster"
	"hypercube-renderer/internal/scene"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Scene     *scene.Scene
	OutputDir string
	Render    raster.Options
	Workers   int
}

// Job is one still to render: the scene at time T.
type Job struct {
	Index int
	T     float64
}

// Result holds the outcome of processing one job.
type Result struct {
	Index   int
	T       float64
	Image   string // path relative to OutputDir
	Success bool
	Error   string
}

// Frames spreads n jobs evenly over one period, starting at t = 0.
func Frames(n int, period float64) []Job {
	if n <= 0 {
		return nil
	}
	jobs := make([]Job, n)
	for i := range jobs {
		jobs[i] = Job{Index: i, T: period * float64(i) / float64(n)}
	}
	return jobs
}

// FrameName is the file name used for frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%04d.webp", i)
}

// Run renders all jobs using a worker pool.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, job Job) Result {
	res := Result{Index: job.Index, T: job.T, Image: FrameName(job.Index)}

	if cfg.Scene == nil {
		res.Error = "no scene"
		return res
	}

	frame := cfg.Scene.Frame(job.T)
	img := raster.RenderWireframe(frame, cfg.Render)

	if cfg.Render.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Render.Supersample)
	}

	outPath := filepath.Join(cfg.OutputDir, res.Image)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		res.Error = fmt.Sprintf("WebP encode: %v", err)
		return res
	}

	res.Success = true
	return res
}
