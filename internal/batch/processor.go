package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"sphere-raytracer/internal/export"
	"sphere-raytracer/internal/joblist"
	"sphere-raytracer/internal/postprocess"
	"sphere-raytracer/internal/raster"
	"sphere-raytracer/internal/scenefile"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir string
	Format    export.Format // default when a job does not name one
	Scale     float64
	Filter    postprocess.Filter
	Workers   int

	// Scene overrides; zero or nil keeps the scene's value.
	Width    int
	Height   int
	Shadows  *bool
	MaxDepth *int

	// Progress is how often a progress line is printed; 0 disables it.
	Progress time.Duration
}

// Result holds the outcome of processing one job.
type Result struct {
	Name    string
	Scene   string
	Output  string
	Width   int
	Height  int
	Spheres int
	Lights  int
	Elapsed time.Duration
	Success bool
	Error   string
}

// Run renders all jobs using a worker pool. Each image is traced on a single
// worker; parallelism is across jobs only. Jobs not yet started when ctx is
// cancelled are reported as failed.
func Run(ctx context.Context, cfg Config, jobs []joblist.Job) []Result {
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
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
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
						fmt.Printf("  [%d/%d] %.2f images/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(ctx, cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(ctx context.Context, cfg Config, job joblist.Job) Result {
	res := Result{Name: job.Name, Scene: job.Scene}
	fail := func(err error) Result {
		res.Error = err.Error()
		return res
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	if err := joblist.ValidName(job.Name); err != nil {
		return fail(err)
	}

	format := cfg.Format
	if job.Format != "" {
		f, err := export.ParseFormat(job.Format)
		if err != nil {
			return fail(err)
		}
		format = f
	}

	desc, err := scenefile.Resolve(job.Scene)
	if err != nil {
		return fail(err)
	}
	cfg.apply(desc)

	res.Width, res.Height = desc.Canvas.Width, desc.Canvas.Height
	res.Spheres, res.Lights = len(desc.Scene.Spheres), len(desc.Scene.Lights)

	began := time.Now()
	canvas := desc.NewCanvas()
	if err := raster.Render(ctx, &desc.Scene, canvas, desc.NewCamera()); err != nil {
		return fail(fmt.Errorf("render: %w", err))
	}
	img := canvas.Image()

	if cfg.Scale > 0 && cfg.Scale != 1 {
		img, err = postprocess.Scale(img, cfg.Scale, cfg.Filter)
		if err != nil {
			return fail(err)
		}
		res.Width, res.Height = img.Bounds().Dx(), img.Bounds().Dy()
	}
	res.Elapsed = time.Since(began)

	res.Output = filepath.Join(cfg.OutputDir, filepath.FromSlash(job.Name)+format.Ext())
	if err := export.Save(res.Output, img, format); err != nil {
		return fail(err)
	}

	res.Success = true
	return res
}

// apply writes the configured overrides into a resolved scene.
func (cfg Config) apply(d *scenefile.Description) {
	if cfg.Width > 0 {
		d.Canvas.Width = cfg.Width
	}
	if cfg.Height > 0 {
		d.Canvas.Height = cfg.Height
	}
	if cfg.Shadows != nil {
		d.Scene.Options.Shadows = *cfg.Shadows
	}
	if cfg.MaxDepth != nil {
		d.Scene.Options.MaxDepth = *cfg.MaxDepth
	}
}
