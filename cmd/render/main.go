package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"sphere-raytracer/internal/batch"
	"sphere-raytracer/internal/config"
	"sphere-raytracer/internal/export"
	"sphere-raytracer/internal/joblist"
	"sphere-raytracer/internal/postprocess"
	"sphere-raytracer/internal/scenefile"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	jobFile := flag.String("jobs", "", "Path to an XML job list")
	outputDir := flag.String("output", "", "Output directory (default: output)")
	format := flag.String("format", "", "Output format: png, webp, tga, bmp, tiff (default: png)")
	scale := flag.Float64("scale", 0, "Resize output by this factor (default: 1)")
	filter := flag.String("filter", "", "Resize filter: nearest, bilinear, catmullrom (default: nearest)")
	width := flag.Int("width", 0, "Override canvas width")
	height := flag.Int("height", 0, "Override canvas height")
	shadows := flag.String("shadows", "", "Override shadow testing: on or off")
	depth := flag.Int("depth", -1, "Override reflection recursion depth")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	list := flag.Bool("list", false, "List built-in scenes and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: render [options] [scene ...]\n\n")
		fmt.Fprintf(os.Stderr, "A scene is a built-in name (%s) or a JSON scene file.\n\n", strings.Join(scenefile.PresetNames(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for _, n := range scenefile.PresetNames() {
			fmt.Println(n)
		}
		return
	}

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
	err := cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		JobList:   *jobFile,
		Format:    *format,
		Scale:     *scale,
		Filter:    *filter,
		Width:     *width,
		Height:    *height,
		Shadows:   *shadows,
		MaxDepth:  *depth,
		Workers:   *workers,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	outFormat, err := export.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Collect jobs
	var jobs []joblist.Job
	if cfg.JobList != "" {
		jobs, err = joblist.Parse(cfg.JobList)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading job list: %v\n", err)
			os.Exit(1)
		}
	}
	for _, arg := range flag.Args() {
		jobs = append(jobs, joblist.Job{
			Name:  strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg)),
			Scene: arg,
		})
	}
	if len(jobs) == 0 {
		jobs = append(jobs, joblist.Job{Name: "reflection", Scene: "reflection"})
	}

	fmt.Printf("Sphere ray tracer → %s\n", strings.ToUpper(string(outFormat)))
	fmt.Printf("Jobs: %d, Workers: %d\n", len(jobs), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    outFormat,
		Scale:     cfg.Scale,
		Filter:    postprocess.Filter(cfg.Filter),
		Workers:   cfg.Workers,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Shadows:   cfg.Shadows,
		MaxDepth:  cfg.MaxDepth,
		Progress:  2 * time.Second,
	}

	results := batch.Run(ctx, batchCfg, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			fmt.Printf("  %s: %dx%d in %v → %s\n", r.Name, r.Width, r.Height, r.Elapsed.Round(time.Millisecond), r.Output)
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(jobs))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	if success > 0 {
		manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
		if err := batch.WriteManifest(manifestPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
