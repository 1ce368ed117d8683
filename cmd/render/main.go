package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"solar-renderer/internal/batch"
	"solar-renderer/internal/config"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Frame width in pixels (default: 800)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 600)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 300)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90)")
	format := flag.String("format", "", "Per-frame output format: webp or tga (default: webp)")
	animate := flag.Bool("animate", false, "Also assemble frames into an animated WebP")

	flag.Parse()

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
	if err := cfg.Resolve(config.Flags{
		Width:     *width,
		Height:    *height,
		Frames:    *frames,
		OutputDir: *outputDir,
		Quality:   *quality,
		Workers:   *workers,
		Format:    *format,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *animate {
		cfg.Animate = true
	}

	fmt.Println("Solar System Renderer")
	fmt.Printf("Frames: %d at %dx%d, Workers: %d\n", cfg.Frames, cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s (%s)\n", cfg.OutputDir, cfg.Format)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Frames:       cfg.Frames,
		TimeStep:     cfg.TimeStep,
		FrameDelayMS: cfg.FrameDelayMS,
		Supersample:  cfg.Supersample,
		Workers:      cfg.Workers,
		OutputDir:    cfg.OutputDir,
		Format:       cfg.Format,
	}

	results, err := batch.Run(batchCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

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

	fmt.Printf("Rendered: %d/%d\n", success, cfg.Frames)

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	if cfg.Animate && failed == 0 {
		aniPath := filepath.Join(cfg.OutputDir, "animation.webp")
		fmt.Printf("Assembling animation: %s\n", aniPath)
		if err := batch.RunAnimation(batchCfg, aniPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
