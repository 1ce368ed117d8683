// Package batch renders frame sequences: a worker pool for
// independent per-frame files, and a sequential path that assembles
// frames into one animated WebP.
package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"solar-renderer/internal/postprocess"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/scene"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Config holds all shared settings for a batch run.
type Config struct {
	Width        int
	Height       int
	Frames       int
	TimeStep     float64
	FrameDelayMS int
	Supersample  int
	Workers      int
	OutputDir    string
	Format       string // "webp" or "tga"
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

func (c Config) timeAt(frame int) float64 {
	return float64(frame) * c.TimeStep
}

// Run renders all frames to individual files using a worker pool.
// Every worker owns its own scene and framebuffer; trails are
// replayed per frame so frame order does not matter.
func Run(cfg Config) ([]Result, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("batch: create output dir: %w", err)
	}

	total := cfg.Frames
	results := make([]Result, total)
	var rendered atomic.Int64

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
				p := rendered.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			ss := cfg.Supersample
			sc := scene.New(cfg.Width*ss, cfg.Height*ss)
			fb, err := raster.NewFramebuffer(cfg.Width*ss, cfg.Height*ss)
			if err != nil {
				for idx := range frameChan {
					results[idx] = Result{Frame: idx, Error: err.Error()}
					rendered.Add(1)
				}
				return
			}

			for idx := range frameChan {
				results[idx] = renderFrame(cfg, sc, fb, idx)
				rendered.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results, nil
}

func renderFrame(cfg Config, sc *scene.Scene, fb *raster.Framebuffer, idx int) Result {
	sc.ReplayTrails(idx, cfg.timeAt)
	sc.RenderFrame(fb, cfg.timeAt(idx))

	img := fb.Image()
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%04d.%s", idx, cfg.Format))
	if err := WriteImage(outPath, cfg.Format, img); err != nil {
		return Result{Frame: idx, Path: outPath, Error: err.Error()}
	}

	return Result{Frame: idx, Path: outPath, Success: true}
}

// WriteImage encodes img to path in the given format ("tga" writes
// TGA, anything else WebP).
func WriteImage(path, format string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "tga":
		if err := tga.Encode(f, img); err != nil {
			return fmt.Errorf("TGA encode: %w", err)
		}
	default:
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
	}
	return nil
}
