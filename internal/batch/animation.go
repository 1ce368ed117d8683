package batch

import (
	"fmt"
	"image"
	"os"

	"solar-renderer/internal/postprocess"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/scene"

	"github.com/HugoSmits86/nativewebp"
)

// RunAnimation renders all frames in order and writes them as one
// animated WebP. Sequential by design: trails accumulate across
// frames, so no replay is needed.
func RunAnimation(cfg Config, outPath string) error {
	ss := cfg.Supersample
	sc := scene.New(cfg.Width*ss, cfg.Height*ss)
	fb, err := raster.NewFramebuffer(cfg.Width*ss, cfg.Height*ss)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	images := make([]image.Image, 0, cfg.Frames)
	durations := make([]uint, 0, cfg.Frames)
	disposals := make([]uint, 0, cfg.Frames)

	for i := 0; i < cfg.Frames; i++ {
		sc.RenderFrame(fb, cfg.timeAt(i))

		img := fb.Image()
		if ss > 1 {
			img = postprocess.Downsample(img, cfg.Width, cfg.Height)
		}

		images = append(images, img)
		durations = append(durations, uint(cfg.FrameDelayMS))
		disposals = append(disposals, 1)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", outPath, err)
	}
	defer f.Close()

	ani := nativewebp.Animation{
		Images:    images,
		Durations: durations,
		Disposals: disposals,
		LoopCount: 0, // loop forever
	}
	if err := nativewebp.EncodeAll(f, &ani, nil); err != nil {
		return fmt.Errorf("batch: WebP animation encode: %w", err)
	}

	return nil
}
