// Command still renders a single frame of the solar system, or an
// arbitrary OBJ mesh, to one image file. Useful for checking shader
// and camera changes without a full batch run.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"solar-renderer/internal/batch"
	"solar-renderer/internal/config"
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/mesh"
	"solar-renderer/internal/postprocess"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/scene"
	"solar-renderer/internal/shading"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Frame width in pixels (default: 800)")
	height := flag.Int("height", 0, "Frame height in pixels (default: 600)")
	at := flag.Float64("time", 0, "Scene time to render at")
	objPath := flag.String("obj", "", "Render this OBJ file instead of the solar system")
	output := flag.String("output", "still.webp", "Output file (.webp or .tga)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.Resolve(config.Flags{Width: *width, Height: *height}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	format := "webp"
	if strings.HasSuffix(strings.ToLower(*output), ".tga") {
		format = "tga"
	}

	ss := cfg.Supersample
	fb, err := raster.NewFramebuffer(cfg.Width*ss, cfg.Height*ss)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *objPath != "" {
		if err := renderOBJ(fb, *objPath, *at); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		sc := scene.New(cfg.Width*ss, cfg.Height*ss)
		sc.RenderFrame(fb, *at)
	}

	img := fb.Image()
	if ss > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	if err := batch.WriteImage(*output, format, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d)\n", *output, cfg.Width, cfg.Height)
}

// renderOBJ draws a loaded mesh with the ring shader, slowly rotated
// by the given time, against the default camera.
func renderOBJ(fb *raster.Framebuffer, path string, at float64) error {
	verts, err := mesh.LoadOBJ(path)
	if err != nil {
		return err
	}

	cam := scene.NewCamera()
	cam.Eye = mathutil.Vec3{0, 0, 5}

	w := float64(fb.Width)
	h := float64(fb.Height)
	u := raster.Uniforms{
		Model:      mathutil.ModelMatrix(mathutil.Vec3{}, 1, mathutil.Vec3{0, at * 0.001, 0}),
		View:       cam.View(),
		Projection: mathutil.Perspective(mathutil.Deg2Rad(45), w/h, 0.1, 1000),
		Viewport:   mathutil.Viewport(w, h),
		Time:       at,
	}

	fb.Clear()
	light := raster.DefaultLightConfig()
	raster.Render(fb, &u, verts, &light, shading.Ring)
	return nil
}
