package raster

import (
	"fmt"
	"image"
	"math"
)

// Framebuffer holds the rendering target as flat slices for cache
// locality: an RGBA color buffer and a parallel depth buffer. Depth is
// smaller-is-nearer; Clear resets every entry to +Inf so the first
// write at any pixel always lands.
type Framebuffer struct {
	Width      int
	Height     int
	Pix        []uint8   // RGBA interleaved, len = W*H*4
	Depth      []float64 // depth per pixel, len = W*H
	Background Color
}

// NewFramebuffer allocates a cleared buffer. A non-positive dimension
// is the one construction-time hard failure of the pipeline.
func NewFramebuffer(w, h int) (*Framebuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: invalid framebuffer size %dx%d", w, h)
	}
	fb := &Framebuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
		Depth:  make([]float64, w*h),
	}
	fb.Clear()
	return fb, nil
}

// Clear resets every pixel to the background color and every depth
// entry to +Inf. Must precede the draw calls of a frame.
func (fb *Framebuffer) Clear() {
	r, g, b := fb.Background.RGB()
	for i := 0; i < len(fb.Pix); i += 4 {
		fb.Pix[i] = r
		fb.Pix[i+1] = g
		fb.Pix[i+2] = b
		fb.Pix[i+3] = 255
	}
	for i := range fb.Depth {
		fb.Depth[i] = math.Inf(1)
	}
}

// Point writes c at (x, y) if depth is strictly nearer than the stored
// value. Out-of-bounds coordinates are a no-op. Color and depth update
// together; at equal depth the existing pixel wins.
func (fb *Framebuffer) Point(x, y int, depth float64, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	idx := y*fb.Width + x
	if depth >= fb.Depth[idx] {
		return
	}
	fb.Depth[idx] = depth
	r, g, b := c.RGB()
	pi := idx * 4
	fb.Pix[pi] = r
	fb.Pix[pi+1] = g
	fb.Pix[pi+2] = b
	fb.Pix[pi+3] = 255
}

// At returns the packed 0xRRGGBB color stored at (x, y), or the
// background color for out-of-bounds coordinates.
func (fb *Framebuffer) At(x, y int) uint32 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return fb.Background.Hex()
	}
	pi := (y*fb.Width + x) * 4
	return uint32(fb.Pix[pi])<<16 | uint32(fb.Pix[pi+1])<<8 | uint32(fb.Pix[pi+2])
}

// DepthAt returns the stored depth at (x, y), +Inf when out of bounds.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return math.Inf(1)
	}
	return fb.Depth[y*fb.Width+x]
}

// Image copies the color buffer into a freshly allocated NRGBA image
// for the presentation layer.
func (fb *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Pix)
	return img
}
