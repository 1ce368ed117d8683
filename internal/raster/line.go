package raster

// DrawLine steps pixels from (x0, y0) to (x1, y1) with the integer
// Bresenham algorithm, writing a thickness×thickness block at every
// step through the same depth-tested Point policy. Both endpoints are
// included; thickness below 1 draws nothing.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, depth float64, thickness int, c Color) {
	if thickness < 1 {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		for oy := 0; oy < thickness; oy++ {
			for ox := 0; ox < thickness; ox++ {
				fb.Point(x0+ox, y0+oy, depth, c)
			}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
