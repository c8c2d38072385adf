package pixmath

import (
	"fmt"
	"math"
)

// DrawLine walks the Bresenham line from (x0, y0) to (x1, y1), both ends included,
// and calls fn for every point inside the bitmap. Returning false from fn stops the walk.
func (b *Bitmap[T]) DrawLine(x0, y0, x1, y1 int, fn func(x, y int) bool) {
	dx := x1 - x0
	sx := 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	dy := y0 - y1
	sy := -1
	if dy < 0 {
		sy = 1
	} else {
		dy = -dy
	}

	e := dx + dy
	for {
		if b.inside(x0, y0) && !fn(x0, y0) {
			return
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawLineColor paints a solid line. Parts of the line outside the bitmap are skipped.
func (b *Bitmap[T]) DrawLineColor(x0, y0, x1, y1 int, c Color[T]) error {
	if err := b.checkAlpha(c); err != nil {
		return fmt.Errorf("draw (%d,%d)-(%d,%d): %w", x0, y0, x1, y1, err)
	}
	b.DrawLine(x0, y0, x1, y1, func(x, y int) bool {
		b.put(b.offset(x, y), c)
		return true
	})
	return nil
}

// DrawVector paints a line from (x0, y0) along v, the end point is rounded to the nearest pixel.
func (b *Bitmap[T]) DrawVector(x0, y0 int, v Vector, c Color[T]) error {
	x1 := int(math.Round(float64(x0) + v.X))
	y1 := int(math.Round(float64(y0) + v.Y))
	return b.DrawLineColor(x0, y0, x1, y1, c)
}

// DrawLineF steps uniformly from (x0, y0) to (x1, y1) in ⌈length⌉ steps, calling fn at every
// sub-pixel position including both ends. Points are not bounds checked.
// A zero-length line calls fn once. Returning false from fn stops the walk.
func DrawLineF(x0, y0, x1, y1 float64, fn func(x, y float64) bool) {
	lx, ly := x1-x0, y1-y0
	n := int(math.Ceil(math.Hypot(lx, ly)))
	if n <= 0 {
		fn(x0, y0)
		return
	}
	dx, dy := lx/float64(n), ly/float64(n)
	x, y := x0, y0
	for i := 0; i <= n; i++ {
		if !fn(x, y) {
			return
		}
		x += dx
		y += dy
	}
}
