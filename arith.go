package pixmath

import (
	"fmt"
	"sync/atomic"
)

// Add adds o to b pixel by pixel, saturating at T's maximum. Alpha of b is kept.
func (b *Bitmap[T]) Add(o *Bitmap[T]) error {
	return b.combine("add", o, Color[T].Add)
}

// Sub subtracts o from b pixel by pixel, saturating at T's minimum. Alpha of b is kept.
func (b *Bitmap[T]) Sub(o *Bitmap[T]) error {
	return b.combine("sub", o, Color[T].Sub)
}

func (b *Bitmap[T]) combine(op string, o *Bitmap[T], fn func(a, c Color[T]) Color[T]) error {
	if o == nil || !SameGeometry(b, o) {
		return fmt.Errorf("%s: %w: %s vs %s", op, ErrGeometryMismatch, describe(b), describe(o))
	}
	parallelFor(b.height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < b.width; x++ {
				b.put(b.offset(x, y), fn(b.At(x, y), o.At(x, y)))
			}
		}
	})
	return nil
}

// AbsoluteDiff returns a new bitmap holding |a-b| for every sample, including alpha.
// Both bitmaps must have the same width, height and channel count.
func AbsoluteDiff[T Sample](a, b *Bitmap[T]) (*Bitmap[T], error) {
	if a == nil || b == nil || a.width != b.width || a.height != b.height || a.channels != b.channels {
		return nil, fmt.Errorf("absolute diff: %w: %s vs %s", ErrGeometryMismatch, describe(a), describe(b))
	}
	out, err := NewBitmap[T](a.width, a.height, a.channels)
	if err != nil {
		return nil, err
	}
	out.minDisplayed, out.maxDisplayed = a.minDisplayed, a.maxDisplayed

	rowLen := a.width * a.channels
	parallelFor(a.height, func(start, end int) {
		for i := start * rowLen; i < end*rowLen; i++ {
			out.pix[i] = absDiff(a.pix[i], b.pix[i])
		}
	})
	return out, nil
}

// ContainsColors reports whether any pixel has differing red, green and blue samples.
// Alpha is ignored. Single-channel bitmaps never contain colors.
func (b *Bitmap[T]) ContainsColors() bool {
	if b.Empty() || b.layout.gray != noChannel {
		return false
	}
	var found atomic.Bool
	parallelFor(b.height, func(start, end int) {
		for y := start; y < end && !found.Load(); y++ {
			for x := 0; x < b.width; x++ {
				o := b.offset(x, y)
				r, g, bl := b.pix[o+b.layout.red], b.pix[o+b.layout.green], b.pix[o+b.layout.blue]
				if r != g || r != bl {
					found.Store(true)
					return
				}
			}
		}
	})
	return found.Load()
}
