package pixmath

import (
	"fmt"
	"image"
	"math"
)

// letterboxFill is written wherever a display pixel has no source pixel.
const letterboxFill = 55

// ConvertOptions controls ConvertToDepth8.
type ConvertOptions struct {
	// Gamma blends the linear window response with a logarithmic one, 0 is purely linear.
	Gamma float64

	// X, Y, Width and Height select the source rectangle.
	// Non-positive Width or Height extend the rectangle to the right or bottom edge.
	X, Y          int
	Width, Height int

	// ScaledWidth and ScaledHeight set the output size, non-positive values keep the source size.
	// A different size letterboxes the source rectangle with nearest neighbour sampling.
	ScaledWidth, ScaledHeight int

	// LUT is the response cache to use, a process-wide one is used when nil.
	LUT *DisplayLUT
}

// DisplayBuffer is an 8-bit display buffer.
//
// Four-channel buffers hold BGRA pixels with unpadded rows.
// Single-channel buffers hold gray pixels with rows padded to a multiple of 4 bytes.
type DisplayBuffer struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
	Stride   int
}

// displayMapper maps samples inside the display window to 0..255.
type displayMapper[T Sample] struct {
	lo, hi T
	span   float64
	c      curve
	factor float64
}

func newDisplayMapper[T Sample](lo, hi T, c curve) displayMapper[T] {
	m := displayMapper[T]{lo: lo, hi: hi, c: c}
	if hi > lo {
		m.span = float64(hi - lo)
		m.factor = c.factor(m.span)
	}
	return m
}

func (m displayMapper[T]) value(v T) uint8 {
	if m.span == 0 {
		if v >= m.hi {
			return 255
		}
		return 0
	}
	if v < m.lo {
		v = m.lo
	} else if v > m.hi {
		v = m.hi
	}

	val0 := 255 * float64(v-m.lo) / m.span
	if m.c.gamma == 0 {
		return clampToByte(val0)
	}

	val1 := m.c.logResponse(float64(v), m.factor)
	return clampToByte(m.c.mix*val1 + (1-m.c.mix)*val0)
}

// DisplayValue maps v through the display window with the given gamma.
func (b *Bitmap[T]) DisplayValue(v T, gamma float64) uint8 {
	return newDisplayMapper(b.minDisplayed, b.maxDisplayed, newCurve(gamma)).value(v)
}

// ConvertToDepth8 renders a rectangle of the bitmap into a new 8-bit display buffer.
//
// Samples are clamped to the display window and mapped to 0..255 with the gamma response.
// Color sources produce BGRA with opaque alpha for RGB input, gray sources produce one channel.
// Pixels without a source pixel are set to 55.
func (b *Bitmap[T]) ConvertToDepth8(opts ...func(o *ConvertOptions)) (*DisplayBuffer, error) {
	var opt ConvertOptions
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	w, h := opt.Width, opt.Height
	if w <= 0 {
		w = b.Width() - opt.X
	}
	if h <= 0 {
		h = b.Height() - opt.Y
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("convert to depth 8: %w: %dx%d at (%d,%d)", ErrEmptyRegion, w, h, opt.X, opt.Y)
	}
	sw, sh := opt.ScaledWidth, opt.ScaledHeight
	if sw <= 0 {
		sw = w
	}
	if sh <= 0 {
		sh = h
	}

	var destChannels, align int
	switch b.Channels() {
	case 1, 2:
		destChannels, align = 1, 4
	case 3, 4:
		destChannels, align = 4, 1
	default:
		return nil, fmt.Errorf("convert to depth 8: %w: %d", ErrUnsupportedChannels, b.Channels())
	}

	lut := opt.LUT
	if lut == nil {
		lut = sharedLUT
	}
	m := newDisplayMapper(b.minDisplayed, b.maxDisplayed, lut.prepare(opt.Gamma))

	Logger().Debug("converting image to depth 8",
		"x", opt.X, "y", opt.Y, "width", w, "height", h,
		"scaled_width", sw, "scaled_height", sh, "dest_channels", destChannels)

	alignedWidth := (sw + align - 1) / align * align
	d := &DisplayBuffer{
		Pix:      make([]uint8, alignedWidth*sh*destChannels),
		Width:    sw,
		Height:   sh,
		Channels: destChannels,
		Stride:   alignedWidth * destChannels,
	}

	if sw == w && sh == h {
		parallelFor(h, func(start, end int) {
			for j := start; j < end; j++ {
				row := d.Pix[j*d.Stride:]
				for i := 0; i < w; i++ {
					b.writeDisplayPixel(row[i*destChannels:(i+1)*destChannels], opt.X+i, opt.Y+j, m)
				}
			}
		})
		return d, nil
	}

	aspect := float64(w) / float64(h)
	fillWidth, fillHeight := sw, sh
	if float64(sw)/float64(sh) > aspect {
		fillWidth = clampInt(int(math.Round(float64(sh)*aspect)), 0, sw)
	} else {
		fillHeight = clampInt(int(math.Round(float64(sw)/aspect)), 0, sh)
	}

	bar := d.Pix[fillHeight*d.Stride:]
	for i := range bar {
		bar[i] = letterboxFill
	}

	parallelFor(fillHeight, func(start, end int) {
		for j := start; j < end; j++ {
			row := d.Pix[j*d.Stride:]
			for i := fillWidth * destChannels; i < sw*destChannels; i++ {
				row[i] = letterboxFill
			}

			sy := opt.Y + int(math.Round(float64(j)*float64(h)/float64(fillHeight)))
			for i := 0; i < fillWidth; i++ {
				sx := opt.X + int(math.Round(float64(i)*float64(w)/float64(fillWidth)))
				b.writeDisplayPixel(row[i*destChannels:(i+1)*destChannels], sx, sy, m)
			}
		}
	})

	return d, nil
}

// writeDisplayPixel maps the source pixel at (x, y) into dst, or fills dst when (x, y) is outside.
func (b *Bitmap[T]) writeDisplayPixel(dst []uint8, x, y int, m displayMapper[T]) {
	if !b.inside(x, y) {
		for k := range dst {
			dst[k] = letterboxFill
		}
		return
	}

	src := b.pix[b.offset(x, y):]
	switch b.channels {
	case 3:
		dst[0] = m.value(src[2])
		dst[1] = m.value(src[1])
		dst[2] = m.value(src[0])
		dst[3] = 255
	case 4:
		dst[0] = m.value(src[3])
		dst[1] = m.value(src[2])
		dst[2] = m.value(src[1])
		dst[3] = m.value(src[0])
	default:
		dst[0] = m.value(src[0])
	}
}

// Image returns the buffer as *image.Gray, sharing Pix, or as a new *image.NRGBA for BGRA data.
func (d *DisplayBuffer) Image() image.Image {
	r := image.Rect(0, 0, d.Width, d.Height)
	if d.Channels == 1 {
		return &image.Gray{Pix: d.Pix, Stride: d.Stride, Rect: r}
	}

	img := image.NewNRGBA(r)
	parallelFor(d.Height, func(start, end int) {
		for y := start; y < end; y++ {
			src := d.Pix[y*d.Stride : y*d.Stride+d.Width*4]
			dst := img.Pix[y*img.Stride : y*img.Stride+d.Width*4]
			for i := 0; i < len(src); i += 4 {
				dst[i+0] = src[i+2]
				dst[i+1] = src[i+1]
				dst[i+2] = src[i+0]
				dst[i+3] = src[i+3]
			}
		}
	})
	return img
}
