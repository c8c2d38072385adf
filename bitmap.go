package pixmath

import (
	"fmt"
	"unsafe"
)

// channelLayout holds channel indices, noChannel marks an absent channel.
type channelLayout struct {
	gray, alpha, red, green, blue int
}

func layoutFor(channels int) (channelLayout, error) {
	switch channels {
	case 1:
		return channelLayout{gray: 0, alpha: noChannel, red: 0, green: 0, blue: 0}, nil
	case 3:
		return channelLayout{gray: noChannel, alpha: noChannel, red: 0, green: 1, blue: 2}, nil
	case 4:
		return channelLayout{gray: noChannel, alpha: 0, red: 1, green: 2, blue: 3}, nil
	default:
		return channelLayout{}, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}
}

// Bitmap is a width×height image with 1 (gray), 3 (RGB) or 4 (ARGB) interleaved channels of type T.
//
// Rows are packed without padding. The zero value is an empty container.
// A Bitmap is not safe for concurrent mutation; concurrent reads are fine.
type Bitmap[T Sample] struct {
	width, height, channels int

	pix       []T
	ownership Ownership
	layout    channelLayout

	minDisplayed, maxDisplayed T
}

// NewBitmap allocates a zero-filled bitmap.
func NewBitmap[T Sample](width, height, channels int) (*Bitmap[T], error) {
	b, err := newBitmapHeader[T](width, height, channels)
	if err != nil {
		return nil, err
	}
	b.pix = make([]T, width*height*channels)
	b.ownership = Owned
	return b, nil
}

// WrapBitmap builds a bitmap over caller-owned samples without copying them.
func WrapBitmap[T Sample](pix []T, width, height, channels int) (*Bitmap[T], error) {
	b, err := newBitmapHeader[T](width, height, channels)
	if err != nil {
		return nil, err
	}
	need := width * height * channels
	if len(pix) < need {
		return nil, fmt.Errorf("wrap %dx%dx%d: %w: have %d samples, need %d", width, height, channels, ErrBufferTooSmall, len(pix), need)
	}
	b.pix = pix[:need:need]
	b.ownership = Borrowed
	return b, nil
}

// WrapBytes builds a bitmap over caller-owned raw memory without copying it.
// buf must be aligned for T and hold at least height*width*channels*sizeof(T) bytes.
func WrapBytes[T Sample](buf []byte, width, height, channels int) (*Bitmap[T], error) {
	if _, err := newBitmapHeader[T](width, height, channels); err != nil {
		return nil, err
	}
	size := depthOf[T]().Bytes()
	need := width * height * channels
	if len(buf) < need*size {
		return nil, fmt.Errorf("wrap %dx%dx%d: %w: have %d bytes, need %d", width, height, channels, ErrBufferTooSmall, len(buf), need*size)
	}
	if need == 0 {
		return WrapBitmap[T](nil, width, height, channels)
	}
	var z T
	p := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(p)%unsafe.Alignof(z) != 0 {
		return nil, fmt.Errorf("wrap: %w: buffer not aligned to %d bytes", ErrInvalidParam, unsafe.Alignof(z))
	}
	return WrapBitmap(unsafe.Slice((*T)(p), need), width, height, channels)
}

func newBitmapHeader[T Sample](width, height, channels int) (*Bitmap[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrInvalidParam, width, height)
	}
	layout, err := layoutFor(channels)
	if err != nil {
		return nil, err
	}
	return &Bitmap[T]{
		width:        width,
		height:       height,
		channels:     channels,
		layout:       layout,
		maxDisplayed: maxOf[T](),
	}, nil
}

// Width, Height and Channels are zero for a nil bitmap.
func (b *Bitmap[T]) Width() int {
	if b == nil {
		return 0
	}
	return b.width
}

func (b *Bitmap[T]) Height() int {
	if b == nil {
		return 0
	}
	return b.height
}

func (b *Bitmap[T]) Channels() int {
	if b == nil {
		return 0
	}
	return b.channels
}

// Depth returns the signed sample depth of T.
func (b *Bitmap[T]) Depth() Depth { return depthOf[T]() }

// BytesPerPixel returns channels × bytes per sample.
func (b *Bitmap[T]) BytesPerPixel() int { return b.channels * b.Depth().Bytes() }

// Stride returns the row length in bytes; rows are never padded.
func (b *Bitmap[T]) Stride() int { return b.width * b.BytesPerPixel() }

// Size returns the buffer length in bytes.
func (b *Bitmap[T]) Size() int { return b.height * b.Stride() }

// Empty reports whether the bitmap has no pixel data.
func (b *Bitmap[T]) Empty() bool { return b == nil || b.Size() == 0 || b.pix == nil }

// Ownership tells whether the buffer was allocated by the bitmap.
func (b *Bitmap[T]) Ownership() Ownership { return b.ownership }

// Pix returns the interleaved samples.
func (b *Bitmap[T]) Pix() []T { return b.pix }

// Bytes returns the samples as raw memory, sharing storage with the bitmap.
func (b *Bitmap[T]) Bytes() []byte {
	if len(b.pix) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(b.pix))), len(b.pix)*b.Depth().Bytes())
}

// MinDisplayed returns the sample value mapped to display black.
func (b *Bitmap[T]) MinDisplayed() T { return b.minDisplayed }

// MaxDisplayed returns the sample value mapped to display white.
func (b *Bitmap[T]) MaxDisplayed() T { return b.maxDisplayed }

func (b *Bitmap[T]) SetMinDisplayed(v T) { b.minDisplayed = v }
func (b *Bitmap[T]) SetMaxDisplayed(v T) { b.maxDisplayed = v }

// SetDisplayWindow sets the window/level range used by ConvertToDepth8.
func (b *Bitmap[T]) SetDisplayWindow(lo, hi T) {
	b.minDisplayed = lo
	b.maxDisplayed = hi
}

// HasAlpha reports whether the layout has an alpha channel.
func (b *Bitmap[T]) HasAlpha() bool { return b.layout.alpha != noChannel }

func (b *Bitmap[T]) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

func (b *Bitmap[T]) offset(x, y int) int {
	return (y*b.width + x) * b.channels
}

// Red returns the red sample at (x, y), which must be inside the bitmap.
func (b *Bitmap[T]) Red(x, y int) T { return b.pix[b.offset(x, y)+b.layout.red] }

// Green returns the green sample at (x, y), which must be inside the bitmap.
func (b *Bitmap[T]) Green(x, y int) T { return b.pix[b.offset(x, y)+b.layout.green] }

// Blue returns the blue sample at (x, y), which must be inside the bitmap.
func (b *Bitmap[T]) Blue(x, y int) T { return b.pix[b.offset(x, y)+b.layout.blue] }

// Alpha returns the alpha sample at (x, y), or T's maximum without an alpha channel.
func (b *Bitmap[T]) Alpha(x, y int) T {
	if b.layout.alpha == noChannel {
		return maxOf[T]()
	}
	return b.pix[b.offset(x, y)+b.layout.alpha]
}

// GrayAt returns the gray sample for single-channel bitmaps and the luma otherwise,
// or zero outside the bitmap.
func (b *Bitmap[T]) GrayAt(x, y int) T {
	if !b.inside(x, y) {
		return 0
	}
	if b.layout.gray != noChannel {
		return b.pix[b.offset(x, y)+b.layout.gray]
	}
	return b.At(x, y).Luma()
}

// At returns the color at (x, y), or the zero Color outside the bitmap.
func (b *Bitmap[T]) At(x, y int) Color[T] {
	if !b.inside(x, y) {
		return Color[T]{}
	}
	o := b.offset(x, y)
	if b.channels == 1 {
		return Gray(b.pix[o])
	}
	c := Color[T]{R: b.pix[o+b.layout.red], G: b.pix[o+b.layout.green], B: b.pix[o+b.layout.blue], A: maxOf[T]()}
	if b.layout.alpha != noChannel {
		c.A = b.pix[o+b.layout.alpha]
	}
	return c
}

// Sample returns the interpolated color at fractional coordinates, clamped to the bitmap.
func (b *Bitmap[T]) Sample(dx, dy float64) Color[T] {
	return Interpolate(dx, dy, 0, 0, float64(b.width-1), float64(b.height-1), b.At)
}

// SampleGray returns the interpolated gray value at fractional coordinates, clamped to the bitmap.
func (b *Bitmap[T]) SampleGray(dx, dy float64) T {
	return Interpolate(dx, dy, 0, 0, float64(b.width-1), float64(b.height-1), func(x, y int) Scalar[T] {
		return Scalar[T]{V: b.GrayAt(x, y)}
	}).V
}

// IsRed reports whether red strictly dominates green and blue at (x, y).
func (b *Bitmap[T]) IsRed(x, y int) bool {
	if b.channels == 1 {
		return false
	}
	r := b.Red(x, y)
	return r > b.Green(x, y) && r > b.Blue(x, y)
}

// IsGreen reports whether green strictly dominates red and blue at (x, y).
func (b *Bitmap[T]) IsGreen(x, y int) bool {
	if b.channels == 1 {
		return false
	}
	g := b.Green(x, y)
	return g > b.Red(x, y) && g > b.Blue(x, y)
}

// IsBlue reports whether blue strictly dominates red and green at (x, y).
func (b *Bitmap[T]) IsBlue(x, y int) bool {
	if b.channels == 1 {
		return false
	}
	v := b.Blue(x, y)
	return v > b.Red(x, y) && v > b.Green(x, y)
}

func (b *Bitmap[T]) checkAlpha(c Color[T]) error {
	if b.layout.alpha == noChannel && !c.Opaque() {
		return fmt.Errorf("%w: cannot set alpha %v in an image with %d channels", ErrAlphaChannelAbsent, c.A, b.channels)
	}
	return nil
}

// put writes c at sample offset o without validation.
func (b *Bitmap[T]) put(o int, c Color[T]) {
	p := b.pix[o : o+b.channels]
	if b.layout.gray != noChannel {
		p[b.layout.gray] = c.Luma()
	} else {
		p[b.layout.red] = c.R
		p[b.layout.green] = c.G
		p[b.layout.blue] = c.B
	}
	if b.layout.alpha != noChannel {
		p[b.layout.alpha] = c.A
	}
}

// Plot writes c at (x, y). Coordinates outside the bitmap are ignored so lines may leave the canvas.
// A non-opaque color on a bitmap without alpha fails with ErrAlphaChannelAbsent.
func (b *Bitmap[T]) Plot(x, y int, c Color[T]) error {
	if !b.inside(x, y) {
		return nil
	}
	if err := b.checkAlpha(c); err != nil {
		return fmt.Errorf("plot (%d,%d): %w", x, y, err)
	}
	b.put(b.offset(x, y), c)
	return nil
}

// Fill sets every pixel to c.
func (b *Bitmap[T]) Fill(c Color[T]) error {
	if err := b.checkAlpha(c); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	parallelFor(b.height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < b.width; x++ {
				b.put(b.offset(x, y), c)
			}
		}
	})
	return nil
}

// Clone returns an owned deep copy.
func (b *Bitmap[T]) Clone() *Bitmap[T] {
	c := *b
	c.pix = append([]T(nil), b.pix...)
	c.ownership = Owned
	return &c
}

// CopyTo copies pixels and display window into dst, which must have the same geometry.
func (b *Bitmap[T]) CopyTo(dst *Bitmap[T]) error {
	if dst == nil {
		return fmt.Errorf("copy: %w: nil destination", ErrInvalidParam)
	}
	if !SameGeometry(b, dst) {
		return fmt.Errorf("copy: %w: %s vs %s", ErrGeometryMismatch, describe(b), describe(dst))
	}
	copy(dst.pix, b.pix)
	dst.layout = b.layout
	dst.minDisplayed = b.minDisplayed
	dst.maxDisplayed = b.maxDisplayed
	return nil
}

// Assign makes b a copy of src, reallocating when the geometry differs.
func (b *Bitmap[T]) Assign(src *Bitmap[T]) {
	if b == src {
		return
	}
	if !SameGeometry(b, src) || b.pix == nil {
		b.width, b.height, b.channels = src.width, src.height, src.channels
		b.layout = src.layout
		b.pix = make([]T, len(src.pix))
		b.ownership = Owned
	}
	// Geometry matches here, CopyTo cannot fail.
	_ = src.CopyTo(b)
}

// MoveFrom takes over the buffer of src without copying and leaves src empty.
func (b *Bitmap[T]) MoveFrom(src *Bitmap[T]) {
	if b == src {
		return
	}
	*b = *src
	*src = Bitmap[T]{}
}
