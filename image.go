package pixmath

import "fmt"

// Image holds a bitmap of any supported sample type, selected by its depth.
//
// Exactly one typed bitmap is set, matching Depth. The zero value has no depth
// and reports ErrUnsupportedDepth from operations that can fail.
type Image struct {
	depth Depth

	u8  *Bitmap[uint8]
	u16 *Bitmap[uint16]
	u32 *Bitmap[uint32]
	u64 *Bitmap[uint64]
	f64 *Bitmap[float64]
}

// NewImage allocates a zero-filled image of the given depth.
func NewImage(width, height, channels int, depth Depth) (*Image, error) {
	switch depth {
	case Depth8:
		return imageFrom[uint8](NewBitmap[uint8](width, height, channels))
	case Depth16:
		return imageFrom[uint16](NewBitmap[uint16](width, height, channels))
	case Depth32:
		return imageFrom[uint32](NewBitmap[uint32](width, height, channels))
	case Depth64:
		return imageFrom[uint64](NewBitmap[uint64](width, height, channels))
	case DepthF64:
		return imageFrom[float64](NewBitmap[float64](width, height, channels))
	default:
		return nil, fmt.Errorf("new image: %w: %d", ErrUnsupportedDepth, depth)
	}
}

// WrapImage builds an image over caller-owned raw memory, see WrapBytes.
func WrapImage(buf []byte, width, height, channels int, depth Depth) (*Image, error) {
	switch depth {
	case Depth8:
		return imageFrom[uint8](WrapBytes[uint8](buf, width, height, channels))
	case Depth16:
		return imageFrom[uint16](WrapBytes[uint16](buf, width, height, channels))
	case Depth32:
		return imageFrom[uint32](WrapBytes[uint32](buf, width, height, channels))
	case Depth64:
		return imageFrom[uint64](WrapBytes[uint64](buf, width, height, channels))
	case DepthF64:
		return imageFrom[float64](WrapBytes[float64](buf, width, height, channels))
	default:
		return nil, fmt.Errorf("wrap image: %w: %d", ErrUnsupportedDepth, depth)
	}
}

func imageFrom[T Sample](b *Bitmap[T], err error) (*Image, error) {
	if err != nil {
		return nil, err
	}
	return ImageOf(b), nil
}

// ImageOf wraps a typed bitmap.
func ImageOf[T Sample](b *Bitmap[T]) *Image {
	im := &Image{depth: depthOf[T]()}
	switch v := any(b).(type) {
	case *Bitmap[uint8]:
		im.u8 = v
	case *Bitmap[uint16]:
		im.u16 = v
	case *Bitmap[uint32]:
		im.u32 = v
	case *Bitmap[uint64]:
		im.u64 = v
	case *Bitmap[float64]:
		im.f64 = v
	}
	return im
}

// As returns the typed bitmap of im when its depth matches T.
func As[T Sample](im *Image) (*Bitmap[T], bool) {
	if im == nil || im.depth != depthOf[T]() {
		return nil, false
	}
	var b any
	switch im.depth {
	case Depth8:
		b = im.u8
	case Depth16:
		b = im.u16
	case Depth32:
		b = im.u32
	case Depth64:
		b = im.u64
	case DepthF64:
		b = im.f64
	}
	t, ok := b.(*Bitmap[T])
	return t, ok && t != nil
}

func unsupported(op string, d Depth) error {
	return fmt.Errorf("%s: %w: %d", op, ErrUnsupportedDepth, d)
}

// Depth returns the sample depth tag.
func (im *Image) Depth() Depth {
	if im == nil {
		return 0
	}
	return im.depth
}

// geometry returns the typed bitmap as Geometry, nil for an unsupported depth.
func (im *Image) geometry() Geometry {
	switch im.Depth() {
	case Depth8:
		return im.u8
	case Depth16:
		return im.u16
	case Depth32:
		return im.u32
	case Depth64:
		return im.u64
	case DepthF64:
		return im.f64
	default:
		return nil
	}
}

func (im *Image) Width() int {
	if g := im.geometry(); g != nil {
		return g.Width()
	}
	return 0
}

func (im *Image) Height() int {
	if g := im.geometry(); g != nil {
		return g.Height()
	}
	return 0
}

func (im *Image) Channels() int {
	if g := im.geometry(); g != nil {
		return g.Channels()
	}
	return 0
}

// Empty reports whether the image has no pixel buffer.
func (im *Image) Empty() bool {
	switch im.Depth() {
	case Depth8:
		return im.u8.Empty()
	case Depth16:
		return im.u16.Empty()
	case Depth32:
		return im.u32.Empty()
	case Depth64:
		return im.u64.Empty()
	case DepthF64:
		return im.f64.Empty()
	default:
		return true
	}
}

// Bytes returns the raw sample memory, shared with the image.
func (im *Image) Bytes() []byte {
	if im.Empty() {
		return nil
	}
	switch im.depth {
	case Depth8:
		return im.u8.Bytes()
	case Depth16:
		return im.u16.Bytes()
	case Depth32:
		return im.u32.Bytes()
	case Depth64:
		return im.u64.Bytes()
	default:
		return im.f64.Bytes()
	}
}

// MinDisplayed returns the lower display window bound as float64.
func (im *Image) MinDisplayed() float64 {
	switch im.Depth() {
	case Depth8:
		return float64(im.u8.MinDisplayed())
	case Depth16:
		return float64(im.u16.MinDisplayed())
	case Depth32:
		return float64(im.u32.MinDisplayed())
	case Depth64:
		return float64(im.u64.MinDisplayed())
	case DepthF64:
		return im.f64.MinDisplayed()
	default:
		return 0
	}
}

// MaxDisplayed returns the upper display window bound as float64.
func (im *Image) MaxDisplayed() float64 {
	switch im.Depth() {
	case Depth8:
		return float64(im.u8.MaxDisplayed())
	case Depth16:
		return float64(im.u16.MaxDisplayed())
	case Depth32:
		return float64(im.u32.MaxDisplayed())
	case Depth64:
		return float64(im.u64.MaxDisplayed())
	case DepthF64:
		return im.f64.MaxDisplayed()
	default:
		return 0
	}
}

// SetMinDisplayed sets the lower display window bound, rounded and clamped to the sample range.
func (im *Image) SetMinDisplayed(v float64) error {
	switch im.Depth() {
	case Depth8:
		im.u8.SetMinDisplayed(roundTo[uint8](v))
	case Depth16:
		im.u16.SetMinDisplayed(roundTo[uint16](v))
	case Depth32:
		im.u32.SetMinDisplayed(roundTo[uint32](v))
	case Depth64:
		im.u64.SetMinDisplayed(roundTo[uint64](v))
	case DepthF64:
		im.f64.SetMinDisplayed(v)
	default:
		return unsupported("set min displayed", im.Depth())
	}
	return nil
}

// SetMaxDisplayed sets the upper display window bound, rounded and clamped to the sample range.
func (im *Image) SetMaxDisplayed(v float64) error {
	switch im.Depth() {
	case Depth8:
		im.u8.SetMaxDisplayed(roundTo[uint8](v))
	case Depth16:
		im.u16.SetMaxDisplayed(roundTo[uint16](v))
	case Depth32:
		im.u32.SetMaxDisplayed(roundTo[uint32](v))
	case Depth64:
		im.u64.SetMaxDisplayed(roundTo[uint64](v))
	case DepthF64:
		im.f64.SetMaxDisplayed(v)
	default:
		return unsupported("set max displayed", im.Depth())
	}
	return nil
}

// ConvertToDepth8 renders the image into an 8-bit display buffer, see Bitmap.ConvertToDepth8.
func (im *Image) ConvertToDepth8(opts ...func(o *ConvertOptions)) (*DisplayBuffer, error) {
	switch im.Depth() {
	case Depth8:
		return im.u8.ConvertToDepth8(opts...)
	case Depth16:
		return im.u16.ConvertToDepth8(opts...)
	case Depth32:
		return im.u32.ConvertToDepth8(opts...)
	case Depth64:
		return im.u64.ConvertToDepth8(opts...)
	case DepthF64:
		return im.f64.ConvertToDepth8(opts...)
	default:
		return nil, unsupported("convert to depth 8", im.Depth())
	}
}

// AbsoluteDiff returns |im-other| per sample. Both images must share depth, size and channel count.
func (im *Image) AbsoluteDiff(other *Image) (*Image, error) {
	if im.Depth() != other.Depth() {
		return nil, fmt.Errorf("absolute diff: %w: depth %d vs %d", ErrGeometryMismatch, im.Depth(), other.Depth())
	}
	switch im.Depth() {
	case Depth8:
		return imageFrom[uint8](AbsoluteDiff(im.u8, other.u8))
	case Depth16:
		return imageFrom[uint16](AbsoluteDiff(im.u16, other.u16))
	case Depth32:
		return imageFrom[uint32](AbsoluteDiff(im.u32, other.u32))
	case Depth64:
		return imageFrom[uint64](AbsoluteDiff(im.u64, other.u64))
	case DepthF64:
		return imageFrom[float64](AbsoluteDiff(im.f64, other.f64))
	default:
		return nil, unsupported("absolute diff", im.Depth())
	}
}

// ContainsColors reports whether any pixel has differing red, green and blue samples.
func (im *Image) ContainsColors() bool {
	switch im.Depth() {
	case Depth8:
		return im.u8.ContainsColors()
	case Depth16:
		return im.u16.ContainsColors()
	case Depth32:
		return im.u32.ContainsColors()
	case Depth64:
		return im.u64.ContainsColors()
	case DepthF64:
		return im.f64.ContainsColors()
	default:
		return false
	}
}

// Clone returns an owned deep copy.
func (im *Image) Clone() (*Image, error) {
	if im.Empty() {
		return nil, fmt.Errorf("clone: %w", ErrEmptyImage)
	}
	switch im.depth {
	case Depth8:
		return ImageOf(im.u8.Clone()), nil
	case Depth16:
		return ImageOf(im.u16.Clone()), nil
	case Depth32:
		return ImageOf(im.u32.Clone()), nil
	case Depth64:
		return ImageOf(im.u64.Clone()), nil
	default:
		return ImageOf(im.f64.Clone()), nil
	}
}

// Digest returns the xxHash64 of geometry and samples, see Bitmap.Digest.
func (im *Image) Digest() (uint64, error) {
	switch im.Depth() {
	case Depth8:
		return im.u8.Digest(), nil
	case Depth16:
		return im.u16.Digest(), nil
	case Depth32:
		return im.u32.Digest(), nil
	case Depth64:
		return im.u64.Digest(), nil
	case DepthF64:
		return im.f64.Digest(), nil
	default:
		return 0, unsupported("digest", im.Depth())
	}
}
