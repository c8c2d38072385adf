package pixmath

import (
	"fmt"
	"math"
)

// Keys of an image parameter bundle.
const (
	KeyImageBuffer   = "imageBuffer"
	KeyWidth         = "width"
	KeyHeight        = "height"
	KeyChannels      = "channels"
	KeyDepth         = "depth"
	KeyMinBrightness = "minBrightness"
	KeyMaxBrightness = "maxBrightness"
)

// Params is a flat key/value form of an Image for passing pixel buffers across plugin boundaries.
//
// The buffer is a []byte sharing memory with the image, numbers are int (geometry, depth)
// and float64 (display window).
type Params map[string]any

// ParamsOptions controls ImageFromParams.
type ParamsOptions struct {
	// BufferKey names the buffer entry, KeyImageBuffer by default.
	BufferKey string
	// Copy wraps a private copy of the buffer instead of the caller's memory.
	Copy bool
}

// Params exports the image with the default buffer key.
func (im *Image) Params() (Params, error) {
	if im.Empty() {
		return nil, fmt.Errorf("params: %w", ErrEmptyImage)
	}
	return Params{
		KeyImageBuffer:   im.Bytes(),
		KeyWidth:         im.Width(),
		KeyHeight:        im.Height(),
		KeyChannels:      im.Channels(),
		KeyDepth:         int(im.Depth()),
		KeyMinBrightness: im.MinDisplayed(),
		KeyMaxBrightness: im.MaxDisplayed(),
	}, nil
}

// Validate ensures all required keys are present.
func (p Params) Validate(bufferKey string) error {
	if p == nil {
		return fmt.Errorf("params: %w: nil bundle", ErrMissingKey)
	}
	if bufferKey == "" {
		bufferKey = KeyImageBuffer
	}
	for _, k := range []string{bufferKey, KeyWidth, KeyHeight, KeyChannels, KeyDepth, KeyMinBrightness, KeyMaxBrightness} {
		if _, ok := p[k]; !ok {
			return fmt.Errorf("params: %w: %q", ErrMissingKey, k)
		}
	}
	return nil
}

// ImageFromParams rebuilds an image from a bundle produced by Image.Params or a compatible producer.
func ImageFromParams(p Params, opts ...func(o *ParamsOptions)) (*Image, error) {
	opt := ParamsOptions{BufferKey: KeyImageBuffer}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	if err := p.Validate(opt.BufferKey); err != nil {
		return nil, err
	}

	buf, ok := p[opt.BufferKey].([]byte)
	if !ok {
		return nil, fmt.Errorf("params: %w: %q is %T, want []byte", ErrInvalidParam, opt.BufferKey, p[opt.BufferKey])
	}

	var geo [4]int
	for i, k := range []string{KeyWidth, KeyHeight, KeyChannels, KeyDepth} {
		v, err := p.number(k)
		if err != nil {
			return nil, err
		}
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("params: %w: %q is %v, want an integer", ErrInvalidParam, k, v)
		}
		geo[i] = int(v)
	}
	lo, err := p.number(KeyMinBrightness)
	if err != nil {
		return nil, err
	}
	hi, err := p.number(KeyMaxBrightness)
	if err != nil {
		return nil, err
	}

	if opt.Copy {
		buf = append(make([]byte, 0, len(buf)), buf...)
	}
	im, err := WrapImage(buf, geo[0], geo[1], geo[2], Depth(geo[3]))
	if err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	if err := im.SetMinDisplayed(lo); err != nil {
		return nil, err
	}
	if err := im.SetMaxDisplayed(hi); err != nil {
		return nil, err
	}
	return im, nil
}

func (p Params) number(key string) (float64, error) {
	switch v := p[key].(type) {
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, fmt.Errorf("params: %w: %q is %T, want a number", ErrInvalidParam, key, v)
	}
}
