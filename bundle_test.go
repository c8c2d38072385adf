package pixmath

import (
	"errors"
	"strings"
	"testing"
)

func TestParamsRoundTrip(t *testing.T) {
	im, err := NewImage(3, 2, 3, Depth16)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := As[uint16](im)
	_ = b.Plot(2, 1, RGB[uint16](1, 2, 3))
	b.SetDisplayWindow(10, 4000)

	p, err := im.Params()
	if err != nil {
		t.Fatal(err)
	}
	if p[KeyWidth] != 3 || p[KeyDepth] != 2 || p[KeyMaxBrightness] != 4000.0 {
		t.Fatalf("unexpected params %v", p)
	}

	back, err := ImageFromParams(p)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := im.Digest()
	if got, _ := back.Digest(); got != want {
		t.Fatal("round trip changed the pixels")
	}
	if back.MinDisplayed() != 10 || back.MaxDisplayed() != 4000 {
		t.Fatalf("unexpected window [%v, %v]", back.MinDisplayed(), back.MaxDisplayed())
	}

	bb, _ := As[uint16](back)
	if bb.Ownership() != Borrowed {
		t.Fatal("bundle buffers are wrapped")
	}
	_ = bb.Plot(0, 0, RGB[uint16](9, 9, 9))
	if b.At(0, 0) != RGB[uint16](9, 9, 9) {
		t.Fatal("wrapped image must share memory")
	}

	cp, err := ImageFromParams(p, func(o *ParamsOptions) { o.Copy = true })
	if err != nil {
		t.Fatal(err)
	}
	cb, _ := As[uint16](cp)
	_ = cb.Plot(0, 0, RGB[uint16](1, 1, 1))
	if b.At(0, 0) != RGB[uint16](9, 9, 9) {
		t.Fatal("copied image must not share memory")
	}
}

func TestParamsMissingKey(t *testing.T) {
	im, _ := NewImage(1, 1, 1, Depth8)
	p, err := im.Params()
	if err != nil {
		t.Fatal(err)
	}

	delete(p, KeyDepth)
	_, err = ImageFromParams(p)
	if !errors.Is(err, ErrMissingKey) || !strings.Contains(err.Error(), KeyDepth) {
		t.Fatalf("expected missing depth, got %v", err)
	}

	if _, err := ImageFromParams(nil); !errors.Is(err, ErrMissingKey) {
		t.Fatalf("expected missing key, got %v", err)
	}
}

func TestParamsValues(t *testing.T) {
	buf := make([]byte, 16)
	p := Params{
		"pixels":         buf,
		KeyWidth:         int64(2),
		KeyHeight:        float64(1),
		KeyChannels:      int32(1),
		KeyDepth:         -8,
		KeyMinBrightness: 0,
		KeyMaxBrightness: 1.5,
	}

	if _, err := ImageFromParams(p); !errors.Is(err, ErrMissingKey) {
		t.Fatalf("expected missing buffer, got %v", err)
	}

	im, err := ImageFromParams(p, func(o *ParamsOptions) { o.BufferKey = "pixels" })
	if err != nil {
		t.Fatal(err)
	}
	if im.Depth() != DepthF64 || im.Width() != 2 || im.MaxDisplayed() != 1.5 {
		t.Fatalf("unexpected image %dx%d depth %d", im.Width(), im.Height(), im.Depth())
	}

	p[KeyWidth] = "2"
	if _, err := ImageFromParams(p, func(o *ParamsOptions) { o.BufferKey = "pixels" }); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("expected invalid param, got %v", err)
	}
	p[KeyWidth] = 1.5
	if _, err := ImageFromParams(p, func(o *ParamsOptions) { o.BufferKey = "pixels" }); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("expected invalid param, got %v", err)
	}
	p[KeyWidth] = 2
	p[KeyDepth] = 3
	if _, err := ImageFromParams(p, func(o *ParamsOptions) { o.BufferKey = "pixels" }); !errors.Is(err, ErrUnsupportedDepth) {
		t.Fatalf("expected unsupported depth, got %v", err)
	}
	p[KeyDepth] = 8
	p[KeyWidth] = 4
	if _, err := ImageFromParams(p, func(o *ParamsOptions) { o.BufferKey = "pixels" }); !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("expected buffer too small, got %v", err)
	}

	var empty Image
	if _, err := empty.Params(); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("expected empty image, got %v", err)
	}
}
