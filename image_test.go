package pixmath

import (
	"errors"
	"testing"
)

func TestImageDepths(t *testing.T) {
	for _, d := range []Depth{Depth8, Depth16, Depth32, Depth64, DepthF64} {
		im, err := NewImage(3, 2, 4, d)
		if err != nil {
			t.Fatal(err)
		}
		if im.Depth() != d || im.Width() != 3 || im.Height() != 2 || im.Channels() != 4 || im.Empty() {
			t.Fatalf("depth %d: unexpected image", d)
		}
		if len(im.Bytes()) != 3*2*4*d.Bytes() {
			t.Fatalf("depth %d: unexpected buffer size %d", d, len(im.Bytes()))
		}
		if _, err := im.ConvertToDepth8(); err != nil {
			t.Fatalf("depth %d: %v", d, err)
		}
		if im.ContainsColors() {
			t.Fatalf("depth %d: zero image has no colors", d)
		}
	}

	if _, err := NewImage(1, 1, 1, 3); !errors.Is(err, ErrUnsupportedDepth) {
		t.Fatalf("expected unsupported depth, got %v", err)
	}
	if _, err := WrapImage(make([]byte, 8), 1, 1, 1, -4); !errors.Is(err, ErrUnsupportedDepth) {
		t.Fatalf("expected unsupported depth, got %v", err)
	}

	var zero Image
	if _, err := zero.ConvertToDepth8(); !errors.Is(err, ErrUnsupportedDepth) {
		t.Fatalf("expected unsupported depth, got %v", err)
	}
	if !zero.Empty() || zero.Width() != 0 {
		t.Fatal("zero image must be empty")
	}
}

func TestImageAs(t *testing.T) {
	im, err := NewImage(2, 2, 1, Depth16)
	if err != nil {
		t.Fatal(err)
	}

	b, ok := As[uint16](im)
	if !ok {
		t.Fatal("expected a 16-bit bitmap")
	}
	_ = b.Plot(1, 1, Gray[uint16](500))
	if im.Bytes()[6] == 0 && im.Bytes()[7] == 0 {
		t.Fatal("typed bitmap must share the image buffer")
	}

	if _, ok := As[uint8](im); ok {
		t.Fatal("depth mismatch must not convert")
	}
	if ImageOf(b).Depth() != Depth16 {
		t.Fatal("unexpected depth")
	}
}

func TestImageDisplayWindow(t *testing.T) {
	im, err := NewImage(1, 1, 1, Depth8)
	if err != nil {
		t.Fatal(err)
	}
	if im.MinDisplayed() != 0 || im.MaxDisplayed() != 255 {
		t.Fatalf("unexpected default window [%v, %v]", im.MinDisplayed(), im.MaxDisplayed())
	}
	_ = im.SetMinDisplayed(-5)
	_ = im.SetMaxDisplayed(300)
	if im.MinDisplayed() != 0 || im.MaxDisplayed() != 255 {
		t.Fatalf("window must clamp to the sample range, got [%v, %v]", im.MinDisplayed(), im.MaxDisplayed())
	}
	_ = im.SetMaxDisplayed(99.6)
	if im.MaxDisplayed() != 100 {
		t.Fatalf("window must round, got %v", im.MaxDisplayed())
	}

	f, _ := NewImage(1, 1, 1, DepthF64)
	_ = f.SetMinDisplayed(-0.5)
	if f.MinDisplayed() != -0.5 {
		t.Fatalf("float window must be kept, got %v", f.MinDisplayed())
	}

	var zero Image
	if err := zero.SetMaxDisplayed(1); !errors.Is(err, ErrUnsupportedDepth) {
		t.Fatalf("expected unsupported depth, got %v", err)
	}
}

func TestImageAbsoluteDiff(t *testing.T) {
	a, _ := NewImage(2, 2, 3, Depth32)
	b, _ := NewImage(2, 2, 3, Depth32)
	ba, _ := As[uint32](a)
	_ = ba.Plot(0, 0, RGB[uint32](7, 8, 9))

	d, err := a.AbsoluteDiff(b)
	if err != nil {
		t.Fatal(err)
	}
	bd, _ := As[uint32](d)
	if bd.At(0, 0) != RGB[uint32](7, 8, 9) {
		t.Fatalf("unexpected diff %+v", bd.At(0, 0))
	}

	c, _ := NewImage(2, 2, 3, Depth16)
	if _, err := a.AbsoluteDiff(c); !errors.Is(err, ErrGeometryMismatch) {
		t.Fatalf("expected geometry mismatch, got %v", err)
	}
	e, _ := NewImage(2, 2, 1, Depth32)
	if _, err := a.AbsoluteDiff(e); !errors.Is(err, ErrGeometryMismatch) {
		t.Fatalf("expected geometry mismatch, got %v", err)
	}
}

func TestImageCloneDigest(t *testing.T) {
	a, _ := NewImage(4, 4, 3, Depth64)
	c, err := a.Clone()
	if err != nil {
		t.Fatal(err)
	}

	da, _ := a.Digest()
	dc, _ := c.Digest()
	if da != dc {
		t.Fatal("clone must have the same digest")
	}

	bc, _ := As[uint64](c)
	_ = bc.Plot(3, 3, RGB[uint64](1, 0, 0))
	if dc, _ = c.Digest(); dc == da {
		t.Fatal("digest must change with pixels")
	}
	if !c.ContainsColors() || a.ContainsColors() {
		t.Fatal("clone must not share pixels")
	}

	other, _ := NewImage(4, 4, 3, Depth32)
	if do, _ := other.Digest(); do == da {
		t.Fatal("digest must cover the depth")
	}

	var zero Image
	if _, err := zero.Clone(); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("expected empty image, got %v", err)
	}
}
