package pixmath

import (
	"errors"
	"testing"
)

func TestBitmapAddSub(t *testing.T) {
	a, _ := NewBitmap[uint8](2, 1, 3)
	b, _ := NewBitmap[uint8](2, 1, 3)
	_ = a.Plot(0, 0, RGB[uint8](200, 10, 5))
	_ = b.Plot(0, 0, RGB[uint8](100, 20, 5))
	_ = b.Plot(1, 0, RGB[uint8](1, 2, 3))

	if err := a.Add(b); err != nil {
		t.Fatal(err)
	}
	if a.At(0, 0) != RGB[uint8](255, 30, 10) || a.At(1, 0) != RGB[uint8](1, 2, 3) {
		t.Fatalf("unexpected sum %+v %+v", a.At(0, 0), a.At(1, 0))
	}

	if err := a.Sub(b); err != nil {
		t.Fatal(err)
	}
	if err := a.Sub(b); err != nil {
		t.Fatal(err)
	}
	if a.At(0, 0) != RGB[uint8](55, 0, 0) || a.At(1, 0) != RGB[uint8](0, 0, 0) {
		t.Fatalf("unexpected difference %+v %+v", a.At(0, 0), a.At(1, 0))
	}

	c, _ := NewBitmap[uint8](2, 1, 1)
	if err := a.Add(c); !errors.Is(err, ErrGeometryMismatch) {
		t.Fatalf("expected geometry mismatch, got %v", err)
	}
	if err := a.Sub(nil); !errors.Is(err, ErrGeometryMismatch) {
		t.Fatalf("expected geometry mismatch, got %v", err)
	}
}

func TestAbsoluteDiff(t *testing.T) {
	a, _ := NewBitmap[uint16](2, 2, 4)
	b, _ := NewBitmap[uint16](2, 2, 4)
	_ = a.Plot(0, 0, RGBA[uint16](10, 500, 0, 7))
	_ = b.Plot(0, 0, RGBA[uint16](30, 100, 0, 9))

	d, err := AbsoluteDiff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.At(0, 0); got != RGBA[uint16](20, 400, 0, 2) {
		t.Fatalf("unexpected diff %+v", got)
	}
	if d.At(1, 1) != (Color[uint16]{}) {
		t.Fatalf("unexpected diff %+v", d.At(1, 1))
	}
	if d.Ownership() != Owned || d == a {
		t.Fatal("diff must be a new owned bitmap")
	}

	f1, _ := NewBitmap[float64](1, 1, 1)
	f2, _ := NewBitmap[float64](1, 1, 1)
	_ = f1.Plot(0, 0, Gray(-1.5))
	_ = f2.Plot(0, 0, Gray(2.0))
	fd, err := AbsoluteDiff(f1, f2)
	if err != nil || fd.GrayAt(0, 0) != 3.5 {
		t.Fatalf("unexpected float diff %v (%v)", fd.GrayAt(0, 0), err)
	}
}

func TestAbsoluteDiffGeometryMismatch(t *testing.T) {
	a, _ := NewBitmap[uint8](4, 4, 3)
	b, _ := NewBitmap[uint8](4, 4, 4)

	d, err := AbsoluteDiff(a, b)
	if !errors.Is(err, ErrGeometryMismatch) {
		t.Fatalf("expected geometry mismatch, got %v", err)
	}
	if d != nil {
		t.Fatal("no partial result expected")
	}
}

func TestContainsColors(t *testing.T) {
	gray, _ := NewBitmap[uint8](3, 3, 1)
	_ = gray.Plot(1, 1, Gray[uint8](200))
	if gray.ContainsColors() {
		t.Fatal("single channel bitmaps have no colors")
	}

	rgb, _ := NewBitmap[uint8](3, 3, 3)
	_ = rgb.Fill(Gray[uint8](40))
	if rgb.ContainsColors() {
		t.Fatal("gray valued rgb has no colors")
	}
	_ = rgb.Plot(2, 2, RGB[uint8](40, 41, 40))
	if !rgb.ContainsColors() {
		t.Fatal("colored pixel not detected")
	}

	argb, _ := NewBitmap[uint8](2, 2, 4)
	_ = argb.Fill(RGBA[uint8](5, 5, 5, 255))
	if argb.ContainsColors() {
		t.Fatal("alpha must not count as color")
	}
}
