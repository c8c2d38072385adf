package pixmath

import "testing"

func TestGeometryComparison(t *testing.T) {
	a, _ := NewBitmap[uint8](4, 3, 3)
	b, _ := NewBitmap[uint8](4, 3, 3)
	_ = b.Fill(RGB[uint8](1, 2, 3))

	if !SameGeometry(a, b) {
		t.Fatal("same geometry must match regardless of content")
	}

	wide, _ := NewBitmap[uint16](4, 3, 3)
	if SameGeometry(a, wide) {
		t.Fatal("different depths must not match")
	}
	if CompareSize(a, wide) != -1 || CompareSize(wide, a) != 1 || CompareSize(a, b) != 0 {
		t.Fatal("unexpected size order")
	}
	if ByteSize(wide) != 72 {
		t.Fatalf("unexpected byte size %v", ByteSize(wide))
	}

	f, _ := NewBitmap[float64](1, 3, 3)
	if CompareSize(f, wide) != 0 {
		t.Fatal("float samples count their absolute depth")
	}

	im, _ := NewImage(4, 3, 3, Depth8)
	if !SameGeometry(im, a) {
		t.Fatal("images and bitmaps compare by geometry")
	}
}
