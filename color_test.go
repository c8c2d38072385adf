package pixmath

import (
	"math"
	"testing"
)

func TestColorSubSaturates(t *testing.T) {
	got := RGB[uint64](3, 5, 7).Sub(RGB[uint64](5, 3, 2))
	want := RGB[uint64](0, 2, 5)
	if got != want {
		t.Fatalf("unexpected difference: got %+v want %+v", got, want)
	}

	f := RGB[float64](3, 5, 7).Sub(RGB[float64](5, 3, 2))
	if f.R != -2 || f.G != 2 || f.B != 5 {
		t.Fatalf("float difference must not clamp: %+v", f)
	}
}

func TestColorAddSaturates(t *testing.T) {
	got := RGB[uint8](200, 10, 255).Add(RGB[uint8](100, 20, 1))
	if got != RGB[uint8](255, 30, 255) {
		t.Fatalf("unexpected sum: %+v", got)
	}
	if a := RGBA[uint8](1, 1, 1, 7).Add(RGB[uint8](1, 1, 1)).A; a != 7 {
		t.Fatalf("alpha must be kept, got %d", a)
	}
}

func TestColorScalarOps(t *testing.T) {
	c := RGB[uint8](250, 5, 100)
	if got := c.AddScalar(10); got != RGB[uint8](255, 15, 110) {
		t.Fatalf("add scalar: %+v", got)
	}
	if got := c.SubScalar(10); got != RGB[uint8](240, 0, 90) {
		t.Fatalf("sub scalar: %+v", got)
	}
	if got := RGB[uint8](100, 2, 0).Mul(3); got != RGB[uint8](255, 6, 0) {
		t.Fatalf("mul: %+v", got)
	}
	if got := RGB[uint16](100, 7, 0).Div(2); got != RGB[uint16](50, 3, 0) {
		t.Fatalf("div: %+v", got)
	}
}

func TestColorWithBrightnessRoundTrip(t *testing.T) {
	c := RGB[uint8](192, 160, 96)
	if !c.IsColored() {
		t.Fatal("expected a colored value")
	}

	back := c.WithBrightness(c.Luma())
	for _, ch := range [][2]uint8{{back.R, c.R}, {back.G, c.G}, {back.B, c.B}} {
		if d := int(ch[0]) - int(ch[1]); d < -1 || d > 1 {
			t.Fatalf("round trip drifted: got %+v want %+v", back, c)
		}
	}
	if back.A != c.A {
		t.Fatalf("alpha changed: %d", back.A)
	}
}

func TestColorWithBrightnessDarkens(t *testing.T) {
	c := RGB[uint8](192, 160, 96)
	dark := c.WithBrightness(c.Luma() - 10)
	if dark.R >= c.R || dark.G >= c.G || dark.B >= c.B {
		t.Fatalf("expected darker channels: got %+v from %+v", dark, c)
	}
}

func TestColorGray(t *testing.T) {
	g := Gray[uint16](1234)
	if g.IsColored() {
		t.Fatal("gray must not be colored")
	}
	if g.Luma() != 1234 {
		t.Fatalf("unexpected luma %d", g.Luma())
	}
	if got := g.WithBrightness(99); got != Gray[uint16](99) {
		t.Fatalf("unexpected gray brightness: %+v", got)
	}
	if got := (Color[uint8]{}); got.R != 0 || got.A != 0 {
		t.Fatalf("zero color must be at the minimum: %+v", got)
	}
}

func TestColorMix(t *testing.T) {
	got := RGB[uint8](0, 0, 0).Mix(W(0.5, RGB[uint8](100, 200, 50)))
	if got != RGB[uint8](50, 100, 25) {
		t.Fatalf("unexpected mix: %+v", got)
	}

	// Weights above one leave nothing for the receiver.
	got = RGB[uint8](255, 255, 255).Mix(W(1.5, RGB[uint8](10, 10, 10)))
	if got != RGB[uint8](15, 15, 15) {
		t.Fatalf("unexpected overweight mix: %+v", got)
	}
}

func TestColorCompare(t *testing.T) {
	dark, bright := Gray[uint8](10), RGB[uint8](200, 200, 0)
	if !dark.Less(bright) || bright.Less(dark) {
		t.Fatal("unexpected order")
	}
	if dark.Compare(bright) != -1 || bright.Compare(dark) != 1 || dark.Compare(dark) != 0 {
		t.Fatal("unexpected compare result")
	}
	if !dark.Equal(Gray[uint8](10)) || dark.Equal(RGBA[uint8](10, 10, 10, 0)) {
		t.Fatal("unexpected equality")
	}
}

func TestVector(t *testing.T) {
	v := Polar(math.Pi/2, 2)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Y-2) > 1e-12 {
		t.Fatalf("unexpected polar vector %+v", v)
	}
	if phi := (Vector{X: -1}).Phi(); math.Abs(phi-math.Pi) > 1e-12 {
		t.Fatalf("unexpected angle %v", phi)
	}
	if phi := (Vector{Y: -1}).Phi(); math.Abs(phi-3*math.Pi/2) > 1e-12 {
		t.Fatalf("angle must be in [0, 2π): %v", phi)
	}

	r := Vector{X: 3, Y: 4}.Rotate(math.Pi)
	if math.Abs(r.X+3) > 1e-9 || math.Abs(r.Y+4) > 1e-9 {
		t.Fatalf("unexpected rotation %+v", r)
	}

	m := Vector{}.Mix(W(0.25, Vector{X: 4, Y: 8}))
	if m != (Vector{X: 1, Y: 2}) {
		t.Fatalf("unexpected mix %+v", m)
	}
	if !(Vector{X: 1}).Less(Vector{Y: 2}) {
		t.Fatal("vectors must order by length")
	}
}
