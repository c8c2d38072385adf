package pixmath

// Luma weights (ITU-R BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Color is a red/green/blue/alpha value in sample type T.
//
// The zero value has every channel at T's minimum. Constructors default alpha to T's maximum (opaque).
type Color[T Sample] struct {
	R, G, B, A T
}

// RGB returns an opaque color.
func RGB[T Sample](r, g, b T) Color[T] {
	return Color[T]{R: r, G: g, B: b, A: maxOf[T]()}
}

// RGBA returns a color with explicit alpha.
func RGBA[T Sample](r, g, b, a T) Color[T] {
	return Color[T]{R: r, G: g, B: b, A: a}
}

// Gray returns an opaque color with all channels set to v.
func Gray[T Sample](v T) Color[T] {
	return Color[T]{R: v, G: v, B: v, A: maxOf[T]()}
}

// Opaque reports whether alpha is at T's maximum.
func (c Color[T]) Opaque() bool { return c.A == maxOf[T]() }

// Luma returns the perceptual gray value, exact when the color is not colored.
func (c Color[T]) Luma() T {
	if !c.IsColored() {
		return c.R
	}
	return roundTo[T](lumaR*float64(c.R) + lumaG*float64(c.G) + lumaB*float64(c.B))
}

// IsColored reports whether the channels differ.
func (c Color[T]) IsColored() bool {
	return c.R != c.G || c.R != c.B
}

// WithBrightness returns a color with luma y and the chroma of c.
func (c Color[T]) WithBrightness(y T) Color[T] {
	if !c.IsColored() {
		return Color[T]{R: y, G: y, B: y, A: c.A}
	}
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	u := -0.14713*r - 0.28886*g + 0.436*b
	v := 0.615*r - 0.51498*g - 0.10001*b
	yf := float64(y)
	hi := float64(maxOf[T]())

	return Color[T]{
		R: roundTo[T](clampFloat(yf+1.13983*v, 0, hi)),
		G: roundTo[T](clampFloat(yf-0.39465*u-0.58060*v, 0, hi)),
		B: roundTo[T](clampFloat(yf+2.03211*u, 0, hi)),
		A: c.A,
	}
}

// Mix blends c with others on all four channels.
func (c Color[T]) Mix(others ...Weighted[Color[T]]) Color[T] {
	var sumW, sumR, sumG, sumB, sumA float64
	for _, o := range others {
		w := o.Weight
		sumW += w
		sumR += w * float64(o.Value.R)
		sumG += w * float64(o.Value.G)
		sumB += w * float64(o.Value.B)
		sumA += w * float64(o.Value.A)
	}
	w := baseWeight(sumW)
	return Color[T]{
		R: roundTo[T](w*float64(c.R) + sumR),
		G: roundTo[T](w*float64(c.G) + sumG),
		B: roundTo[T](w*float64(c.B) + sumB),
		A: roundTo[T](w*float64(c.A) + sumA),
	}
}

// Add adds o channel-wise, saturating at T's maximum. Alpha is kept.
func (c Color[T]) Add(o Color[T]) Color[T] {
	return Color[T]{R: satAdd(c.R, o.R), G: satAdd(c.G, o.G), B: satAdd(c.B, o.B), A: c.A}
}

// Sub subtracts o channel-wise, saturating at T's minimum. Alpha is kept.
func (c Color[T]) Sub(o Color[T]) Color[T] {
	return Color[T]{R: satSub(c.R, o.R), G: satSub(c.G, o.G), B: satSub(c.B, o.B), A: c.A}
}

// AddScalar adds v to red, green and blue, saturating at T's range.
func (c Color[T]) AddScalar(v float64) Color[T] {
	return Color[T]{R: boundedAdd(c.R, v), G: boundedAdd(c.G, v), B: boundedAdd(c.B, v), A: c.A}
}

// SubScalar subtracts v from red, green and blue, saturating at T's range.
func (c Color[T]) SubScalar(v float64) Color[T] {
	return c.AddScalar(-v)
}

// Mul multiplies red, green and blue by f, saturating at T's maximum.
func (c Color[T]) Mul(f T) Color[T] {
	return Color[T]{R: satMul(c.R, f), G: satMul(c.G, f), B: satMul(c.B, f), A: c.A}
}

// Div divides red, green and blue by d. Integer division by zero panics.
func (c Color[T]) Div(d T) Color[T] {
	return Color[T]{R: c.R / d, G: c.G / d, B: c.B / d, A: c.A}
}

// Equal reports whether all four channels match.
func (c Color[T]) Equal(o Color[T]) bool { return c == o }

// Less orders colors by luma.
func (c Color[T]) Less(o Color[T]) bool { return c.Luma() < o.Luma() }

// Compare returns -1, 0 or 1 comparing lumas.
func (c Color[T]) Compare(o Color[T]) int {
	a, b := c.Luma(), o.Luma()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
