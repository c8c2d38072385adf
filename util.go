package pixmath

import (
	"math"
	"math/bits"
)

// roundTo converts v to T, rounding half away from zero and saturating at T's range.
func roundTo[T Sample](v float64) T {
	if isFloat[T]() {
		switch {
		case math.IsInf(v, 1):
			v = math.MaxFloat64
		case math.IsInf(v, -1):
			v = -math.MaxFloat64
		}
		return T(v)
	}
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	hi := maxOf[T]()
	if v >= float64(hi) {
		return hi
	}
	return T(math.Round(v))
}

// boundedAdd adds b to a, saturating at T's range and truncating toward zero for integer T.
func boundedAdd[T Sample](a T, b float64) T {
	r := float64(a) + b
	if hi := maxOf[T](); r >= float64(hi) {
		return hi
	}
	if lo := lowestOf[T](); r <= float64(lo) {
		return lo
	}
	if isFloat[T]() {
		return T(r)
	}
	return T(math.Trunc(r))
}

func satAdd[T Sample](a, b T) T {
	if isFloat[T]() {
		s := float64(a) + float64(b)
		if math.IsInf(s, 0) {
			return roundTo[T](s)
		}
		return T(s)
	}
	s := a + b
	if s < a {
		return maxOf[T]()
	}
	return s
}

func satSub[T Sample](a, b T) T {
	if isFloat[T]() {
		d := float64(a) - float64(b)
		if math.IsInf(d, 0) {
			return roundTo[T](d)
		}
		return T(d)
	}
	if b > a {
		return 0
	}
	return a - b
}

func satMul[T Sample](a, f T) T {
	if isFloat[T]() {
		return roundTo[T](float64(a) * float64(f))
	}
	hi, lo := bits.Mul64(uint64(a), uint64(f))
	if top := maxOf[T](); hi != 0 || lo > uint64(top) {
		return top
	}
	return T(lo)
}

func absDiff[T Sample](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampToByte(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
