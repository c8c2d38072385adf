package pixmath

// Weighted pairs a value with its blend weight.
type Weighted[V any] struct {
	Weight float64
	Value  V
}

// W is a shorthand constructor for Weighted.
func W[V any](weight float64, value V) Weighted[V] {
	return Weighted[V]{Weight: weight, Value: value}
}

// Mixable values can be blended with weighted instances of the same type.
//
// The receiver takes the remaining weight clamp(1-Σweights, 0, 1).
type Mixable[V any] interface {
	Mix(others ...Weighted[V]) V
}

func baseWeight(sum float64) float64 {
	return clampFloat(1-sum, 0, 1)
}
