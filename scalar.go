package pixmath

// Scalar is a single mixable sample value.
type Scalar[T Sample] struct {
	V T
}

// Mix blends s with others, rounding to T for integer samples.
func (s Scalar[T]) Mix(others ...Weighted[Scalar[T]]) Scalar[T] {
	var sum, sumW float64
	for _, o := range others {
		sumW += o.Weight
		sum += o.Weight * float64(o.Value.V)
	}
	return Scalar[T]{V: roundTo[T](baseWeight(sumW)*float64(s.V) + sum)}
}
