package pixmath

import "math"

// Vector is a 2D displacement, mixable for interpolation of flow or gradient fields.
type Vector struct {
	X, Y float64
}

// Polar builds a vector from angle phi (radians) and length.
func Polar(phi, length float64) Vector {
	return Vector{X: math.Cos(phi) * length, Y: math.Sin(phi) * length}
}

// Phi returns the angle in [0, 2π).
func (v Vector) Phi() float64 {
	return math.Mod(math.Atan2(v.Y, v.X)+2*math.Pi, 2*math.Pi)
}

// Len returns the Euclidean length.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vector) Add(o Vector) Vector { return Vector{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vector) Sub(o Vector) Vector { return Vector{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vector) Scale(f float64) Vector { return Vector{X: v.X * f, Y: v.Y * f} }

func (v Vector) Div(f float64) Vector { return Vector{X: v.X / f, Y: v.Y / f} }

// Rotate turns the vector by angle radians, keeping its length.
func (v Vector) Rotate(angle float64) Vector {
	return Polar(math.Mod(v.Phi()+angle+2*math.Pi, 2*math.Pi), v.Len())
}

// Less orders vectors by length.
func (v Vector) Less(o Vector) bool { return v.Len() < o.Len() }

// Mix blends v with others.
func (v Vector) Mix(others ...Weighted[Vector]) Vector {
	var sumW, sumX, sumY float64
	for _, o := range others {
		sumW += o.Weight
		sumX += o.Weight * o.Value.X
		sumY += o.Weight * o.Value.Y
	}
	w := baseWeight(sumW)
	return Vector{X: w*v.X + sumX, Y: w*v.Y + sumY}
}
