package pixmath

import "math"

// Sample is the set of supported channel value types.
type Sample interface {
	uint8 | uint16 | uint32 | uint64 | float64
}

// Depth identifies a sample type by its byte width, negative for floating point.
type Depth int

const (
	Depth8   Depth = 1
	Depth16  Depth = 2
	Depth32  Depth = 4
	Depth64  Depth = 8
	DepthF64 Depth = -8
)

// Valid reports whether d is one of the supported depths.
func (d Depth) Valid() bool {
	switch d {
	case Depth8, Depth16, Depth32, Depth64, DepthF64:
		return true
	default:
		return false
	}
}

// Bytes returns the number of bytes per sample.
func (d Depth) Bytes() int {
	if d < 0 {
		return int(-d)
	}
	return int(d)
}

// Float reports whether d selects the floating point domain.
func (d Depth) Float() bool { return d < 0 }

// Ownership tells whether a container allocated its buffer or wraps caller memory.
type Ownership int

const (
	// Owned buffers are allocated by the container.
	Owned Ownership = iota
	// Borrowed buffers belong to the caller, who keeps them alive while the container is used.
	Borrowed
)

func (o Ownership) String() string {
	if o == Borrowed {
		return "borrowed"
	}
	return "owned"
}

// Region is a rectangle with inclusive corners (X0,Y0) and (X1,Y1).
type Region struct {
	X0, Y0, X1, Y1 int
}

// Rect returns the inclusive region spanning x0..x1, y0..y1.
func Rect(x0, y0, x1, y1 int) Region {
	return Region{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Empty reports whether the region contains no pixels.
func (r Region) Empty() bool { return r.X1 < r.X0 || r.Y1 < r.Y0 }

// Count returns the number of pixels inside the region.
func (r Region) Count() int {
	if r.Empty() {
		return 0
	}
	return (r.X1 - r.X0 + 1) * (r.Y1 - r.Y0 + 1)
}

// Geometry is implemented by every container, whatever its sample type.
type Geometry interface {
	Width() int
	Height() int
	Channels() int
	Depth() Depth
}

const noChannel = -1

func depthOf[T Sample]() Depth {
	var z T
	switch any(z).(type) {
	case uint8:
		return Depth8
	case uint16:
		return Depth16
	case uint32:
		return Depth32
	case uint64:
		return Depth64
	default:
		return DepthF64
	}
}

// maxOf returns the largest value representable by T.
func maxOf[T Sample]() T {
	var z T
	switch p := any(&z).(type) {
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *float64:
		*p = math.MaxFloat64
	}
	return z
}

// lowestOf returns the most negative value representable by T.
func lowestOf[T Sample]() T {
	var z T
	if p, ok := any(&z).(*float64); ok {
		*p = -math.MaxFloat64
	}
	return z
}

func isFloat[T Sample]() bool {
	var z T
	_, ok := any(z).(float64)
	return ok
}
