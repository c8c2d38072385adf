package pixmath

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

// Located is a value found at pixel (X, Y).
type Located[V any] struct {
	X, Y  int
	Value V
}

// GrayStats summarizes gray values of a region.
//
// SecondMax and SecondMin are the second entries of the value-sorted multiset, so they equal Max or
// Min when the extreme value occurs twice; they are only meaningful when Count > 1.
// Ties between equal values resolve to the first pixel in row-major order.
type GrayStats[T Sample] struct {
	Max, SecondMax Located[T]
	Min, SecondMin Located[T]
	Mean           float64
	StdDev         float64 // Population standard deviation.
	Count          int
}

// Peak describes the brightest value of a region and where it sits.
type Peak[T Sample] struct {
	Value T
	// X and Y are the center of the bounding box of all pixels holding Value.
	X, Y      float64
	SecondMax Located[T]
	Mean      float64
	Count     int
}

// clampRegion intersects r with the bitmap and fails when nothing remains.
func (b *Bitmap[T]) clampRegion(op string, r Region) (Region, error) {
	c := Region{
		X0: max(0, r.X0),
		Y0: max(0, r.Y0),
		X1: min(b.width-1, r.X1),
		Y1: min(b.height-1, r.Y1),
	}
	if c.Empty() || b.Empty() {
		return c, fmt.Errorf("%s (%d,%d)-(%d,%d) on %dx%d: %w", op, r.X0, r.Y0, r.X1, r.Y1, b.width, b.height, ErrEmptyRegion)
	}
	return c, nil
}

// scanRows runs fn over the rows of r in parallel chunks.
func scanRows(r Region, fn func(y0, y1 int)) {
	parallelFor(r.Y1-r.Y0+1, func(start, end int) {
		fn(r.Y0+start, r.Y0+end)
	})
}

func scanBefore(ax, ay, bx, by int) bool {
	return ay < by || (ay == by && ax < bx)
}

// ranked keeps the two best entries of a multiset, ordered by value then scan position.
type ranked[T Sample] struct {
	first, second Located[T]
	n             int
	desc          bool
}

func (r *ranked[T]) beats(a, b Located[T]) bool {
	if a.Value != b.Value {
		if r.desc {
			return a.Value > b.Value
		}
		return a.Value < b.Value
	}
	return scanBefore(a.X, a.Y, b.X, b.Y)
}

func (r *ranked[T]) push(p Located[T]) {
	switch {
	case r.n == 0:
		r.first, r.n = p, 1
	case r.beats(p, r.first):
		r.second, r.first, r.n = r.first, p, 2
	case r.n == 1 || r.beats(p, r.second):
		r.second, r.n = p, 2
	}
}

func (r *ranked[T]) merge(o ranked[T]) {
	if o.n > 0 {
		r.push(o.first)
	}
	if o.n > 1 {
		r.push(o.second)
	}
}

// moments accumulates count, mean and squared deviations (Welford), mergeable across chunks.
type moments struct {
	n    int
	mean float64
	m2   float64
}

func (m *moments) add(v float64) {
	m.n++
	d := v - m.mean
	m.mean += d / float64(m.n)
	m.m2 += d * (v - m.mean)
}

func (m *moments) merge(o moments) {
	if o.n == 0 {
		return
	}
	if m.n == 0 {
		*m = o
		return
	}
	n := m.n + o.n
	d := o.mean - m.mean
	m.mean += d * float64(o.n) / float64(n)
	m.m2 += o.m2 + d*d*float64(m.n)*float64(o.n)/float64(n)
	m.n = n
}

func (m moments) stdDev() float64 {
	if m.n == 0 {
		return 0
	}
	return math.Sqrt(m.m2 / float64(m.n))
}

// GrayStats scans the region (clamped to the bitmap) for gray extrema, mean and standard deviation.
func (b *Bitmap[T]) GrayStats(r Region) (GrayStats[T], error) {
	r, err := b.clampRegion("gray stats", r)
	if err != nil {
		return GrayStats[T]{}, err
	}

	var (
		mu  sync.Mutex
		hi  = ranked[T]{desc: true}
		lo  = ranked[T]{}
		acc moments
	)
	scanRows(r, func(y0, y1 int) {
		lhi, llo := ranked[T]{desc: true}, ranked[T]{}
		var lacc moments
		for y := y0; y < y1; y++ {
			for x := r.X0; x <= r.X1; x++ {
				p := Located[T]{X: x, Y: y, Value: b.GrayAt(x, y)}
				lhi.push(p)
				llo.push(p)
				lacc.add(float64(p.Value))
			}
		}
		mu.Lock()
		hi.merge(lhi)
		lo.merge(llo)
		acc.merge(lacc)
		mu.Unlock()
	})

	return GrayStats[T]{
		Max:       hi.first,
		SecondMax: hi.second,
		Min:       lo.first,
		SecondMin: lo.second,
		Mean:      acc.mean,
		StdDev:    acc.stdDev(),
		Count:     acc.n,
	}, nil
}

// MaxGray returns the brightest gray value of the region and its first position.
func (b *Bitmap[T]) MaxGray(r Region) (Located[T], error) {
	s, err := b.GrayStats(r)
	return s.Max, err
}

// MinGray returns the darkest gray value of the region and its first position.
func (b *Bitmap[T]) MinGray(r Region) (Located[T], error) {
	s, err := b.GrayStats(r)
	return s.Min, err
}

// MaxGrayCentroid finds the brightest gray value and the center of the box enclosing all its occurrences.
func (b *Bitmap[T]) MaxGrayCentroid(r Region) (Peak[T], error) {
	r, err := b.clampRegion("max gray centroid", r)
	if err != nil {
		return Peak[T]{}, err
	}

	type box struct {
		set            bool
		value          T
		x0, y0, x1, y1 int
	}
	extend := func(bx *box, o box) {
		switch {
		case !o.set:
		case !bx.set || o.value > bx.value:
			*bx = o
		case o.value == bx.value:
			bx.x0, bx.y0 = min(bx.x0, o.x0), min(bx.y0, o.y0)
			bx.x1, bx.y1 = max(bx.x1, o.x1), max(bx.y1, o.y1)
		}
	}

	var (
		mu  sync.Mutex
		top box
		hi  = ranked[T]{desc: true}
		acc moments
	)
	scanRows(r, func(y0, y1 int) {
		var ltop box
		lhi := ranked[T]{desc: true}
		var lacc moments
		for y := y0; y < y1; y++ {
			for x := r.X0; x <= r.X1; x++ {
				v := b.GrayAt(x, y)
				extend(&ltop, box{set: true, value: v, x0: x, y0: y, x1: x, y1: y})
				lhi.push(Located[T]{X: x, Y: y, Value: v})
				lacc.add(float64(v))
			}
		}
		mu.Lock()
		extend(&top, ltop)
		hi.merge(lhi)
		acc.merge(lacc)
		mu.Unlock()
	})

	return Peak[T]{
		Value:     top.value,
		X:         float64(top.x0+top.x1) / 2,
		Y:         float64(top.y0+top.y1) / 2,
		SecondMax: hi.second,
		Mean:      acc.mean,
		Count:     acc.n,
	}, nil
}

// Max returns the color with the highest luma in the region.
func (b *Bitmap[T]) Max(r Region) (Located[Color[T]], error) {
	return b.extremeColor("max", r, true)
}

// Min returns the color with the lowest luma in the region.
func (b *Bitmap[T]) Min(r Region) (Located[Color[T]], error) {
	return b.extremeColor("min", r, false)
}

func (b *Bitmap[T]) extremeColor(op string, r Region, brightest bool) (Located[Color[T]], error) {
	r, err := b.clampRegion(op, r)
	if err != nil {
		return Located[Color[T]]{}, err
	}

	type candidate struct {
		set  bool
		luma T
		p    Located[Color[T]]
	}
	better := func(a, c candidate) bool {
		if !c.set {
			return true
		}
		if a.luma != c.luma {
			return (a.luma > c.luma) == brightest
		}
		return scanBefore(a.p.X, a.p.Y, c.p.X, c.p.Y)
	}

	var (
		mu   sync.Mutex
		best candidate
	)
	scanRows(r, func(y0, y1 int) {
		var local candidate
		for y := y0; y < y1; y++ {
			for x := r.X0; x <= r.X1; x++ {
				c := b.At(x, y)
				cand := candidate{set: true, luma: c.Luma(), p: Located[Color[T]]{X: x, Y: y, Value: c}}
				if better(cand, local) {
					local = cand
				}
			}
		}
		mu.Lock()
		if local.set && better(local, best) {
			best = local
		}
		mu.Unlock()
	})

	return best.p, nil
}

// IsBrighterThanNeighbours reports whether the gray value at (x, y) strictly exceeds every
// 8-connected neighbour that exists. Pixels outside the bitmap are never brighter.
func (b *Bitmap[T]) IsBrighterThanNeighbours(x, y int) bool {
	if !b.inside(x, y) {
		return false
	}
	v := b.GrayAt(x, y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 || !b.inside(x+dx, y+dy) {
				continue
			}
			if v <= b.GrayAt(x+dx, y+dy) {
				return false
			}
		}
	}
	return true
}

// Below reports whether every pixel within radius r of (cx, cy) is at or below the radial
// profile distribution, scaled so that distribution[centerIndex] matches the center gray value.
//
// The profile is indexed by centerIndex + ⌊distance⌋; distances past its end use the last entry.
func (b *Bitmap[T]) Below(cx, cy int, r float64, distribution []float64, centerIndex int) (bool, error) {
	if !b.inside(cx, cy) {
		return false, fmt.Errorf("below: %w: center (%d,%d) outside %dx%d", ErrInvalidParam, cx, cy, b.width, b.height)
	}
	if centerIndex < 0 || centerIndex >= len(distribution) {
		return false, fmt.Errorf("below: %w: center index %d of %d", ErrInvalidDistribution, centerIndex, len(distribution))
	}
	norm := distribution[centerIndex]
	if norm == 0 || math.IsNaN(norm) {
		return false, fmt.Errorf("below: %w: center value %v", ErrInvalidDistribution, norm)
	}

	reg := Region{
		X0: max(0, int(math.Round(float64(cx)-r))),
		Y0: max(0, int(math.Round(float64(cy)-r))),
		X1: min(b.width-1, int(math.Round(float64(cx)+r))),
		Y1: min(b.height-1, int(math.Round(float64(cy)+r))),
	}
	if reg.Empty() {
		return true, nil
	}

	center := float64(b.GrayAt(cx, cy))
	last := len(distribution) - 1

	var violated atomic.Bool
	scanRows(reg, func(y0, y1 int) {
		for y := y0; y < y1 && !violated.Load(); y++ {
			for x := reg.X0; x <= reg.X1; x++ {
				dist := math.Hypot(float64(x-cx), float64(y-cy))
				if dist > r {
					continue
				}
				idx := min(centerIndex+int(dist), last)
				limit := roundTo[T](math.Ceil(center * distribution[idx] / norm))
				if b.GrayAt(x, y) > limit {
					violated.Store(true)
					return
				}
			}
		}
	})

	return !violated.Load(), nil
}
