package pixmath

import (
	"math"
	"sync"
)

const lutSize = 1 << 16

// curve holds the gamma-derived constants of the display response.
type curve struct {
	gamma float64
	mix   float64 // Weight of the logarithmic response, min(1, 2γ).
	delta float64 // Log2 offset below which the logarithmic response is zero.
}

func newCurve(gamma float64) curve {
	return curve{gamma: gamma, mix: min(1, 2*gamma), delta: 9 - 6*gamma}
}

// factor scales the logarithmic response so that a window of width span maps to 0..256.
func (c curve) factor(span float64) float64 {
	return 256 / (math.Log1p(span)/math.Ln2 - c.delta)
}

func (c curve) logResponse(v, factor float64) float64 {
	if r := math.Log2(v) - c.delta; r > 0 {
		return r * factor
	}
	return 0
}

// DisplayLUT caches the 16-bit display response for the gamma it was last prepared with.
// It is safe for concurrent use. The zero value is ready to use.
type DisplayLUT struct {
	mu    sync.Mutex
	valid bool
	c     curve
	table [lutSize]uint8
}

// NewDisplayLUT returns an empty cache.
func NewDisplayLUT() *DisplayLUT {
	return &DisplayLUT{}
}

var sharedLUT = NewDisplayLUT()

// Prepare makes the table match gamma, rebuilding it only when gamma changed since the last call.
func (l *DisplayLUT) Prepare(gamma float64) {
	l.prepare(gamma)
}

func (l *DisplayLUT) prepare(gamma float64) curve {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.valid || l.c.gamma != gamma {
		l.rebuild(gamma)
	}
	return l.c
}

// rebuild fills the table for gamma, l.mu must be held.
func (l *DisplayLUT) rebuild(gamma float64) {
	Logger().Debug("rebuilding display lookup table", "old_gamma", l.c.gamma, "gamma", gamma, "was_valid", l.valid)

	c := newCurve(gamma)
	f := c.factor(lutSize - 1)
	for v := range l.table {
		val0 := float64(v) / 256
		t := c.mix*c.logResponse(float64(v), f) + (1-c.mix)*val0
		l.table[v] = uint8(clampFloat(t, 0, 255))
	}
	l.c, l.valid = c, true
}

// Gamma returns the gamma the table was built for and whether it was built at all.
func (l *DisplayLUT) Gamma() (float64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.c.gamma, l.valid
}

// Lookup returns the response for a 16-bit level, building the table for gamma 0 if it was never prepared.
func (l *DisplayLUT) Lookup(v uint16) uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.valid {
		l.rebuild(0)
	}
	return l.table[v]
}
