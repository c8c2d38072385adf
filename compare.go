package pixmath

import "fmt"

// SameGeometry reports whether a and b share width, height, channel count and depth.
// Pixel content is not compared; containers of different sample types never match.
func SameGeometry(a, b Geometry) bool {
	return a.Width() == b.Width() &&
		a.Height() == b.Height() &&
		a.Channels() == b.Channels() &&
		a.Depth() == b.Depth()
}

// ByteSize returns width × height × channels × |depth|.
func ByteSize(g Geometry) float64 {
	return float64(g.Width()) * float64(g.Height()) * float64(g.Channels()) * float64(g.Depth().Bytes())
}

// CompareSize orders containers by ByteSize, returning -1, 0 or 1.
func CompareSize(a, b Geometry) int {
	sa, sb := ByteSize(a), ByteSize(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

func describe(g Geometry) string {
	return fmt.Sprintf("%dx%dx%d depth %d", g.Width(), g.Height(), g.Channels(), g.Depth())
}
