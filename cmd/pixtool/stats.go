package main

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"github.com/vearutop/pixmath"
)

var statsFlags struct {
	raw            rawFlags
	x0, y0, x1, y1 int
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print gray statistics of a raw dump region",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	f := statsCmd.Flags()
	statsFlags.raw.register(statsCmd)
	f.IntVar(&statsFlags.x0, "x0", 0, "region left")
	f.IntVar(&statsFlags.y0, "y0", 0, "region top")
	f.IntVar(&statsFlags.x1, "x1", -1, "region right (inclusive), -1 for the right edge")
	f.IntVar(&statsFlags.y1, "y1", -1, "region bottom (inclusive), -1 for the bottom edge")
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	im, err := statsFlags.raw.load()
	if err != nil {
		return err
	}

	r := pixmath.Rect(statsFlags.x0, statsFlags.y0, statsFlags.x1, statsFlags.y1)
	if r.X1 < 0 {
		r.X1 = im.Width() - 1
	}
	if r.Y1 < 0 {
		r.Y1 = im.Height() - 1
	}

	fmt.Println()
	fmt.Printf("  Geometry:   %dx%d, %d channels, depth %d\n", im.Width(), im.Height(), im.Channels(), im.Depth())
	fmt.Printf("  Window:     [%g, %g]\n", im.MinDisplayed(), im.MaxDisplayed())
	fmt.Printf("  Colors:     %t\n", im.ContainsColors())
	if sum, err := im.Digest(); err == nil {
		fmt.Printf("  Digest:     %016x\n", sum)
	}

	switch im.Depth() {
	case pixmath.Depth8:
		err = printStats(im, r, pixmath.As[uint8])
	case pixmath.Depth16:
		err = printStats(im, r, pixmath.As[uint16])
	case pixmath.Depth32:
		err = printStats(im, r, pixmath.As[uint32])
	case pixmath.Depth64:
		err = printStats(im, r, pixmath.As[uint64])
	default:
		err = printStats(im, r, pixmath.As[float64])
	}
	fmt.Println()
	return err
}

func printStats[T pixmath.Sample](im *pixmath.Image, r pixmath.Region, as func(*pixmath.Image) (*pixmath.Bitmap[T], bool)) error {
	bm, ok := as(im)
	if !ok {
		return fmt.Errorf("%w: %d", pixmath.ErrUnsupportedDepth, im.Depth())
	}

	s, err := bm.GrayStats(r)
	if err != nil {
		return err
	}
	p, err := bm.MaxGrayCentroid(r)
	if err != nil {
		return err
	}

	fmt.Printf("  Region:     (%d,%d)-(%d,%d), %d pixels\n", r.X0, r.Y0, r.X1, r.Y1, s.Count)
	fmt.Printf("  Max:        %v at (%d,%d), second %v at (%d,%d)\n", s.Max.Value, s.Max.X, s.Max.Y, s.SecondMax.Value, s.SecondMax.X, s.SecondMax.Y)
	fmt.Printf("  Min:        %v at (%d,%d), second %v at (%d,%d)\n", s.Min.Value, s.Min.X, s.Min.Y, s.SecondMin.Value, s.SecondMin.X, s.SecondMin.Y)
	fmt.Printf("  Mean:       %.4f\n", s.Mean)
	fmt.Printf("  Std dev:    %.4f\n", s.StdDev)
	fmt.Printf("  Peak:       %v centered at (%.1f,%.1f)\n", p.Value, p.X, p.Y)
	if bright, err := bm.Max(r); err == nil && im.Channels() > 1 {
		c := toColorful(bright.Value, bm.MaxDisplayed())
		h, cr, l := c.Hcl()
		fmt.Printf("  Brightest:  %s at (%d,%d), hue %.0f chroma %.2f lightness %.2f\n", c.Clamped().Hex(), bright.X, bright.Y, h, cr, l)
	}
	if bm.IsBrighterThanNeighbours(int(p.X), int(p.Y)) {
		fmt.Println("  Peak is a strict local maximum")
	}
	return nil
}

// toColorful normalizes c to 0..1 against the display maximum.
func toColorful[T pixmath.Sample](c pixmath.Color[T], top T) colorful.Color {
	if top == 0 {
		top = 1
	}
	f := float64(top)
	return colorful.Color{R: float64(c.R) / f, G: float64(c.G) / f, B: float64(c.B) / f}
}
