package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
	"github.com/vearutop/pixmath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// rawFlags describe a headerless pixel dump.
type rawFlags struct {
	path     string
	width    int
	height   int
	channels int
	depth    int
	min, max float64
}

func (r *rawFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.path, "in", "", "raw pixel dump")
	cmd.Flags().IntVar(&r.width, "width", 0, "image width")
	cmd.Flags().IntVar(&r.height, "height", 0, "image height")
	cmd.Flags().IntVar(&r.channels, "channels", 1, "channels: 1, 3 or 4")
	cmd.Flags().IntVar(&r.depth, "depth", 1, "sample depth: 1, 2, 4, 8 or -8")
	cmd.Flags().Float64Var(&r.min, "min", math.NaN(), "display window minimum (default: sample minimum)")
	cmd.Flags().Float64Var(&r.max, "max", math.NaN(), "display window maximum (default: sample maximum)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
}

// load reads the dump and hands it to pixmath through a parameter bundle.
func (r *rawFlags) load() (*pixmath.Image, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	im, err := pixmath.NewImage(0, 0, r.channels, pixmath.Depth(r.depth))
	if err != nil {
		return nil, err
	}
	lo, hi := im.MinDisplayed(), im.MaxDisplayed()
	if !math.IsNaN(r.min) {
		lo = r.min
	}
	if !math.IsNaN(r.max) {
		hi = r.max
	}

	return pixmath.ImageFromParams(pixmath.Params{
		pixmath.KeyImageBuffer:   data,
		pixmath.KeyWidth:         r.width,
		pixmath.KeyHeight:        r.height,
		pixmath.KeyChannels:      r.channels,
		pixmath.KeyDepth:         r.depth,
		pixmath.KeyMinBrightness: lo,
		pixmath.KeyMaxBrightness: hi,
	})
}

var importCmd = &cobra.Command{
	Use:   "import <picture> <raw_out>",
	Short: "Decode a picture into an 8-bit raw dump",
	Long: `import decodes PNG, JPEG, GIF, BMP, TIFF or WebP and writes its pixels as
an 8-bit raw dump: one channel for gray pictures, RGB otherwise.`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	src, err := imaging.Open(args[0], imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}

	bm, err := bitmapFromImage(src)
	if err != nil {
		return err
	}

	if err := os.WriteFile(args[1], bm.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", args[1], err)
	}

	fmt.Printf("  --width %d --height %d --channels %d --depth %d\n", bm.Width(), bm.Height(), bm.Channels(), bm.Depth())
	return nil
}

// bitmapFromImage copies a decoded picture into an 8-bit bitmap.
func bitmapFromImage(src image.Image) (*pixmath.Bitmap[uint8], error) {
	if g, ok := src.(*image.Gray); ok {
		b := g.Bounds()
		bm, err := pixmath.NewBitmap[uint8](b.Dx(), b.Dy(), 1)
		if err != nil {
			return nil, err
		}
		for y := 0; y < b.Dy(); y++ {
			copy(bm.Pix()[y*b.Dx():(y+1)*b.Dx()], g.Pix[y*g.Stride:])
		}
		return bm, nil
	}

	nrgba := imaging.Clone(src)
	b := nrgba.Bounds()
	bm, err := pixmath.NewBitmap[uint8](b.Dx(), b.Dy(), 3)
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.Dy(); y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < b.Dx(); x++ {
			p := row[x*4:]
			if err := bm.Plot(x, y, pixmath.RGB(p[0], p[1], p[2])); err != nil {
				return nil, err
			}
		}
	}
	return bm, nil
}

// save encodes img by the file extension of path.
func save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
