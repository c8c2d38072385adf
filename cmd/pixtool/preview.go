package main

import (
	"github.com/spf13/cobra"
	"github.com/vearutop/pixmath"
)

var previewFlags struct {
	raw          rawFlags
	gamma        float64
	x, y         int
	w, h         int
	scaledWidth  int
	scaledHeight int
	thumb        uint
}

var previewCmd = &cobra.Command{
	Use:   "preview <out_picture>",
	Short: "Render a raw dump to an 8-bit picture",
	Long: `preview maps the display window of a raw dump to 8 bits with an optional
gamma, crops and letterboxes it, and saves it in the format given by the
output extension (png, jpg, gif, tif, bmp).`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	f := previewCmd.Flags()
	previewFlags.raw.register(previewCmd)
	f.Float64Var(&previewFlags.gamma, "gamma", 0, "display gamma, 0 for linear")
	f.IntVar(&previewFlags.x, "x", 0, "crop left")
	f.IntVar(&previewFlags.y, "y", 0, "crop top")
	f.IntVar(&previewFlags.w, "crop-width", 0, "crop width, 0 to the right edge")
	f.IntVar(&previewFlags.h, "crop-height", 0, "crop height, 0 to the bottom edge")
	f.IntVar(&previewFlags.scaledWidth, "scaled-width", 0, "output width, letterboxed when the aspect differs")
	f.IntVar(&previewFlags.scaledHeight, "scaled-height", 0, "output height, letterboxed when the aspect differs")
	f.UintVar(&previewFlags.thumb, "thumb", 0, "smoothly shrink the result to fit this size")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, args []string) error {
	im, err := previewFlags.raw.load()
	if err != nil {
		return err
	}

	d, err := im.ConvertToDepth8(func(o *pixmath.ConvertOptions) {
		o.Gamma = previewFlags.gamma
		o.X, o.Y = previewFlags.x, previewFlags.y
		o.Width, o.Height = previewFlags.w, previewFlags.h
		o.ScaledWidth, o.ScaledHeight = previewFlags.scaledWidth, previewFlags.scaledHeight
	})
	if err != nil {
		return err
	}

	if n := previewFlags.thumb; n > 0 {
		return save(d.Preview(n, n), args[0])
	}
	return save(d.Image(), args[0])
}
