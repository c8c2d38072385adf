package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vearutop/pixmath"
)

var demoGamma float64

var demoCmd = &cobra.Command{
	Use:   "demo <out_picture>",
	Short: "Draw a red and a green line and render them with gamma",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().Float64Var(&demoGamma, "gamma", 0.4, "display gamma, 0 for linear")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(_ *cobra.Command, args []string) error {
	bm, err := pixmath.NewBitmap[uint8](256, 256, 3)
	if err != nil {
		return err
	}
	if err := bm.DrawLineColor(10, 10, 200, 10, pixmath.RGB[uint8](255, 0, 0)); err != nil {
		return err
	}
	if err := bm.DrawLineColor(10, 10, 10, 200, pixmath.RGB[uint8](0, 255, 0)); err != nil {
		return err
	}
	bm.SetDisplayWindow(0, 255)

	d, err := bm.ConvertToDepth8(func(o *pixmath.ConvertOptions) {
		o.Gamma = demoGamma
	})
	if err != nil {
		return err
	}

	p := d.Pix[10*d.Stride+10*d.Channels:]
	fmt.Printf("  (10,10) BGRA: %d %d %d %d\n", p[0], p[1], p[2], p[3])

	return save(d.Image(), args[0])
}
