package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/vearutop/pixmath"
)

var (
	version = "0.1.0"
	verbose bool
	workers int
)

var rootCmd = &cobra.Command{
	Use:   "pixtool",
	Short: "Inspect and render raw scientific pixel buffers",
	Long: `pixtool works on headerless pixel dumps (interleaved samples, 1, 3 or 4
channels, depth 1, 2, 4, 8 or -8 for float64) and renders them to 8-bit
previews with a display window and gamma.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		pixmath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		pixmath.SetMaxWorkers(workers)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "max goroutines for pixel loops, 0 for GOMAXPROCS")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"pixtool %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}
