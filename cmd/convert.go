package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"lvmp/loader"
	"lvmp/lvmp"
)

type config struct {
	mode    lvmp.Mode
	load    loader.Options
	verbose bool
}

func newConfig(c *cli.Command) (config, error) {
	cfg := config{
		mode:    lvmp.ModeGrayscale,
		verbose: c.Bool("verbose"),
		load: loader.Options{
			AutoOrientation: c.Bool("auto-orient"),
			Nearest:         c.Bool("nearest"),
		},
	}
	if c.Bool("palette") {
		cfg.mode = lvmp.ModePalette
	}
	if s := c.String("fit"); s != "" {
		w, h, err := loader.ParseSize(s)
		if err != nil {
			return cfg, err
		}
		cfg.load.FitWidth, cfg.load.FitHeight = w, h
	}
	return cfg, nil
}

func convert(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 2 {
		cli.ShowAppHelpAndExit(c, 0)
	}
	out := &syncWriter{w: c.Root().Writer}

	cfg, err := newConfig(c)
	if err != nil {
		fmt.Fprintf(out, "❌ %s\n", err)
		return cli.Exit("", exitFailure)
	}

	src, dst := c.Args().Get(0), c.Args().Get(1)
	jobs := []job{{src: src, dst: dst}}
	if c.Bool("dir") {
		jobs, err = collectJobs(src, dst)
		if err != nil {
			fmt.Fprintf(out, "❌ %s\n", err)
			return cli.Exit("", exitCode(err))
		}
		if len(jobs) == 0 {
			fmt.Fprintf(out, "🟢 No images found in '%s'\n", src)
			return nil
		}
	}

	err = runJobs(ctx, jobs, int(c.Int("workers")), func(ctx context.Context, j job) error {
		return convertOne(ctx, out, j, cfg)
	})
	if err != nil {
		return cli.Exit("", exitCode(err))
	}
	return nil
}

// convertOne loads, encodes and saves a single image, reporting the outcome
// on out.
func convertOne(ctx context.Context, out io.Writer, j job, cfg config) error {
	img, err := loader.Load(j.src, cfg.load)
	if err != nil {
		fmt.Fprintf(out, "❌ %s\n", err)
		return err
	}

	res, err := lvmp.EncodeFile(ctx, j.dst, img, cfg.mode)
	if err != nil {
		fmt.Fprintf(out, "❌ Failed converting '%s': %s\n", j.src, err)
		return err
	}

	if res.Overflow {
		fmt.Fprintf(out, "⚠️  '%s' has more than %d colors, the rest use palette entry 0\n", j.src, lvmp.PaletteSize)
	}
	if cfg.verbose && res.Palette != nil {
		colors := res.Palette.Colors()
		fmt.Fprintf(out, "   palette: %s\n", strings.Join(paletteHex(colors[:res.Palette.Len()]), " "))
	}
	fmt.Fprintf(out, "🟢 The result is saved as '%s' (%dx%d, %s, %d bytes)\n",
		j.dst, res.Width, res.Height, res.Mode, res.Bytes)
	return nil
}

// exitCode maps a conversion error to the process exit status.
func exitCode(err error) int {
	var sinkErr *lvmp.SinkOpenError
	switch {
	case errors.As(err, &sinkErr):
		return exitSinkError
	case errors.Is(err, lvmp.ErrDimensionOverflow):
		return exitDimension
	default:
		return exitFailure
	}
}
