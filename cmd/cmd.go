// Package cmd implements the lvmp command line.
package cmd

import (
	"os"

	"github.com/urfave/cli/v3"
)

const (
	defaultWorkers = 4
	outputExt      = ".lvmp"
)

// Exit codes.
const (
	exitFailure   = 1
	exitSinkError = 2
	exitDimension = 3
)

// New returns the root command. Every call builds a fresh command so it
// can be run more than once in a process.
func New() *cli.Command {
	return &cli.Command{
		Name:      "lvmp",
		Usage:     "Convert an image into a 4-bit LVMP bitmap",
		ArgsUsage: "<source> <destination>",
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "palette",
				Usage:   "Store a 16 color palette instead of grayscale levels",
				Aliases: []string{"p"},
				Sources: cli.EnvVars("LVMP_PALETTE"),
			},
			&cli.BoolFlag{
				Name:    "dir",
				Usage:   "Convert every image in the source directory into the destination directory",
				Aliases: []string{"d"},
			},
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "Number of images converted concurrently with --dir",
				Aliases: []string{"w"},
				Value:   defaultWorkers,
				Sources: cli.EnvVars("LVMP_WORKERS"),
			},
			&cli.StringFlag{
				Name:  "fit",
				Usage: "Downscale to fit a WxH box before converting, e.g. 160x50",
			},
			&cli.BoolFlag{
				Name:  "nearest",
				Usage: "Resize with nearest-neighbor sampling (keeps the color count)",
			},
			&cli.BoolFlag{
				Name:  "auto-orient",
				Usage: "Apply the EXIF orientation of JPEG sources",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Print the palette of each converted image",
				Aliases: []string{"v"},
			},
		},
		Action: convert,
		Commands: []*cli.Command{
			newInfoCommand(),
		},
	}
}
