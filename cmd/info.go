package cmd

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/urfave/cli/v3"

	"lvmp/lvmp"
)

func newInfoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print the contents of an LVMP file",
		ArgsUsage: "<file.lvmp>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Mode the file was written in: grayscale or palette",
				Value: "grayscale",
			},
			&cli.StringFlag{
				Name:  "preview",
				Usage: "Render the decoded pixels to an image file (format from extension)",
			},
		},
		Action: info,
	}
}

func info(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		cli.ShowAppHelpAndExit(c, 0)
	}
	out := c.Root().Writer
	path := c.Args().First()

	mode, err := lvmp.ParseMode(c.String("mode"))
	if err != nil {
		fmt.Fprintf(out, "❌ %s\n", err)
		return cli.Exit("", exitFailure)
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(out, "❌ Failed opening '%s': %s\n", path, err)
		return cli.Exit("", exitFailure)
	}
	defer f.Close()

	file, err := lvmp.Decode(f, mode)
	if err != nil {
		fmt.Fprintf(out, "❌ Failed decoding '%s': %s\n", path, err)
		return cli.Exit("", exitFailure)
	}

	fmt.Fprintf(out, "🟢 '%s': %dx%d, %s, %d bytes of pixel data\n",
		path, file.Width, file.Height, file.Mode, len(file.Data))
	if mode == lvmp.ModePalette {
		fmt.Fprintf(out, "   palette: %s\n", strings.Join(paletteHex(file.Palette[:]), " "))
	}

	if preview := c.String("preview"); preview != "" {
		if err := imaging.Save(file, preview); err != nil {
			fmt.Fprintf(out, "❌ Failed saving preview '%s': %s\n", preview, err)
			return cli.Exit("", exitSinkError)
		}
		fmt.Fprintf(out, "🟢 Saved preview '%s'\n", preview)
	}
	return nil
}

// paletteHex formats colors as #rrggbb strings.
func paletteHex(colors []color.RGBA) []string {
	hex := make([]string, len(colors))
	for i, c := range colors {
		col, _ := colorful.MakeColor(c)
		hex[i] = col.Hex()
	}
	return hex
}
