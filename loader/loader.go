// Package loader opens source images for the LVMP encoder.
//
// Decoding goes through imaging, so PNG, JPEG, GIF, BMP and TIFF are
// supported out of the box; WebP is registered from golang.org/x/image.
package loader

import (
	"fmt"
	"image"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"lvmp/lvmp"
)

// Extensions lists the file extensions Load understands, lower case.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// LoadError is returned when a source image cannot be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loader: failed loading '%s': %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Options controls how an image is prepared before encoding.
type Options struct {
	// AutoOrientation applies the EXIF orientation tag of JPEG files.
	AutoOrientation bool
	// FitWidth and FitHeight, when both positive, downscale the image to
	// fit the box while keeping the aspect ratio.
	FitWidth, FitHeight int
	// Nearest resizes with nearest-neighbor sampling instead of Lanczos.
	// Use it for palette images: it introduces no new colors.
	Nearest bool
}

// Load opens the image at path and returns it ready for encoding.
func Load(path string, opts Options) (lvmp.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(opts.AutoOrientation))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return lvmp.FromImage(Fit(img, opts)), nil
}

// Fit applies the resize from opts. Images already inside the box are
// returned unchanged.
func Fit(img image.Image, opts Options) image.Image {
	if opts.FitWidth <= 0 || opts.FitHeight <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= opts.FitWidth && b.Dy() <= opts.FitHeight {
		return img
	}
	filter := imaging.Lanczos
	if opts.Nearest {
		filter = imaging.NearestNeighbor
	}
	return imaging.Fit(img, opts.FitWidth, opts.FitHeight, filter)
}

// ParseSize parses a "WxH" bounding box such as "160x50".
func ParseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("loader: size %q is not WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("loader: invalid width in %q", s)
	}
	if h, err = strconv.Atoi(hs); err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("loader: invalid height in %q", s)
	}
	return w, h, nil
}

// IsSupported reports whether path has an image extension Load handles.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
