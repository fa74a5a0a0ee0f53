package lvmp

import (
	"image"
	"image/color"
)

// Image is the read-only pixel source consumed by the encoder.
// Coordinates are zero-based; (0, 0) is the top-left pixel.
type Image interface {
	// Size returns the image width and height in pixels.
	Size() (width, height int)
	// PixelAt returns the opaque color of the pixel at (x, y).
	// Coordinates outside the image yield black.
	PixelAt(x, y int) color.RGBA
}

// stdImage adapts an image.Image to Image.
type stdImage struct {
	m    image.Image
	rect image.Rectangle
}

// FromImage wraps a standard library image. The image bounds are translated
// so that Bounds().Min becomes (0, 0). The alpha channel is dropped.
func FromImage(m image.Image) Image {
	return &stdImage{m: m, rect: m.Bounds()}
}

func (s *stdImage) Size() (width, height int) {
	return s.rect.Dx(), s.rect.Dy()
}

func (s *stdImage) PixelAt(x, y int) color.RGBA {
	p := image.Point{X: x + s.rect.Min.X, Y: y + s.rect.Min.Y}
	if !p.In(s.rect) {
		return black
	}
	// Fast path for the type imaging produces.
	if n, ok := s.m.(*image.NRGBA); ok {
		i := n.PixOffset(p.X, p.Y)
		return color.RGBA{R: n.Pix[i], G: n.Pix[i+1], B: n.Pix[i+2], A: 0xFF}
	}
	return opaque(s.m.At(p.X, p.Y))
}

var black = color.RGBA{A: 0xFF}

// opaque converts c to non-premultiplied 8-bit RGB with alpha forced to 0xFF.
func opaque(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xFF}
}

// sameRGB reports whether a and b have identical color channels.
func sameRGB(a, b color.RGBA) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B
}
