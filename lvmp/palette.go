package lvmp

import (
	"errors"
	"image/color"
)

// PaletteSize is the fixed number of palette entries in an LVMP file.
const PaletteSize = 16

// ErrPaletteOverflow is returned by BuildPalette when the image has more
// than PaletteSize distinct colors. It is a warning: the palette returned
// alongside it is complete and usable.
var ErrPaletteOverflow = errors.New("lvmp: image has more than 16 colors, extra colors map to index 0")

// Palette is a bounded, ordered set of distinct colors.
// The zero value is an empty palette ready to use.
type Palette struct {
	colors [PaletteSize]color.RGBA
	n      int
}

// Add appends c if it is not already present. It returns false when c is
// new and the palette is full, leaving the palette unchanged.
func (p *Palette) Add(c color.RGBA) bool {
	if p.find(c) >= 0 {
		return true
	}
	if p.n == PaletteSize {
		return false
	}
	p.colors[p.n] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	p.n++
	return true
}

// Len returns the number of colors collected.
func (p *Palette) Len() int {
	return p.n
}

// Full reports whether all PaletteSize entries are taken.
func (p *Palette) Full() bool {
	return p.n == PaletteSize
}

// Colors returns all PaletteSize entries in insertion order. Unused entries
// are black.
func (p *Palette) Colors() [PaletteSize]color.RGBA {
	out := p.colors
	for i := p.n; i < PaletteSize; i++ {
		out[i] = black
	}
	return out
}

// IndexOf returns the index of the first entry of Colors equal to c.
// Black that was not collected matches the first padding entry while the
// palette is not full. Other colors that are not in the palette map to 0.
func (p *Palette) IndexOf(c color.RGBA) Code {
	if i := p.find(c); i >= 0 {
		return Code(i)
	}
	if sameRGB(c, black) && !p.Full() {
		return Code(p.n)
	}
	return 0
}

func (p *Palette) find(c color.RGBA) int {
	for i := 0; i < p.n; i++ {
		if sameRGB(p.colors[i], c) {
			return i
		}
	}
	return -1
}

// appendTo appends the 16 entries as R, G, B byte triples.
func (p *Palette) appendTo(b []byte) []byte {
	for _, c := range p.Colors() {
		b = append(b, c.R, c.G, c.B)
	}
	return b
}

// BuildPalette scans img in row-major order and collects its distinct
// colors in first-seen order. Scanning stops at the first color that does
// not fit; in that case the full palette is returned together with
// ErrPaletteOverflow. An image with exactly 16 distinct colors fills the
// palette without an error.
func BuildPalette(img Image) (*Palette, error) {
	p := &Palette{}
	w, h := img.Size()
	for i := 0; i < w*h; i++ {
		if !p.Add(img.PixelAt(i%w, i/w)) {
			return p, ErrPaletteOverflow
		}
	}
	return p, nil
}
