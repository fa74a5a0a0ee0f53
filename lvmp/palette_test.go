package lvmp

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// rowImage builds a w x h image whose pixels, in row-major order, are cs.
func rowImage(w, h int, cs ...color.RGBA) Image {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, c := range cs {
		m.SetRGBA(i%w, i/w, c)
	}
	return FromImage(m)
}

func gray(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: 0xFF}
}

func TestPaletteAdd(t *testing.T) {
	var p Palette
	for i := 0; i < PaletteSize; i++ {
		if !p.Add(gray(uint8(i))) {
			t.Fatalf("Add(%d) rejected with %d entries", i, p.Len())
		}
	}
	if !p.Full() {
		t.Error("palette should be full")
	}
	if !p.Add(gray(3)) {
		t.Error("Add of an existing color should succeed on a full palette")
	}
	if p.Add(gray(200)) {
		t.Error("Add of a new color should be rejected on a full palette")
	}
	if p.Len() != PaletteSize {
		t.Errorf("Len() = %d, want %d", p.Len(), PaletteSize)
	}
}

func TestBuildPaletteFirstSeenOrder(t *testing.T) {
	red := color.RGBA{R: 0xFF, A: 0xFF}
	green := color.RGBA{G: 0xFF, A: 0xFF}
	blue := color.RGBA{B: 0xFF, A: 0xFF}
	img := rowImage(3, 2, green, red, green, blue, red, blue)

	p, err := BuildPalette(img)
	if err != nil {
		t.Fatalf("BuildPalette() error = %v", err)
	}
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	colors := p.Colors()
	want := []color.RGBA{green, red, blue}
	for i, c := range want {
		if colors[i] != c {
			t.Errorf("Colors()[%d] = %v, want %v", i, colors[i], c)
		}
	}
	for i := len(want); i < PaletteSize; i++ {
		if colors[i] != black {
			t.Errorf("Colors()[%d] = %v, want black padding", i, colors[i])
		}
	}
	for _, c := range want {
		if got := colors[p.IndexOf(c)]; got != c {
			t.Errorf("palette[IndexOf(%v)] = %v", c, got)
		}
	}
}

func TestBuildPaletteExactlySixteen(t *testing.T) {
	cs := make([]color.RGBA, PaletteSize)
	for i := range cs {
		cs[i] = gray(uint8(i * 16))
	}
	p, err := BuildPalette(rowImage(4, 4, cs...))
	if err != nil {
		t.Fatalf("BuildPalette() error = %v, want nil for 16 colors", err)
	}
	for i, c := range cs {
		if got := p.IndexOf(c); got != Code(i) {
			t.Errorf("IndexOf(%v) = %d, want %d", c, got, i)
		}
	}
}

func TestBuildPaletteOverflow(t *testing.T) {
	cs := make([]color.RGBA, 17)
	for i := range cs {
		cs[i] = gray(uint8(i * 10))
	}
	p, err := BuildPalette(rowImage(17, 1, cs...))
	if !errors.Is(err, ErrPaletteOverflow) {
		t.Fatalf("BuildPalette() error = %v, want ErrPaletteOverflow", err)
	}
	colors := p.Colors()
	for i := 0; i < PaletteSize; i++ {
		if colors[i] != cs[i] {
			t.Errorf("Colors()[%d] = %v, want %v", i, colors[i], cs[i])
		}
	}
	if got := p.IndexOf(cs[16]); got != 0 {
		t.Errorf("IndexOf(dropped color) = %d, want 0", got)
	}
}

func TestBuildPaletteRowMajor(t *testing.T) {
	// 2x2: (0,0)=a (1,0)=b (0,1)=c (1,1)=d; row-major order is a b c d.
	a, b, c, d := gray(1), gray(2), gray(3), gray(4)
	p, err := BuildPalette(rowImage(2, 2, a, b, c, d))
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []color.RGBA{a, b, c, d} {
		if got := p.Colors()[i]; got != want {
			t.Errorf("Colors()[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestBuildPaletteEmpty(t *testing.T) {
	p, err := BuildPalette(rowImage(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
	b := p.appendTo(nil)
	if len(b) != PaletteBytes {
		t.Fatalf("len(appendTo) = %d, want %d", len(b), PaletteBytes)
	}
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %d, want 0", i, v)
		}
	}
}

func TestPaletteIgnoresAlpha(t *testing.T) {
	var p Palette
	p.Add(color.RGBA{R: 10, G: 20, B: 30, A: 0xFF})
	if !p.Add(color.RGBA{R: 10, G: 20, B: 30, A: 0x10}) || p.Len() != 1 {
		t.Errorf("colors differing only in alpha should share an entry, Len() = %d", p.Len())
	}
}

func TestPaletteIndexOfUncollectedBlack(t *testing.T) {
	red := color.RGBA{R: 0xFF, A: 0xFF}
	p, err := BuildPalette(rowImage(2, 1, red, white))
	if err != nil {
		t.Fatal(err)
	}
	i := p.IndexOf(black)
	if i != 2 {
		t.Errorf("IndexOf(black) = %d, want first padding entry 2", i)
	}
	if got := p.Colors()[i]; got != black {
		t.Errorf("Colors()[IndexOf(black)] = %v, want black", got)
	}

	var full Palette
	for i := 1; i <= PaletteSize; i++ {
		full.Add(gray(uint8(i)))
	}
	if got := full.IndexOf(black); got != 0 {
		t.Errorf("IndexOf(black) on a full palette without black = %d, want 0", got)
	}
}
