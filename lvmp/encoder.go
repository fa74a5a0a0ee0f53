package lvmp

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Signature is the magic string at the start of every LVMP file.
const Signature = "LVMP"

const (
	// HeaderSize is the size of signature, width and height.
	HeaderSize = 8
	// PaletteBytes is the size of the palette block in palette mode.
	PaletteBytes = PaletteSize * 3
	// MaxDimension is the largest width or height the header can store.
	MaxDimension = 0xFFFF
)

var (
	// ErrDimensionOverflow is returned when the image is wider or taller
	// than MaxDimension. Nothing is written in that case.
	ErrDimensionOverflow = errors.New("lvmp: image dimensions exceed 65535")
	// ErrEncoderUsed is returned when Encode is called more than once.
	ErrEncoderUsed = errors.New("lvmp: encoder already used")
)

// Mode selects how pixels are turned into codes.
type Mode int

const (
	// ModeGrayscale quantizes each pixel's intensity to 16 levels.
	ModeGrayscale Mode = iota
	// ModePalette writes a 16-color palette and indexes into it.
	ModePalette
)

func (m Mode) String() string {
	switch m {
	case ModePalette:
		return "palette"
	default:
		return "grayscale"
	}
}

// ParseMode parses "grayscale" (or "gray") and "palette".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "grayscale", "gray", "":
		return ModeGrayscale, nil
	case "palette":
		return ModePalette, nil
	}
	return 0, fmt.Errorf("lvmp: unknown mode %q", s)
}

// EncodedSize returns the size in bytes of an encoded w x h image.
func EncodedSize(w, h int, mode Mode) int {
	n := HeaderSize + w*((h+1)/2)
	if mode == ModePalette {
		n += PaletteBytes
	}
	return n
}

// Result describes a finished encoding.
type Result struct {
	Width, Height int
	Mode          Mode
	Palette       *Palette // nil in grayscale mode
	Overflow      bool     // more than 16 colors, extras mapped to index 0
	Bytes         int64    // bytes written to the sink
}

type state int

const (
	stateNew state = iota
	stateHeader
	statePalette
	statePixels
	stateDone
	stateFailed
)

// Option configures an Encoder.
type Option func(e *Encoder)

// WithMode sets the encoding mode. The default is ModeGrayscale.
func WithMode(m Mode) Option {
	return func(e *Encoder) {
		e.mode = m
	}
}

// Encoder writes a single image to a sink. An Encoder is single-shot:
// once Encode has been called it cannot be reused.
type Encoder struct {
	w     *countingWriter
	mode  Mode
	state state
}

// NewEncoder returns an encoder writing to w. The encoder buffers its
// output and flushes before Encode returns, but never closes w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	e := &Encoder{w: &countingWriter{w: w}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes img as a complete LVMP file. ctx is checked between
// columns; a cancelled context aborts encoding with ctx.Err().
func (e *Encoder) Encode(ctx context.Context, img Image) (*Result, error) {
	if e.state != stateNew {
		return nil, ErrEncoderUsed
	}
	res, err := e.encode(ctx, img)
	if err != nil {
		e.state = stateFailed
		return nil, err
	}
	return res, nil
}

func (e *Encoder) encode(ctx context.Context, img Image) (*Result, error) {
	w, h := img.Size()
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	bw := bufio.NewWriter(e.w)
	res := &Result{Width: w, Height: h, Mode: e.mode}

	hdr := make([]byte, 0, HeaderSize+PaletteBytes)
	hdr = append(hdr, Signature...)
	hdr = binary.LittleEndian.AppendUint16(hdr, uint16(w))
	hdr = binary.LittleEndian.AppendUint16(hdr, uint16(h))
	e.state = stateHeader

	code := Quantize
	if e.mode == ModePalette {
		pal, err := BuildPalette(img)
		if err != nil && !errors.Is(err, ErrPaletteOverflow) {
			return nil, err
		}
		res.Palette = pal
		res.Overflow = err != nil
		hdr = pal.appendTo(hdr)
		code = pal.IndexOf
	}
	if _, err := bw.Write(hdr); err != nil {
		return nil, err
	}
	if e.mode == ModePalette {
		e.state = statePalette
	}

	fill := code(black)
	for x := 0; x < w; x++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for y := 0; y < h; y += 2 {
			hi := code(img.PixelAt(x, y))
			// Odd height: the missing partner is filled with black's code.
			b := PackLast(hi) | byte(fill)
			if y+1 < h {
				b = Pack(hi, code(img.PixelAt(x, y+1)))
			}
			if err := bw.WriteByte(b); err != nil {
				return nil, err
			}
		}
	}
	e.state = statePixels

	if err := bw.Flush(); err != nil {
		return nil, err
	}
	e.state = stateDone
	res.Bytes = e.w.n
	return res, nil
}

func checkSize(w, h int) error {
	if w < 0 || h < 0 || w > MaxDimension || h > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrDimensionOverflow, w, h)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
