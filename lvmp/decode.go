package lvmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

// ErrBadSignature is returned when the input does not start with "LVMP".
var ErrBadSignature = errors.New("lvmp: bad signature")

// Header is the fixed 8-byte file prefix.
type Header struct {
	Width, Height int
}

// ReadHeader reads and validates the signature and dimensions.
func ReadHeader(r io.Reader) (Header, error) {
	var b [HeaderSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Header{}, fmt.Errorf("lvmp: reading header: %w", err)
	}
	if string(b[:4]) != Signature {
		return Header{}, ErrBadSignature
	}
	return Header{
		Width:  int(binary.LittleEndian.Uint16(b[4:6])),
		Height: int(binary.LittleEndian.Uint16(b[6:8])),
	}, nil
}

// File is a decoded LVMP file. It implements image.Image so it can be
// previewed with standard encoders.
type File struct {
	Header
	Mode Mode
	// Palette is only meaningful in palette mode.
	Palette [PaletteSize]color.RGBA
	// Data holds the packed pixel bytes, column by column.
	Data []byte
}

// Decode reads a complete file. The format does not record its mode, so
// the caller has to say whether a palette block follows the header.
func Decode(r io.Reader, mode Mode) (*File, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	f := &File{Header: hdr, Mode: mode}
	if mode == ModePalette {
		var b [PaletteBytes]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, fmt.Errorf("lvmp: reading palette: %w", err)
		}
		for i := range f.Palette {
			f.Palette[i] = color.RGBA{R: b[i*3], G: b[i*3+1], B: b[i*3+2], A: 0xFF}
		}
	}
	f.Data = make([]byte, hdr.Width*((hdr.Height+1)/2))
	if _, err := io.ReadFull(r, f.Data); err != nil {
		return nil, fmt.Errorf("lvmp: reading pixel data: %w", err)
	}
	return f, nil
}

// CodeAt returns the code stored for pixel (x, y), or 0 outside the image.
func (f *File) CodeAt(x, y int) Code {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0
	}
	hi, lo := Unpack(f.Data[x*((f.Height+1)/2)+y/2])
	if y%2 == 0 {
		return hi
	}
	return lo
}

// ColorModel returns the color model of the decoded image.
func (f *File) ColorModel() color.Model {
	if f.Mode == ModePalette {
		return color.RGBAModel
	}
	return Gray4Model
}

// Bounds returns the image bounds.
func (f *File) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// At returns the color of pixel (x, y): the palette entry in palette mode,
// a Gray4 level otherwise.
func (f *File) At(x, y int) color.Color {
	c := f.CodeAt(x, y)
	if f.Mode == ModePalette {
		return f.Palette[c]
	}
	return Gray4{Y: uint8(c)}
}
