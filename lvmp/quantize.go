package lvmp

import (
	"image/color"
	"math"
)

// Code is a 4-bit pixel value (0-15). In grayscale mode it is an intensity
// level, in palette mode a palette index.
type Code uint8

// MaxCode is the largest value a Code can hold.
const MaxCode Code = 0x0F

// Quantize maps a color to one of 16 intensity levels. The three channels
// are averaged, normalized to [0,1] and scaled to [0,15], rounding down.
// Black is 0 and white is 15.
func Quantize(c color.RGBA) Code {
	avg := (float64(c.R) + float64(c.G) + float64(c.B)) / 3.0
	return Code(math.Floor(avg / 0xFF * float64(MaxCode)))
}

// Gray4 represents a 4-bit grayscale color (0-15 intensity levels).
// Only the lower 4 bits of Y are used.
type Gray4 struct {
	Y uint8
}

// RGBA converts the Gray4 color to standard RGBA.
func (c Gray4) RGBA() (r, g, b, a uint32) {
	// 0xF * 0x1111 = 0xFFFF
	y := uint32(c.Y&0x0F) * 0x1111
	return y, y, y, 0xFFFF
}

func toGray4(c color.Color) color.Color {
	if g, ok := c.(Gray4); ok {
		return g
	}
	return Gray4{Y: uint8(Quantize(opaque(c)))}
}

// Gray4Model converts colors to Gray4 using the same bucketing as Quantize.
var Gray4Model = color.ModelFunc(toGray4)
