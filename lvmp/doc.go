// Package lvmp encodes images into the LVMP format, a fixed-layout 4-bit
// bitmap used by renderers with very little memory.
//
// Every pixel becomes a 4-bit code (0-15). In grayscale mode the code is the
// pixel's average intensity bucketed into 16 levels. In palette mode the
// image's own colors are collected into a 16-entry palette and the code is
// the palette index.
//
// File layout (all integers little-endian):
//
//	Offset  Size            Field
//	0       4               signature "LVMP"
//	4       2               width
//	6       2               height
//	8       48              palette, 16 x (R,G,B), palette mode only
//	8 / 56  w*ceil(h/2)     pixel data
//
// Pixel data is written column by column. Each byte holds two vertically
// adjacent pixels of the same column: high nibble = (x, y), low nibble =
// (x, y+1). For an odd height the low nibble of the last byte in each
// column holds the code of black.
//
//	Column x=0:  y=0 y=1 y=2
//	Codes:       0   15  7
//	Bytes:       0x0F    0x70
//
// Example usage:
//
//	img := lvmp.FromImage(src)
//	res, err := lvmp.NewEncoder(w, lvmp.WithMode(lvmp.ModePalette)).Encode(ctx, img)
//	if errors.Is(err, lvmp.ErrDimensionOverflow) {
//		// image too large for the 16-bit header fields
//	}
//	if res.Overflow {
//		// more than 16 colors, extra colors collapsed to index 0
//	}
package lvmp
