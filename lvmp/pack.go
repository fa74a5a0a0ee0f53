package lvmp

// Pack combines two pixel codes into one byte: hi in the high nibble,
// lo in the low nibble.
func Pack(hi, lo Code) byte {
	return byte(hi&MaxCode)<<4 | byte(lo&MaxCode)
}

// PackLast packs a trailing code that has no partner. The low nibble is 0.
func PackLast(hi Code) byte {
	return byte(hi&MaxCode) << 4
}

// Unpack splits a byte produced by Pack into its two codes.
func Unpack(b byte) (hi, lo Code) {
	return Code(b >> 4), Code(b & 0x0F)
}
