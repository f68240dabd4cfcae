// Package bitops provides single-byte bit arithmetic, following the MSB
// pattern, where bit index 0 denotes the most-significant (leftmost) bit
// of a byte and index 7 the least-significant.
package bitops

// Bit returns the bit of b at the given index, as 0 or 1.
// The caller guarantees index <= 7.
func Bit(b byte, index uint) byte {
	return (b >> (7 - index)) & 1
}

// BitAsBool returns whether the bit of b at the given index is set.
// The caller guarantees index <= 7.
func BitAsBool(b byte, index uint) bool {
	return Bit(b, index) == 1
}

// Bits returns count consecutive bits of b starting at the given index,
// right-justified: the first extracted bit becomes the most-significant bit
// of the result. The caller guarantees index+count <= 8.
func Bits(b byte, index, count uint) byte {
	return (b >> (8 - index - count)) & (0xff >> (8 - count))
}

// SetBit returns b with the bit at the given index set to bit&1, leaving all
// other bits unchanged. The caller guarantees index <= 7.
func SetBit(b byte, index uint, bit byte) byte {
	mask := byte(1) << (7 - index)
	if bit&1 == 1 {
		return b | mask
	}
	return b &^ mask
}
