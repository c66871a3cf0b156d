package bwtrle

import "math/bits"

// bitmap is a packed array of one-bit flags, LSB-first within each byte.
// Bit k lives in byte k/8 at offset k%8.
type bitmap []byte

// bitmapLen returns the number of bytes needed to hold n bits.
func bitmapLen(n int) int {
	return (n + 7) >> 3
}

func (b bitmap) set(k int) {
	b[k>>3] |= 1 << (k & 7)
}

func (b bitmap) get(k int) bool {
	return b[k>>3]&(1<<(k&7)) != 0
}

// count returns the number of set bits among the first n. Bits past n in the
// final byte are padding and never counted.
func (b bitmap) count(n int) int {
	full := n >> 3
	total := 0
	for _, v := range b[:full] {
		total += bits.OnesCount8(v)
	}
	if rem := n & 7; rem != 0 {
		total += bits.OnesCount8(b[full] & (1<<rem - 1))
	}
	return total
}
