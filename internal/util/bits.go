package util

import (
	"fmt"
	"math/bits"

	"github.com/alecthomas/unsafeslice"
)

var ErrBitLengthMissMatch = fmt.Errorf("provided bit slice is not 8 times the length of the byte slice")

// PackBits packs a slice of bits (one 0/1 value per byte) into bytes,
// most significant bit first. A trailing group shorter than 8 bits is
// packed right-aligned, as if parsed as a base 2 number.
func PackBits(src []uint8) []byte {
	dst := make([]byte, (len(src)+7)/8)
	full := len(src) / 8

	var i int
	for j := 0; j < full; j++ {
		dst[j] = src[i]<<7 | src[i+1]<<6 | src[i+2]<<5 | src[i+3]<<4 |
			src[i+4]<<3 | src[i+5]<<2 | src[i+6]<<1 | src[i+7]
		i += 8
	}

	if i < len(src) {
		var b byte
		for _, bit := range src[i:] {
			b = b<<1 | bit&1
		}
		dst[full] = b
	}

	return dst
}

// ExtractBytesToBits writes the bits of src into dst, most significant
// bit first, one bit per byte. It is the inverse of PackBits for whole
// bytes. dst must be exactly 8 times the length of src.
func ExtractBytesToBits(src, dst []uint8) error {
	if len(dst) != len(src)*8 {
		return ErrBitLengthMissMatch
	}

	var i int
	for _, _byte := range src {
		dst[i] = (_byte >> 7) & 0x01
		dst[i+1] = (_byte >> 6) & 0x01
		dst[i+2] = (_byte >> 5) & 0x01
		dst[i+3] = (_byte >> 4) & 0x01
		dst[i+4] = (_byte >> 3) & 0x01
		dst[i+5] = (_byte >> 2) & 0x01
		dst[i+6] = (_byte >> 1) & 0x01
		dst[i+7] = _byte & 0x01
		i += 8
	}

	return nil
}

// CountOnes returns the number of set bits in a slice of bits
// (one 0/1 value per byte). Eight bits are summed at a time by
// viewing the slice as uint64 words.
func CountOnes(src []uint8) int {
	var n int
	aligned := len(src) - len(src)%8
	if aligned > 0 {
		for _, w := range unsafeslice.Uint64SliceFromByteSlice(src[:aligned]) {
			// every byte holds 0 or 1, so the popcount of the word
			// is the number of ones among its 8 bits
			n += bits.OnesCount64(w)
		}
	}
	for _, b := range src[aligned:] {
		n += int(b & 1)
	}
	return n
}
