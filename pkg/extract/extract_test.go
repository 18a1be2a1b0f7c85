package extract

import (
	"math/rand"
	"strings"
	"time"
)

var prng = rand.New(rand.NewSource(time.Now().UnixNano()))

// randomGrid returns a w by h grid of uniformly random intensities
func randomGrid(w, h int) *Grid {
	g := NewGrid(w, h)
	prng.Read(g.Pix)
	return g
}

// uniformGrid returns a w by h grid filled with v
func uniformGrid(w, h int, v uint8) *Grid {
	g := NewGrid(w, h)
	for i := range g.Pix {
		g.Pix[i] = v
	}
	return g
}

// parseBits turns "0110" into []uint8{0, 1, 1, 0}
func parseBits(s string) []uint8 {
	bits := make([]uint8, len(s))
	for i, c := range s {
		if c == '1' {
			bits[i] = 1
		}
	}
	return bits
}

// formatBits is the inverse of parseBits
func formatBits(bits []uint8) string {
	var b strings.Builder
	for _, v := range bits {
		b.WriteByte('0' + v)
	}
	return b.String()
}

// sameMultiset reports whether a and b hold the same values with the same counts
func sameMultiset(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	var ca, cb [256]int
	for i := range a {
		ca[a[i]]++
		cb[b[i]]++
	}
	return ca == cb
}
