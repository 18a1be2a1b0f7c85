package permutations

import "fmt"

// Permutations is an interface satisfied by anything with a proper
// Shuffle method
type Permutations interface {
	Shuffle(n int64) int64
}

var ErrInvalidSize = fmt.Errorf("permutation size must be positive")

// mod returns the non-negative remainder of a / n
func mod(a, n int64) int64 {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
