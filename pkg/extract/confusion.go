package extract

import (
	"fmt"

	"github.com/optable/pixelrand/internal/permutations"
)

const (
	// DefaultIterations is the number of cat map rounds applied to a grid
	DefaultIterations = 7
	// DefaultP and DefaultQ are the cat map parameters
	DefaultP = 1
	DefaultQ = 1
)

// Confuse scrambles the pixels of a square grid with iterations rounds
// of Arnold's cat map (p = q = 1). Each round writes every source pixel
// (x, y) to ((x + y) mod N, (x + 2y) mod N) of a new grid.
func Confuse(g *Grid, iterations int) (*Grid, error) {
	return ConfuseWith(g, iterations, DefaultP, DefaultQ)
}

// ConfuseWith is Confuse with explicit cat map parameters p and q
func ConfuseWith(g *Grid, iterations, p, q int) (*Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.Width != g.Height || g.Width == 0 {
		return nil, fmt.Errorf("%w: cat map needs a non-empty square grid, got %dx%d", ErrInvalidDimensions, g.Width, g.Height)
	}
	if iterations < 0 {
		return nil, fmt.Errorf("%w: negative iteration count %d", ErrInvalidParameter, iterations)
	}

	perm, err := permutations.NewCatMap(int64(g.Width), int64(p), int64(q))
	if err != nil {
		return nil, err
	}

	// the map is periodic, whole periods are the identity
	rounds := iterations % perm.Period()

	var src = g.Clone()
	for k := 0; k < rounds; k++ {
		dst := NewGrid(src.Width, src.Height)
		for i, v := range src.Pix {
			dst.Pix[perm.Shuffle(int64(i))] = v
		}
		src = dst
	}

	return src, nil
}
