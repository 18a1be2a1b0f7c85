package permutations

/*

Arnold's cat map is a discrete, area-preserving map of the n by n torus:

	| x' |   | 1  p    |   | x |
	|    | = |         | * |   |  mod n
	| y' |   | q  pq+1 |   | y |

The matrix has determinant 1, so the map is a bijection of the grid and
it is periodic: applying it Period times gives back the identity.

reference: https://en.wikipedia.org/wiki/Arnold%27s_cat_map

*/

var _ Permutations = catMap{}

// catMap permutes the flattened index y*n + x of an n by n grid.
type catMap struct {
	n, p, q int64
}

// NewCatMap with n the side of the square grid and p, q the
// parameters of the map.
func NewCatMap(n, p, q int64) (catMap, error) {
	if n <= 0 {
		return catMap{}, ErrInvalidSize
	}
	return catMap{n: n, p: p, q: q}, nil
}

// Shuffle returns the destination index of the source index i = y*n + x
func (c catMap) Shuffle(i int64) int64 {
	x, y := i%c.n, i/c.n
	nx := mod(x+c.p*y, c.n)
	ny := mod(c.q*x+(c.p*c.q+1)*y, c.n)
	return ny*c.n + nx
}

// Period returns the smallest k > 0 such that applying the map k times
// is the identity.
func (c catMap) Period() int {
	return CatMapPeriod(c.n, c.p, c.q)
}

// CatMapPeriod returns the period of the cat map with parameters p, q on
// an n by n grid, the order of its matrix in SL(2, Z/n).
func CatMapPeriod(n, p, q int64) int {
	if n <= 1 {
		return 1
	}
	m := [4]int64{1, mod(p, n), mod(q, n), mod(p*q+1, n)}
	a := m
	k := 1
	for !(a[0] == 1 && a[1] == 0 && a[2] == 0 && a[3] == 1) {
		a = [4]int64{
			(a[0]*m[0] + a[1]*m[2]) % n,
			(a[0]*m[1] + a[1]*m[3]) % n,
			(a[2]*m[0] + a[3]*m[2]) % n,
			(a[2]*m[1] + a[3]*m[3]) % n,
		}
		k++
	}
	return k
}
