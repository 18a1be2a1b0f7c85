package permutations

import "testing"

const xxx = 16

func TestCatMapBijective(t *testing.T) {
	for _, n := range []int64{1, 2, 3, 4, 7, 8, xxx} {
		p, err := NewCatMap(n, 1, 1)
		if err != nil {
			t.Fatal(err)
		}
		seen := make([]bool, n*n)
		for i := int64(0); i < n*n; i++ {
			j := p.Shuffle(i)
			if j < 0 || j >= n*n {
				t.Fatalf("n=%d: index %d mapped out of range to %d", n, i, j)
			}
			if seen[j] {
				t.Fatalf("n=%d: index %d mapped twice", n, j)
			}
			seen[j] = true
		}
	}
}

func TestCatMapCoordinates(t *testing.T) {
	p, _ := NewCatMap(xxx, 1, 1)
	// (x, y) = (3, 5) -> ((3 + 5) mod 16, (3 + 2*5) mod 16) = (8, 13)
	if got := p.Shuffle(5*xxx + 3); got != 13*xxx+8 {
		t.Errorf("expected %d got %d", 13*xxx+8, got)
	}
	// (x, y) = (15, 15) -> (30 mod 16, 45 mod 16) = (14, 13)
	if got := p.Shuffle(15*xxx + 15); got != 13*xxx+14 {
		t.Errorf("expected %d got %d", 13*xxx+14, got)
	}
}

func TestCatMapPeriod(t *testing.T) {
	for n, want := range map[int64]int{1: 1, 2: 3, 3: 4, 4: 3, 5: 10, 7: 8, 8: 6} {
		if got := CatMapPeriod(n, 1, 1); got != want {
			t.Errorf("n=%d: expected period %d got %d", n, want, got)
		}
	}
}

func TestCatMapPeriodIsIdentity(t *testing.T) {
	for _, n := range []int64{4, 5, 8, 12, xxx} {
		p, _ := NewCatMap(n, 1, 1)
		period := p.Period()
		for i := int64(0); i < n*n; i++ {
			j := i
			for k := 0; k < period; k++ {
				j = p.Shuffle(j)
			}
			if j != i {
				t.Fatalf("n=%d: index %d did not return after %d iterations", n, i, period)
			}
		}
	}
}

func TestNewCatMapInvalid(t *testing.T) {
	for _, n := range []int64{0, -4} {
		if _, err := NewCatMap(n, 1, 1); err != ErrInvalidSize {
			t.Fatalf("expected %v, got %v", ErrInvalidSize, err)
		}
	}
}
