package extract

import (
	"bytes"
	"errors"
	"testing"

	"github.com/optable/pixelrand/internal/permutations"
)

func TestConfuseDimensions(t *testing.T) {
	for _, g := range []*Grid{
		NewGrid(8, 4),
		NewGrid(0, 0),
		{Width: 4, Height: 4, Pix: make([]uint8, 3)},
	} {
		if _, err := Confuse(g, DefaultIterations); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%dx%d: expected %v, got %v", g.Width, g.Height, ErrInvalidDimensions, err)
		}
	}

	if _, err := Confuse(NewGrid(4, 4), -1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected %v, got %v", ErrInvalidParameter, err)
	}
}

func TestConfuseMovesPixel(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(1, 2, White)

	// (1, 2) -> ((1 + 2) mod 4, (1 + 2*2) mod 4) = (3, 1)
	got, err := Confuse(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := Black
			if x == 3 && y == 1 {
				want = White
			}
			if got.At(x, y) != want {
				t.Fatalf("pixel (%d, %d): expected %d, got %d", x, y, want, got.At(x, y))
			}
		}
	}
}

func TestConfusePermutes(t *testing.T) {
	g := Diffuse(randomGrid(32, 32))
	got, err := Confuse(g, DefaultIterations)
	if err != nil {
		t.Fatal(err)
	}
	if !sameMultiset(g.Pix, got.Pix) {
		t.Fatalf("confusion lost or duplicated pixels")
	}
	if bytes.Equal(g.Pix, got.Pix) {
		t.Fatalf("confusion did not move any pixel")
	}
}

func TestConfusePeriod(t *testing.T) {
	for _, n := range []int{4, 8, 12, 16} {
		// unique values make every misplaced pixel visible
		g := NewGrid(n, n)
		for i := range g.Pix {
			g.Pix[i] = uint8(i)
		}
		period := permutations.CatMapPeriod(int64(n), DefaultP, DefaultQ)

		// apply the map round by round, independently of Confuse
		perm, err := permutations.NewCatMap(int64(n), DefaultP, DefaultQ)
		if err != nil {
			t.Fatal(err)
		}
		cur := g.Clone()
		for k := 1; k <= period; k++ {
			next := NewGrid(n, n)
			for i, v := range cur.Pix {
				next.Pix[perm.Shuffle(int64(i))] = v
			}
			cur = next
			if k < period && bytes.Equal(g.Pix, cur.Pix) {
				t.Errorf("n=%d: returned to the original grid after %d of %d rounds", n, k, period)
			}
			if k == 3 {
				got, err := Confuse(g, period+3)
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(got.Pix, cur.Pix) {
					t.Errorf("n=%d: %d iterations differ from 3 rounds", n, period+3)
				}
			}
		}
		if !bytes.Equal(g.Pix, cur.Pix) {
			t.Errorf("n=%d: %d rounds did not return the original grid", n, period)
		}
	}
}

func TestConfuseZeroIterations(t *testing.T) {
	g := randomGrid(8, 8)
	got, err := Confuse(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(g.Pix, got.Pix) {
		t.Fatalf("zero iterations should copy the grid")
	}
	got.Pix[0]++
	if g.Pix[0] == got.Pix[0] {
		t.Fatalf("zero iterations should not alias the input")
	}
}

func TestAllWhiteScenario(t *testing.T) {
	g := uniformGrid(8, 8, White)
	got, err := Confuse(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(g.Pix, got.Pix) {
		t.Fatalf("an all-white grid should stay all white")
	}
	m, err := Blocks(got)
	if err != nil {
		t.Fatal(err)
	}
	if m.Rows != 2 || m.Cols != 2 {
		t.Fatalf("expected a 2x2 block matrix, got %dx%d", m.Rows, m.Cols)
	}
	for i, b := range m.Bits {
		if b != 0 {
			t.Errorf("block %d: expected 0, got %d", i, b)
		}
	}
}

func BenchmarkConfuse(b *testing.B) {
	g := Diffuse(randomGrid(1024, 1024))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Confuse(g, DefaultIterations)
	}
}
