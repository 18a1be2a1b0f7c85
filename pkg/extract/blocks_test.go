package extract

import (
	"errors"
	"testing"
)

// mustBlocks is Blocks for grids known to be valid
func mustBlocks(t *testing.T, g *Grid) *BlockMatrix {
	t.Helper()
	m, err := Blocks(g)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestBlocksCoverage(t *testing.T) {
	for _, tc := range []struct{ w, h, rows, cols int }{
		{w: 8, h: 8, rows: 2, cols: 2},
		{w: 16, h: 4, rows: 1, cols: 4},
		{w: 1024, h: 1024, rows: 256, cols: 256},
		// partial trailing blocks are dropped
		{w: 10, h: 6, rows: 1, cols: 2},
		{w: 3, h: 3, rows: 0, cols: 0},
	} {
		m := mustBlocks(t, Diffuse(randomGrid(tc.w, tc.h)))
		if m.Rows != tc.rows || m.Cols != tc.cols || len(m.Bits) != tc.rows*tc.cols {
			t.Errorf("%dx%d grid: expected %dx%d blocks, got %dx%d (%d bits)", tc.w, tc.h, tc.rows, tc.cols, m.Rows, m.Cols, len(m.Bits))
		}
		for i, b := range m.Bits {
			if b > 1 {
				t.Fatalf("block %d holds %d, not a bit", i, b)
			}
		}
	}
}

func TestBlocksInvalid(t *testing.T) {
	for _, g := range []*Grid{
		nil,
		{Width: 8, Height: 8, Pix: make([]uint8, 60)},
		{Width: 4, Height: 4},
	} {
		if m, err := Blocks(g); !errors.Is(err, ErrInvalidDimensions) || m != nil {
			t.Fatalf("expected %v, got %v", ErrInvalidDimensions, err)
		}
	}
}

func TestBlocksParity(t *testing.T) {
	g := uniformGrid(8, 4, White)
	// one black pixel in the first block
	g.Set(2, 1, Black)
	// two black pixels in the second block
	g.Set(4, 0, Black)
	g.Set(7, 3, Black)

	m := mustBlocks(t, g)
	if got := formatBits(m.Bits); got != "10" {
		t.Fatalf("expected 10, got %s", got)
	}

	// a fully black block has an even count
	if got := formatBits(mustBlocks(t, uniformGrid(4, 4, Black)).Bits); got != "0" {
		t.Fatalf("expected 0, got %s", got)
	}

	// anything that is not exactly Black counts as white
	g = uniformGrid(4, 4, 1)
	g.Set(0, 0, Black)
	g.Set(1, 0, Black)
	g.Set(2, 0, Black)
	if got := formatBits(mustBlocks(t, g).Bits); got != "1" {
		t.Fatalf("expected 1, got %s", got)
	}
}

func BenchmarkBlocks(b *testing.B) {
	g := Diffuse(randomGrid(1024, 1024))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Blocks(g)
	}
}
