package extract

import (
	"fmt"
)

const (
	// Black is the value of a black pixel in a binary grid
	Black uint8 = 0
	// White is the value of a white pixel in a binary grid
	White uint8 = 255
	// Threshold is the intensity from which a pixel is quantized to White
	Threshold = 128
	// BlockSize is the side of the square blocks reduced to one bit
	BlockSize = 4
)

var (
	ErrInvalidDimensions = fmt.Errorf("invalid grid dimensions")
	ErrInvalidParameter  = fmt.Errorf("invalid pipeline parameter")
)

// Grid is a rectangular array of 8-bit pixel values stored in row-major
// order. It holds grayscale intensities before diffusion and binary
// values (Black or White) after it.
type Grid struct {
	Width, Height int
	Pix           []uint8
}

// NewGrid returns a black grid of the given dimensions
func NewGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

// At returns the pixel at column x and row y
func (g *Grid) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Set the pixel at column x and row y to v
func (g *Grid) Set(x, y int, v uint8) {
	g.Pix[y*g.Width+x] = v
}

// Clone returns a deep copy of g
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, Pix: make([]uint8, len(g.Pix))}
	copy(c.Pix, g.Pix)
	return c
}

// Validate checks that the pixel storage matches the dimensions
func (g *Grid) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidDimensions)
	}
	if g.Width < 0 || g.Height < 0 || len(g.Pix) != g.Width*g.Height {
		return fmt.Errorf("%w: %dx%d grid holds %d pixels", ErrInvalidDimensions, g.Width, g.Height, len(g.Pix))
	}
	return nil
}

// WhiteBits returns one bit per pixel in raster order,
// 1 for a White pixel and 0 otherwise.
func (g *Grid) WhiteBits() []uint8 {
	bits := make([]uint8, len(g.Pix))
	for i, v := range g.Pix {
		if v == White {
			bits[i] = 1
		}
	}
	return bits
}

// BlockMatrix holds one bit per block of a grid, in row-major order
type BlockMatrix struct {
	Rows, Cols int
	Bits       []uint8
}

// NewBlockMatrix returns a zeroed rows by cols matrix
func NewBlockMatrix(rows, cols int) *BlockMatrix {
	return &BlockMatrix{Rows: rows, Cols: cols, Bits: make([]uint8, rows*cols)}
}

// BlockMatrixFromRows builds a matrix from a slice of equally long rows
func BlockMatrixFromRows(rows [][]uint8) (*BlockMatrix, error) {
	if len(rows) == 0 {
		return NewBlockMatrix(0, 0), nil
	}
	m := NewBlockMatrix(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != m.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, r, len(row), m.Cols)
		}
		copy(m.Bits[r*m.Cols:], row)
	}
	return m, nil
}

// At returns the bit at row r and column c
func (m *BlockMatrix) At(r, c int) uint8 {
	return m.Bits[r*m.Cols+c]
}
