package extract

// Blocks tiles g into non-overlapping BlockSize x BlockSize blocks in
// raster order and reduces each block to the parity of its Black pixel
// count: 1 if odd, 0 if even. Rows and columns that do not form a
// complete block are dropped. A grid whose pixels do not match its
// dimensions is ErrInvalidDimensions.
func Blocks(g *Grid) (*BlockMatrix, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	m := NewBlockMatrix(g.Height/BlockSize, g.Width/BlockSize)

	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			var black int
			for dy := 0; dy < BlockSize; dy++ {
				row := g.Pix[(r*BlockSize+dy)*g.Width+c*BlockSize:]
				for dx := 0; dx < BlockSize; dx++ {
					if row[dx] == Black {
						black++
					}
				}
			}
			m.Bits[r*m.Cols+c] = uint8(black & 1)
		}
	}

	return m, nil
}
