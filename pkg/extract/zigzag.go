package extract

import "fmt"

// GroupSize is the number of bits per serialized group
const GroupSize = 128

// ScanOrder selects the first move of the zigzag traversal
type ScanOrder int

const (
	// ScanRightFirst is the usual zigzag order: (0,0), (0,1), (1,0), (2,0), (1,1), ...
	ScanRightFirst ScanOrder = iota
	// ScanDownFirst starts by moving down: (0,0), (1,0), (0,1), (0,2), (1,1), ...
	ScanDownFirst
)

func (o ScanOrder) String() string {
	switch o {
	case ScanRightFirst:
		return "right"
	case ScanDownFirst:
		return "down"
	default:
		return "undefined"
	}
}

// ParseScanOrder returns the scan order named s ("right" or "down")
func ParseScanOrder(s string) (ScanOrder, error) {
	switch s {
	case "right":
		return ScanRightFirst, nil
	case "down":
		return ScanDownFirst, nil
	default:
		return 0, fmt.Errorf("%w: unknown scan order %q", ErrInvalidParameter, s)
	}
}

// Zigzag linearizes m along its anti-diagonals, alternating direction.
// Moving down-left, the scan steps right at the last row, else down at
// the first column, and turns. Moving up-right, it steps down at the last
// column, else right at the first row, and turns. Every cell is visited
// exactly once.
func Zigzag(m *BlockMatrix, order ScanOrder) []uint8 {
	out := make([]uint8, 0, m.Rows*m.Cols)
	row, col := 0, 0
	down := order == ScanDownFirst

	for row < m.Rows && col < m.Cols {
		out = append(out, m.At(row, col))
		if down {
			switch {
			case row == m.Rows-1:
				col++
				down = false
			case col == 0:
				row++
				down = false
			default:
				row++
				col--
			}
		} else {
			switch {
			case col == m.Cols-1:
				row++
				down = true
			case row == 0:
				col++
				down = true
			default:
				row--
				col++
			}
		}
	}

	return out
}

// Chunk splits bits into consecutive groups of size bits, the last group
// holding the remainder. size must be positive.
func Chunk(bits []uint8, size int) [][]uint8 {
	groups := make([][]uint8, 0, (len(bits)+size-1)/size)
	for i := 0; i < len(bits); i += size {
		end := i + size
		if end > len(bits) {
			end = len(bits)
		}
		groups = append(groups, bits[i:end:end])
	}
	return groups
}

// Serialize is Zigzag followed by Chunk
func Serialize(m *BlockMatrix, order ScanOrder, size int) ([][]uint8, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: group size %d", ErrInvalidParameter, size)
	}
	return Chunk(Zigzag(m, order), size), nil
}

// Flatten concatenates groups into a newly allocated bit sequence
func Flatten(groups [][]uint8) []uint8 {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	out := make([]uint8, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
