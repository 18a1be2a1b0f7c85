package source

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/optable/pixelrand/internal/crypto"
	"github.com/optable/pixelrand/pkg/extract"
)

// Synthetic generates pseudorandom grayscale frames from a seed. The
// n-th frame only depends on the seed and n, which makes runs
// reproducible without network access. It is meant for tests and
// offline demos: the output has no more entropy than the seed.
type Synthetic struct {
	seed  []byte
	size  int
	frame uint64
	h     *blake3.Hasher
}

// NewSynthetic returns a source of size x size frames derived from seed
func NewSynthetic(seed []byte, size int) *Synthetic {
	return &Synthetic{seed: append([]byte(nil), seed...), size: size, h: blake3.New()}
}

// Acquire generates the next frame
func (s *Synthetic) Acquire(ctx context.Context) (*extract.Grid, error) {
	if s.size <= 0 {
		return nil, fmt.Errorf("%w: synthetic frame size %d", ErrAcquisition, s.size)
	}

	frameSeed := binary.BigEndian.AppendUint64(append([]byte(nil), s.seed...), s.frame)
	s.frame++

	g := extract.NewGrid(s.size, s.size)
	if err := crypto.PseudorandomGenerate(g.Pix, frameSeed, s.h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAcquisition, err)
	}
	return g, nil
}
