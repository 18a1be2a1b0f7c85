package source

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"

	bloom "github.com/bits-and-blooms/bloom/v3"

	"github.com/optable/pixelrand/internal/hash"
	"github.com/optable/pixelrand/pkg/extract"
	"github.com/optable/pixelrand/pkg/log"
)

// FalsePositive is the rate at which Guard rejects a frame it never saw
const FalsePositive = 1e-6

// Guard wraps a Source and refuses frames it already handed out, such as
// a cached response from an image service. Frames are fingerprinted with
// a salted 64-bit hash and remembered in a bloom filter.
type Guard struct {
	src    Source
	hasher hash.Hasher
	seen   *bloom.BloomFilter
}

// NewGuard returns a guard around src remembering about n frames,
// fingerprinted with a hasher of type t (see package hash)
func NewGuard(src Source, t int, n uint) (*Guard, error) {
	var salt = make([]byte, hash.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	h, err := hash.New(t, salt)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		n = 1
	}
	return &Guard{src: src, hasher: h, seen: bloom.NewWithEstimates(n, FalsePositive)}, nil
}

// Acquire a frame from the wrapped source, failing with ErrDuplicateFrame
// if it was seen before
func (g *Guard) Acquire(ctx context.Context) (*extract.Grid, error) {
	grid, err := g.src.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], g.hasher.Hash64(grid.Pix))
	if g.seen.Test(key[:]) {
		return nil, fmt.Errorf("%w: fingerprint %x", ErrDuplicateFrame, key)
	}
	g.seen.Add(key[:])
	log.GetLoggerFromContextWithName(ctx, "guard").V(2).Info("new frame", "fingerprint", fmt.Sprintf("%x", key))

	return grid, nil
}
