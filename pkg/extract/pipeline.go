package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/optable/pixelrand/internal/util"
	"github.com/optable/pixelrand/pkg/log"
)

// Pipeline turns a grayscale grid into a bit sequence:
//  diffusion -> confusion -> block parity -> zigzag -> bias suppression
type Pipeline struct {
	// Iterations of the cat map
	Iterations int
	// P and Q are the cat map parameters
	P, Q int
	// GroupSize is the serializer group length in bits
	GroupSize int
	// Order of the zigzag scan
	Order ScanOrder
}

// Trace holds the outcome of one pipeline run along with the
// intermediate values worth recording
type Trace struct {
	// Dithered is the binary grid produced by the diffusion stage
	Dithered *Grid
	// Blocks is the block parity matrix of the confused grid
	Blocks *BlockMatrix
	// Groups are the serialized bit groups before bias suppression
	Groups [][]uint8
	// Bits is the final bit sequence
	Bits []uint8
}

// NewPipeline returns a pipeline with the default parameters
func NewPipeline() *Pipeline {
	return &Pipeline{
		Iterations: DefaultIterations,
		P:          DefaultP,
		Q:          DefaultQ,
		GroupSize:  GroupSize,
		Order:      ScanRightFirst,
	}
}

// Validate checks the pipeline parameters and that g is a non-empty
// square grid whose side is a multiple of BlockSize
func (p *Pipeline) Validate(g *Grid) error {
	if p.Iterations < 0 {
		return fmt.Errorf("%w: negative iteration count %d", ErrInvalidParameter, p.Iterations)
	}
	if p.GroupSize <= 0 {
		return fmt.Errorf("%w: group size %d", ErrInvalidParameter, p.GroupSize)
	}
	if p.Order != ScanRightFirst && p.Order != ScanDownFirst {
		return fmt.Errorf("%w: scan order %d", ErrInvalidParameter, p.Order)
	}
	if err := g.Validate(); err != nil {
		return err
	}
	if g.Width != g.Height {
		return fmt.Errorf("%w: grid is not square (%dx%d)", ErrInvalidDimensions, g.Width, g.Height)
	}
	if g.Width == 0 || g.Width%BlockSize != 0 {
		return fmt.Errorf("%w: grid side %d is not a positive multiple of %d", ErrInvalidDimensions, g.Width, BlockSize)
	}
	return nil
}

// Run the whole pipeline on g. Preconditions are checked before any
// stage runs and nothing is returned on failure.
func (p *Pipeline) Run(ctx context.Context, g *Grid) (*Trace, error) {
	if err := p.Validate(g); err != nil {
		return nil, err
	}
	logger := log.GetLoggerFromContextWithName(ctx, "extract")
	start := time.Now()

	dithered := Diffuse(g)
	logger.V(2).Info("diffusion done", "width", g.Width, "height", g.Height, "elapsed", time.Since(start))

	confused, err := ConfuseWith(dithered, p.Iterations, p.P, p.Q)
	if err != nil {
		return nil, err
	}
	logger.V(2).Info("confusion done", "iterations", p.Iterations, "elapsed", time.Since(start))

	blocks, err := Blocks(confused)
	if err != nil {
		return nil, err
	}
	groups, err := Serialize(blocks, p.Order, p.GroupSize)
	if err != nil {
		return nil, err
	}
	bits := Suppress(Flatten(groups))

	logger.V(1).Info("extracted bits", "bits", len(bits), "groups", len(groups), "ones", util.CountOnes(bits), "elapsed", time.Since(start))

	return &Trace{
		Dithered: dithered,
		Blocks:   blocks,
		Groups:   groups,
		Bits:     bits,
	}, nil
}
