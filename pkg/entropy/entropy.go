// Package entropy serves random bytes extracted from images.
//
// A Buffer holds the bits produced so far and a cursor. Requests are
// served from the bits after the cursor; when they run short a new image
// is acquired and run through the extraction pipeline.
package entropy

import (
	"context"
	"fmt"

	"github.com/optable/pixelrand/internal/util"
	"github.com/optable/pixelrand/pkg/dump"
	"github.com/optable/pixelrand/pkg/extract"
	"github.com/optable/pixelrand/pkg/log"
	"github.com/optable/pixelrand/pkg/source"
)

var (
	ErrInsufficientEntropy = fmt.Errorf("not enough random bits after one refill")
	ErrInvalidRequest      = fmt.Errorf("invalid byte count requested")
)

// Buffer is not safe for concurrent use, see Locked
type Buffer struct {
	src      source.Source
	pipeline *extract.Pipeline
	recorder dump.Recorder
	ctx      context.Context

	bits   []uint8
	cursor int
}

// Option configures a Buffer
type Option func(*Buffer)

// WithPipeline replaces the default extraction pipeline
func WithPipeline(p *extract.Pipeline) Option {
	return func(b *Buffer) {
		b.pipeline = p
	}
}

// WithRecorder hands every pipeline trace to r
func WithRecorder(r dump.Recorder) Option {
	return func(b *Buffer) {
		b.recorder = r
	}
}

// WithContext sets the context used by Read
func WithContext(ctx context.Context) Option {
	return func(b *Buffer) {
		b.ctx = ctx
	}
}

// NewBuffer returns an empty buffer fed by src
func NewBuffer(src source.Source, opts ...Option) *Buffer {
	b := &Buffer{
		src:      src,
		pipeline: extract.NewPipeline(),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Take returns the next n bytes. If fewer than 8n bits are left the
// buffer is refilled once; if that is still not enough it fails with
// ErrInsufficientEntropy and the bits are kept for later requests.
func (b *Buffer) Take(ctx context.Context, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRequest, n)
	}
	if n == 0 {
		return []byte{}, nil
	}

	need := 8 * n
	if b.Len()-b.cursor < need {
		if err := b.refill(ctx); err != nil {
			return nil, err
		}
	}
	if b.Len()-b.cursor < need {
		return nil, fmt.Errorf("%w: %d bits requested, %d available", ErrInsufficientEntropy, need, b.Len()-b.cursor)
	}

	out := util.PackBits(b.bits[b.cursor : b.cursor+need])
	b.cursor += need
	return out, nil
}

// Read fills p with random bytes, it implements io.Reader
func (b *Buffer) Read(p []byte) (int, error) {
	out, err := b.Take(b.ctx, len(p))
	if err != nil {
		return 0, err
	}
	return copy(p, out), nil
}

// Cursor returns the number of bits consumed so far
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the number of bits generated so far
func (b *Buffer) Len() int {
	return len(b.bits)
}

// refill acquires one image and appends the extracted bits
func (b *Buffer) refill(ctx context.Context) error {
	logger := log.GetLoggerFromContextWithName(ctx, "entropy")
	logger.Info("generating more random bits")

	// every stage runs on the caller's goroutine, so a Locked buffer
	// never has two acquisitions in flight
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("refilling entropy buffer: %w", err)
	}
	grid, err := b.src.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("refilling entropy buffer: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("refilling entropy buffer: %w", err)
	}
	trace, err := b.pipeline.Run(ctx, grid)
	if err != nil {
		return fmt.Errorf("refilling entropy buffer: %w", err)
	}

	if b.recorder != nil {
		if err := b.recorder.Record(trace); err != nil {
			return fmt.Errorf("recording trace: %w", err)
		}
	}

	b.bits = append(b.bits, trace.Bits...)
	logger.V(1).Info("generated random bits", "bits", len(trace.Bits), "total", len(b.bits), "available", len(b.bits)-b.cursor)

	return nil
}
