// Package source provides the images the entropy pipeline feeds on.
//
// A Source hands out one grayscale grid per call. Images are fetched from
// a remote image service, read from local files, or generated from a seed
// for offline use.
package source

import (
	"context"
	"fmt"

	"github.com/optable/pixelrand/pkg/extract"
)

// DefaultURL serves a fresh random 1024x1024 photograph on every request
const (
	DefaultURL  = "https://picsum.photos/1024/1024"
	DefaultSize = 1024
)

var (
	ErrAcquisition    = fmt.Errorf("image acquisition failed")
	ErrDuplicateFrame = fmt.Errorf("%w: frame was already used", ErrAcquisition)
)

// Source supplies one grayscale grid per call
type Source interface {
	Acquire(ctx context.Context) (*extract.Grid, error)
}

// Func adapts a plain function to the Source interface
type Func func(ctx context.Context) (*extract.Grid, error)

// Acquire calls f
func (f Func) Acquire(ctx context.Context) (*extract.Grid, error) {
	return f(ctx)
}
