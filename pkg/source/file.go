package source

import (
	"context"
	"fmt"
	"os"

	"github.com/optable/pixelrand/pkg/extract"
	"github.com/optable/pixelrand/pkg/log"
)

// File reads the images of a fixed list of files, one per Acquire
type File struct {
	paths []string
	size  int
	next  int
}

// NewFile returns a source reading paths in order and scaling the
// images to size x size
func NewFile(size int, paths ...string) *File {
	return &File{paths: paths, size: size}
}

// Acquire decodes the next file. Once every file was used it fails
// with ErrAcquisition.
func (f *File) Acquire(ctx context.Context) (*extract.Grid, error) {
	if f.next >= len(f.paths) {
		return nil, fmt.Errorf("%w: all %d image files were used", ErrAcquisition, len(f.paths))
	}
	path := f.paths[f.next]
	f.next++

	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAcquisition, err)
	}
	defer r.Close()

	g, format, err := Decode(r, f.size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.GetLoggerFromContextWithName(ctx, "source").V(1).Info("read image", "path", path, "format", format)

	return g, nil
}

// Remaining returns the number of files not read yet
func (f *File) Remaining() int {
	return len(f.paths) - f.next
}
