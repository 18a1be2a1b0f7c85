// Package dump records the outcome of pipeline runs to disk so that the
// raw extractor output and the final random sequence can be inspected or
// fed to statistical test suites.
package dump

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/optable/pixelrand/internal/util"
	"github.com/optable/pixelrand/pkg/extract"
)

const (
	// ExtractorFile holds the packed dithered bitmaps, one per run
	ExtractorFile = "extractor_bits.bin"
	// SequenceFile holds the packed random bits, one chunk per run
	SequenceFile = "random_sequence.bin"
	// CompressedSuffix is appended to both file names when compressing
	CompressedSuffix = ".zst"
)

var ErrNoTrace = fmt.Errorf("cannot record a nil trace")

// Recorder receives every pipeline trace produced by an entropy buffer
type Recorder interface {
	Record(trace *extract.Trace) error
}

// FileRecorder appends traces to two files in a directory
type FileRecorder struct {
	dir string
	enc *zstd.Encoder
}

// NewFileRecorder returns a recorder writing into dir, which is created
// if missing. When compress is set every record is written as a
// separate zstd frame.
func NewFileRecorder(dir string, compress bool) (*FileRecorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRecorder{dir: dir}
	if compress {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		r.enc = enc
	}
	return r, nil
}

// Paths returns the extractor and sequence file paths
func (r *FileRecorder) Paths() (string, string) {
	var suffix string
	if r.enc != nil {
		suffix = CompressedSuffix
	}
	return filepath.Join(r.dir, ExtractorFile+suffix), filepath.Join(r.dir, SequenceFile+suffix)
}

// Truncate empties both files
func (r *FileRecorder) Truncate() error {
	extractor, sequence := r.Paths()
	for _, p := range []string{extractor, sequence} {
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Record appends the white pixels of the dithered grid and the final bits
// of trace, both packed most significant bit first
func (r *FileRecorder) Record(trace *extract.Trace) error {
	if trace == nil || trace.Dithered == nil {
		return ErrNoTrace
	}
	extractor, sequence := r.Paths()
	if err := r.append(extractor, util.PackBits(trace.Dithered.WhiteBits())); err != nil {
		return err
	}
	return r.append(sequence, util.PackBits(trace.Bits))
}

// Sequence reads the recorded random bits back, one bit per byte. A run
// whose bit count is not a multiple of 8 ends in a right-aligned byte and
// does not unpack to its original bits.
func (r *FileRecorder) Sequence() ([]uint8, error) {
	_, sequence := r.Paths()
	data, err := os.ReadFile(sequence)
	if err != nil {
		return nil, err
	}
	if r.enc != nil {
		dec, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		if data, err = io.ReadAll(dec); err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", sequence, err)
		}
	}

	bits := make([]uint8, 8*len(data))
	if err := util.ExtractBytesToBits(data, bits); err != nil {
		return nil, err
	}
	return bits, nil
}

// Close releases the compressor
func (r *FileRecorder) Close() error {
	if r.enc != nil {
		return r.enc.Close()
	}
	return nil
}

func (r *FileRecorder) append(path string, data []byte) error {
	if r.enc != nil {
		data = r.enc.EncodeAll(data, nil)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
