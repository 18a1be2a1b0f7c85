// Package config loads the settings shared by the command line tools from
// the environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/optable/pixelrand/internal/hash"
	"github.com/optable/pixelrand/pkg/extract"
	"github.com/optable/pixelrand/pkg/source"
)

const (
	SourceHTTP      = "http"
	SourceFile      = "file"
	SourceSynthetic = "synthetic"
)

var (
	ErrUnknownSource = fmt.Errorf("unknown image source")
	ErrMissingFiles  = fmt.Errorf("file source needs at least one image file")
)

// Config holds every tunable of an image entropy buffer
type Config struct {
	Source         string        `env:"PIXELRAND_SOURCE"          envDefault:"http"`
	URL            string        `env:"PIXELRAND_URL"             envDefault:"https://picsum.photos/1024/1024"`
	Files          []string      `env:"PIXELRAND_FILES"           envSeparator:","`
	Seed           string        `env:"PIXELRAND_SEED"            envDefault:"pixelrand"`
	Size           int           `env:"PIXELRAND_SIZE"            envDefault:"1024"`
	Timeout        time.Duration `env:"PIXELRAND_TIMEOUT"         envDefault:"60s"`
	Iterations     int           `env:"PIXELRAND_ITERATIONS"      envDefault:"7"`
	GroupSize      int           `env:"PIXELRAND_GROUP_SIZE"      envDefault:"128"`
	Scan           string        `env:"PIXELRAND_SCAN"            envDefault:"right"`
	Dedupe         bool          `env:"PIXELRAND_DEDUPE"`
	DedupeCapacity uint          `env:"PIXELRAND_DEDUPE_CAPACITY" envDefault:"1024"`
	Hash           string        `env:"PIXELRAND_HASH"            envDefault:"highway"`
	Record         string        `env:"PIXELRAND_RECORD"`
	Compress       bool          `env:"PIXELRAND_COMPRESS"`
	Verbosity      int           `env:"PIXELRAND_VERBOSITY"`
}

// Load reads the .env file at path when it exists, without overriding
// variables already set, then parses the environment. An empty path
// skips the file.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Pipeline returns the extraction pipeline described by c
func (c Config) Pipeline() (*extract.Pipeline, error) {
	order, err := extract.ParseScanOrder(c.Scan)
	if err != nil {
		return nil, err
	}
	p := extract.NewPipeline()
	p.Iterations = c.Iterations
	p.GroupSize = c.GroupSize
	p.Order = order
	return p, nil
}

// NewSource returns the image source described by c, wrapped in a
// duplicate frame guard when Dedupe is set
func (c Config) NewSource() (source.Source, error) {
	var src source.Source
	switch c.Source {
	case SourceHTTP:
		src = source.NewHTTP(c.URL, c.Size, &http.Client{Timeout: c.Timeout})
	case SourceFile:
		if len(c.Files) == 0 {
			return nil, ErrMissingFiles
		}
		for _, f := range c.Files {
			if _, err := os.Stat(f); err != nil {
				return nil, err
			}
		}
		src = source.NewFile(c.Size, c.Files...)
	case SourceSynthetic:
		src = source.NewSynthetic([]byte(c.Seed), c.Size)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, c.Source)
	}

	if !c.Dedupe {
		return src, nil
	}
	t, err := hash.Parse(c.Hash)
	if err != nil {
		return nil, err
	}
	return source.NewGuard(src, t, c.DedupeCapacity)
}
