package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/optable/pixelrand/pkg/extract"
	"github.com/optable/pixelrand/pkg/log"
)

const (
	// DefaultTimeout bounds one image download
	DefaultTimeout = 60 * time.Second
	// maxImageBytes caps the size of a downloaded image
	maxImageBytes = 64 << 20
)

// HTTP downloads one image per Acquire from a URL that serves a
// different picture on every request
type HTTP struct {
	client *http.Client
	url    string
	size   int
}

// NewHTTP returns a source fetching url and scaling the images to
// size x size. A nil client is replaced by one with DefaultTimeout.
func NewHTTP(url string, size int, client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTP{client: client, url: url, size: size}
}

// Acquire downloads and decodes one image. Any failure is reported as
// ErrAcquisition and is not retried.
func (h *HTTP) Acquire(ctx context.Context) (*extract.Grid, error) {
	logger := log.GetLoggerFromContextWithName(ctx, "source")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAcquisition, err)
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAcquisition, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrAcquisition, h.url, resp.StatusCode)
	}

	g, format, err := Decode(io.LimitReader(resp.Body, maxImageBytes), h.size)
	if err != nil {
		return nil, err
	}
	logger.V(1).Info("downloaded image", "url", h.url, "format", format, "width", g.Width, "height", g.Height, "elapsed", time.Since(start))

	return g, nil
}
