package source

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/optable/pixelrand/pkg/extract"
)

// Decode reads an image (JPEG, PNG, GIF, BMP, TIFF or WebP) from r and
// converts it with GridFromImage. It returns the name of the format.
func Decode(r io.Reader, size int) (*extract.Grid, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrAcquisition, err)
	}
	g, err := GridFromImage(img, size)
	if err != nil {
		return nil, "", err
	}
	return g, format, nil
}

// GridFromImage returns the red channel of img as a grayscale grid.
// When size is positive and img is not size x size, img is first
// scaled to it.
func GridFromImage(img image.Image, size int) (*extract.Grid, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrAcquisition)
	}

	if size > 0 && (bounds.Dx() != size || bounds.Dy() != size) {
		scaled := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)
		img = scaled
		bounds = scaled.Bounds()
	}

	g := extract.NewGrid(bounds.Dx(), bounds.Dy())
	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < g.Height; y++ {
			copy(g.Pix[y*g.Width:(y+1)*g.Width], src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):])
		}
	default:
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				r, _, _, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				g.Pix[y*g.Width+x] = uint8(r >> 8)
			}
		}
	}

	return g, nil
}
