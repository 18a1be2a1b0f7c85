package extract

// error diffusion weights, in sixteenths
const (
	weightRight      = 7
	weightBelowLeft  = 3
	weightBelow      = 5
	weightBelowRight = 1
	weightDenom      = 16
)

// Diffuse applies four-neighbor error diffusion dithering to a grayscale
// grid and returns a new binary grid (Black or White) of the same
// dimensions. g is left untouched.
//
// Pixels are visited in raster order and each one reads the value left
// behind by the error already diffused into it, so the order matters.
// The quantization error of a pixel is spread to its right (7/16),
// below-left (3/16), below (5/16) and below-right (1/16) neighbors when
// they are inside the grid. A neighbor's new value is truncated toward
// zero and saturated to [0, 255] since it is stored in 8 bits.
func Diffuse(g *Grid) *Grid {
	out := g.Clone()
	w, h := out.Width, out.Height
	pix := out.Pix

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			old := int(pix[i])
			v := int(Black)
			if old >= Threshold {
				v = int(White)
			}
			pix[i] = uint8(v)

			qerr := old - v
			if qerr == 0 {
				continue
			}
			if x+1 < w {
				spread(pix, i+1, qerr, weightRight)
			}
			if y+1 < h {
				if x-1 >= 0 {
					spread(pix, i+w-1, qerr, weightBelowLeft)
				}
				spread(pix, i+w, qerr, weightBelow)
				if x+1 < w {
					spread(pix, i+w+1, qerr, weightBelowRight)
				}
			}
		}
	}

	return out
}

// spread adds weight/16 of qerr to pix[i]. Go integer division truncates
// toward zero, and 16*v + qerr*weight is exactly 16 times the real sum.
func spread(pix []uint8, i, qerr, weight int) {
	v := (int(pix[i])*weightDenom + qerr*weight) / weightDenom
	switch {
	case v < 0:
		v = 0
	case v > 255:
		v = 255
	}
	pix[i] = uint8(v)
}
