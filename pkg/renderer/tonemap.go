package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// toneMap converts averaged linear radiance to an opaque 8-bit color with
// gamma 2 correction
func toneMap(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: channel(c.X),
		G: channel(c.Y),
		B: channel(c.Z),
		A: 255,
	}
}

// channel maps one linear component to [0, 255]. Non-finite and negative
// values become 0.
func channel(x float64) uint8 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x <= 0 {
		return 0
	}
	x = math.Min(math.Sqrt(x), 0.999)
	return uint8(256 * x)
}

// PackRGB returns the image as tightly packed 8-bit RGB triples, row by row
// from the top
func PackRGB(img *image.RGBA) []uint8 {
	bounds := img.Bounds()
	out := make([]uint8, 0, bounds.Dx()*bounds.Dy()*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			out = append(out, c.R, c.G, c.B)
		}
	}
	return out
}
