package icongen

import "image/color"

// DefaultGradient is the background used for every placeholder icon,
// running from #667eea at the top row to #764ba2 at the bottom.
var DefaultGradient = Gradient{
	Start: color.RGBA{R: 102, G: 126, B: 234, A: 255},
	End:   color.RGBA{R: 118, G: 75, B: 162, A: 255},
}

// Gradient is a vertical two-color gradient. It holds no state; the
// color of a row is a pure function of the row index and the image size.
type Gradient struct {
	Start color.RGBA
	End   color.RGBA
}

// At returns the color of row i in an image of the given edge length.
// Each channel is interpolated as start + (end-start)*i/size with the
// fractional part truncated, so row 0 is exactly Start and the last row
// approaches End within integer rounding. Alpha is always opaque.
func (g Gradient) At(i, size int) color.RGBA {
	t := float64(i) / float64(size)
	return color.RGBA{
		R: lerp(g.Start.R, g.End.R, t),
		G: lerp(g.Start.G, g.End.G, t),
		B: lerp(g.Start.B, g.End.B, t),
		A: 255,
	}
}

func lerp(start, end uint8, t float64) uint8 {
	return uint8(int(float64(start) + (float64(end)-float64(start))*t))
}
