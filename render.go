package icongen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/k1LoW/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultLabel is the text drawn on every placeholder icon.
const DefaultLabel = "PA"

// Renderer produces the PNG bytes for a single icon. A Generator
// without a Renderer writes text stubs instead of images, so the
// presence of a Renderer is the imaging-capability switch.
type Renderer interface {
	Render(spec IconSpec) ([]byte, error)
}

// RasterRenderer renders a vertical gradient with a centered label.
// The zero value renders with DefaultGradient, DefaultLabel and
// DefaultFontPaths. When Face is set it is used for every size, which
// makes output independent of the host's installed fonts.
type RasterRenderer struct {
	Gradient  *Gradient
	Label     string
	FontPaths []string
	Face      font.Face
}

var _ Renderer = (*RasterRenderer)(nil)

// Render draws spec.Size×spec.Size pixels: a per-row gradient fill with
// the label on top in opaque white, centered by its measured bounding
// box. Labels wider than the canvas simply overflow; no clamping.
func (r *RasterRenderer) Render(spec IconSpec) (_ []byte, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if spec.Size < 1 {
		return nil, fmt.Errorf("invalid icon size: %d", spec.Size)
	}

	img := image.NewRGBA(image.Rect(0, 0, spec.Size, spec.Size))
	gradient := DefaultGradient
	if r.Gradient != nil {
		gradient = *r.Gradient
	}
	for i := 0; i < spec.Size; i++ {
		c := gradient.At(i, spec.Size)
		draw.Draw(img, image.Rect(0, i, spec.Size, i+1), image.NewUniform(c), image.Point{}, draw.Src)
	}

	face := r.Face
	if face == nil {
		paths := r.FontPaths
		if len(paths) == 0 {
			paths = DefaultFontPaths
		}
		loaded, err := LoadFont(paths, float64(spec.Size/2))
		if err != nil {
			// Missing system fonts fall back to the built-in face.
			face = basicfont.Face7x13
		} else {
			defer func() {
				_ = loaded.Close()
			}()
			face = loaded
		}
	}

	label := r.Label
	if label == "" {
		label = DefaultLabel
	}
	bounds, _ := font.BoundString(face, label)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := (spec.Size - textWidth) / 2
	y := (spec.Size - textHeight) / 2

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: face,
		// (x, y) is the top-left corner of the bounding box; shift by
		// the box's Min to get the baseline dot.
		Dot: fixed.Point26_6{
			X: fixed.I(x) - bounds.Min.X,
			Y: fixed.I(y) - bounds.Min.Y,
		},
	}
	d.DrawString(label)

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
