package icongen

import (
	"fmt"
	"os"

	"github.com/k1LoW/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// DefaultFontPaths lists the bold sans-serif TTF candidates tried in
// order when rendering labels. TTC collections are not supported by the
// opentype parser, so only plain TTF paths are listed.
var DefaultFontPaths = []string{
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Bold.ttf",
	// macOS
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/Library/Fonts/Arial Bold.ttf",
	// Windows
	"C:\\Windows\\Fonts\\arialbd.ttf",
}

// LoadFont tries each candidate TTF path in order and returns a face at
// the given point size (72 DPI, full hinting). It returns an error when
// no candidate can be read and parsed; the caller decides what face to
// substitute in that case.
func LoadFont(paths []string, points float64) (_ font.Face, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		ft, err := opentype.Parse(b)
		if err != nil {
			continue
		}
		face, err := opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    points,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			continue
		}
		return face, nil
	}
	return nil, fmt.Errorf("no usable font among %d candidate paths", len(paths))
}
