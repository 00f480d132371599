package icongen

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGradientAt(t *testing.T) {
	tests := []struct {
		name string
		i    int
		size int
		want color.RGBA
	}{
		{"first row is exactly the start color", 0, 16, color.RGBA{102, 126, 234, 255}},
		{"first row independent of size", 0, 128, color.RGBA{102, 126, 234, 255}},
		{"middle row of 128", 64, 128, color.RGBA{110, 100, 198, 255}},
		{"last row of 128 approaches the end color", 127, 128, color.RGBA{117, 75, 162, 255}},
		{"last row of 16", 15, 16, color.RGBA{117, 78, 166, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultGradient.At(tt.i, tt.size)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestGradientEndTolerance(t *testing.T) {
	// The bottom row must be within one step of the end color for the
	// largest icon size.
	const size = 128
	got := DefaultGradient.At(size-1, size)
	want := DefaultGradient.End
	for _, ch := range []struct {
		name      string
		got, want uint8
	}{
		{"R", got.R, want.R},
		{"G", got.G, want.G},
		{"B", got.B, want.B},
	} {
		d := int(ch.got) - int(ch.want)
		if d < -1 || d > 1 {
			t.Errorf("channel %s = %d, want %d±1", ch.name, ch.got, ch.want)
		}
	}
	if got.A != 255 {
		t.Errorf("alpha = %d, want 255", got.A)
	}
}

func TestGradientOpaque(t *testing.T) {
	for _, size := range []int{16, 48, 128} {
		for i := 0; i < size; i++ {
			if a := DefaultGradient.At(i, size).A; a != 255 {
				t.Fatalf("row %d of %d: alpha = %d, want 255", i, size, a)
			}
		}
	}
}
