package icongen

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func generateIcons(t *testing.T) (*Generator, string) {
	t.Helper()
	dir := t.TempDir()
	g, err := New(WithDir(dir), WithRenderer(testRenderer()))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.GenerateAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	return g, dir
}

func statuses(results []VerifyResult) map[string]VerifyStatus {
	m := map[string]VerifyStatus{}
	for _, r := range results {
		m[r.Filename] = r.Status
	}
	return m
}

func TestVerifyFresh(t *testing.T) {
	g, _ := generateIcons(t)
	results, err := g.Verify(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(DefaultSpecs) {
		t.Fatalf("got %d results, want %d", len(results), len(DefaultSpecs))
	}
	for name, status := range statuses(results) {
		if status != VerifyOK {
			t.Errorf("%s: status = %s, want ok", name, status)
		}
	}
}

func TestVerifyMissing(t *testing.T) {
	g, dir := generateIcons(t)
	if err := os.Remove(filepath.Join(dir, "icon48.png")); err != nil {
		t.Fatal(err)
	}
	results, err := g.Verify(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := statuses(results)["icon48.png"]; got != VerifyMissing {
		t.Errorf("status = %s, want missing", got)
	}
}

func TestVerifyDiffers(t *testing.T) {
	g, dir := generateIcons(t)
	// A text stub under an icon name does not decode and must not verify.
	if err := os.WriteFile(filepath.Join(dir, "icon128.png"), []byte("Placeholder icon 128x128"), 0o644); err != nil {
		t.Fatal(err)
	}
	results, err := g.Verify(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := statuses(results)["icon128.png"]; got != VerifyDiffers {
		t.Errorf("status = %s, want differs", got)
	}
}

func TestVerifyReencoded(t *testing.T) {
	g, dir := generateIcons(t)
	// Re-encoding the same pixels may change the bytes but not the
	// image; verification must still pass via the perceptual hash.
	path := filepath.Join(dir, "icon128.png")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img := decodePNG(t, b)
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	results, err := g.Verify(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := statuses(results)["icon128.png"]; got != VerifyOK {
		t.Errorf("status = %s, want ok", got)
	}
}

func TestVerifyRequiresRenderer(t *testing.T) {
	g, err := New(WithDir(t.TempDir()), WithRenderer(nil))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Verify(context.Background()); err == nil {
		t.Error("expected error for stub-mode generator")
	}
}
