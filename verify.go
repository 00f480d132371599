package icongen

import (
	"bytes"
	"context"
	"fmt"
	"hash/crc32"
	"image"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/corona10/goimagehash"
	"github.com/k1LoW/errors"
)

type VerifyStatus int

const (
	VerifyOK VerifyStatus = iota
	VerifyMissing
	VerifyDiffers
)

func (s VerifyStatus) String() string {
	switch s {
	case VerifyOK:
		return "ok"
	case VerifyMissing:
		return "missing"
	case VerifyDiffers:
		return "differs"
	default:
		return "unknown"
	}
}

type VerifyResult struct {
	Filename string
	Status   VerifyStatus
}

// Verify re-renders each configured icon in memory and compares it with
// the file on disk. Byte-identical files match by checksum; otherwise
// both are decoded and compared by perceptual hash, so a re-encoded but
// visually identical icon still counts as up to date. Requires a
// Renderer; stub-mode generators cannot verify.
func (g *Generator) Verify(ctx context.Context) (_ []VerifyResult, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if g.renderer == nil {
		return nil, fmt.Errorf("verify requires an imaging renderer")
	}
	var results []VerifyResult
	for _, spec := range g.specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		want, err := g.renderer.Render(spec)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", spec.Filename, err)
		}
		path := filepath.Join(g.dir, spec.Filename)
		got, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				results = append(results, VerifyResult{Filename: spec.Filename, Status: VerifyMissing})
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		status := VerifyDiffers
		if equivalentPNG(want, got) {
			status = VerifyOK
		}
		g.logger.Debug("verified icon", slog.String("file", spec.Filename), slog.String("status", status.String()))
		results = append(results, VerifyResult{Filename: spec.Filename, Status: status})
	}
	return results, nil
}

// equivalentPNG reports whether two encodings represent the same icon:
// equal checksums, or decodable images within a small perceptual-hash
// distance.
func equivalentPNG(a, b []byte) bool {
	if crc32.ChecksumIEEE(a) == crc32.ChecksumIEEE(b) {
		return true
	}
	ai, _, err := image.Decode(bytes.NewReader(a))
	if err != nil {
		return false
	}
	bi, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return false
	}
	if !ai.Bounds().Eq(bi.Bounds()) {
		return false
	}
	aHash, err := goimagehash.PerceptionHash(ai)
	if err != nil {
		return false
	}
	bHash, err := goimagehash.PerceptionHash(bi)
	if err != nil {
		return false
	}
	distance, err := aHash.Distance(bHash)
	if err != nil {
		return false
	}
	return distance < 5 // threshold for similarity
}
