package icongen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/k1LoW/errors"
)

// IconSpec is one icon to produce: a square edge length in pixels and
// the output file name.
type IconSpec struct {
	Size     int
	Filename string
}

// DefaultSpecs are the three icon sizes a Chromium extension manifest
// expects. The set is fixed for the life of the process.
var DefaultSpecs = []IconSpec{
	{Size: 16, Filename: "icon16.png"},
	{Size: 48, Filename: "icon48.png"},
	{Size: 128, Filename: "icon128.png"},
}

// Generator writes placeholder icon files. With a Renderer it writes
// PNG images; without one it writes text stubs under the same names.
type Generator struct {
	specs    []IconSpec
	renderer Renderer
	dir      string
	logger   *slog.Logger
}

type Option func(*Generator) error

// WithSpecs replaces the default icon set.
func WithSpecs(specs []IconSpec) Option {
	return func(g *Generator) error {
		if len(specs) == 0 {
			return fmt.Errorf("at least one icon spec is required")
		}
		g.specs = specs
		return nil
	}
}

// WithRenderer sets the imaging backend. Passing nil selects the
// text-stub path explicitly; there is no runtime capability probing.
func WithRenderer(r Renderer) Option {
	return func(g *Generator) error {
		g.renderer = r
		return nil
	}
}

// WithDir sets the output directory. Defaults to the current working
// directory.
func WithDir(dir string) Option {
	return func(g *Generator) error {
		g.dir = dir
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}

// New returns a Generator for the default icon set rendered with a
// zero-value RasterRenderer, writing into the current directory.
func New(opts ...Option) (_ *Generator, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	g := &Generator{
		specs:    DefaultSpecs,
		renderer: &RasterRenderer{},
		dir:      ".",
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// GenerateAll produces every configured icon file, overwriting existing
// files. Disk errors are returned as-is; there is no retry and no
// partial-failure bookkeeping for this one-shot tool.
func (g *Generator) GenerateAll(ctx context.Context) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	for _, spec := range g.specs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.renderer == nil {
			if err := g.generateStub(spec); err != nil {
				return err
			}
			continue
		}
		if err := g.generateOne(spec); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) generateOne(spec IconSpec) error {
	b, err := g.renderer.Render(spec)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", spec.Filename, err)
	}
	path := filepath.Join(g.dir, spec.Filename)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	g.logger.Info("created icon", slog.String("file", spec.Filename), slog.Int("size", spec.Size))
	return nil
}

// generateStub writes the plain-text substitute for one icon. This is a
// full replacement path, not a degraded render: no image data at all.
func (g *Generator) generateStub(spec IconSpec) error {
	path := filepath.Join(g.dir, spec.Filename)
	content := fmt.Sprintf("Placeholder icon %dx%d", spec.Size, spec.Size)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	g.logger.Info("created stub", slog.String("file", spec.Filename), slog.Int("size", spec.Size))
	return nil
}
