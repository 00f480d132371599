package lines

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// New wraps h with a handler that renders icon creation records as
// human-readable confirmation lines on stdout. Records it does not
// recognize are passed through to h.
func New(h slog.Handler) slog.Handler {
	return &linesHandler{
		handler: h,
		stdout:  colorable.NewColorableStdout(),
	}
}

type linesHandler struct {
	handler slog.Handler
	stdout  io.Writer
}

func (h *linesHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *linesHandler) Handle(ctx context.Context, r slog.Record) error {
	switch r.Message {
	case "created icon":
		file, size := fileAndSize(r)
		_, _ = fmt.Fprintf(h.stdout, "%s %s (%dx%d)\n", green("Created"), file, size, size)
		return nil
	case "created stub":
		file, size := fileAndSize(r)
		_, _ = fmt.Fprintf(h.stdout, "%s %s (%dx%d, text stub)\n", yellow("Created"), file, size, size)
		return nil
	}
	if r.Level >= slog.LevelError {
		_, _ = fmt.Fprintf(h.stdout, "%s %s\n", red("Error:"), r.Message)
		return nil
	}
	return h.handler.Handle(ctx, r)
}

func (h *linesHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &linesHandler{handler: h.handler.WithAttrs(attrs), stdout: h.stdout}
}

func (h *linesHandler) WithGroup(name string) slog.Handler {
	return &linesHandler{handler: h.handler.WithGroup(name), stdout: h.stdout}
}

func fileAndSize(r slog.Record) (string, int64) {
	var file string
	var size int64
	r.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "file":
			file = a.Value.String()
		case "size":
			size = a.Value.Int64()
		}
		return true
	})
	return file, size
}
