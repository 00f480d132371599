package cmd

import (
	"log/slog"
	"os"

	"github.com/k1LoW/icongen/handler/lines"
	"github.com/k1LoW/tail"
	slogmulti "github.com/samber/slog-multi"
)

// tb keeps the latest log lines in memory so Execute can dump them
// alongside stack traces when a command fails.
var tb = tail.New(100)

// newLogger fans records out to the in-memory tail buffer (JSON, debug
// level) and to a human-readable stdout handler.
func newLogger() *slog.Logger {
	return slog.New(slogmulti.Fanout(
		slog.NewJSONHandler(tb, &slog.HandlerOptions{Level: slog.LevelDebug}),
		lines.New(slog.NewTextHandler(os.Stdout, nil)),
	))
}
