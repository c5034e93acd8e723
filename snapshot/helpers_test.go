package snapshot

import (
	"io"
	"log/slog"
)

func slogHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
}
