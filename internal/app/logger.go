package app

import (
	"log/slog"
	"os"

	"github.com/devkyoshi/easy-bites-sub000/internal/logx"
)

// NewLogger builds the process-wide JSON logger. Both binaries log to stdout
// and leave routing to the runtime.
func NewLogger() logx.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return logx.NewSlogAdapter(slog.New(handler))
}
