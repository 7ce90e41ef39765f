package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
	// Packages that log without a handle (pipeline cleanup warnings) go
	// through the default logger, so route it to the same handler.
	slog.SetDefault(Log)
}
