package opengl

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for backend debug logging.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for the OpenGL backend.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
