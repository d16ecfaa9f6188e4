package glyphsvg

import (
	"log/slog"

	"github.com/gogpu/glyphsvg/internal/logging"
)

// SetLogger configures the logger for glyphsvg and all its sub-packages.
// By default, glyphsvg produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by glyphsvg:
//   - [slog.LevelDebug]: per-line diagnostics (scale factor, glyph count, bounding box)
//   - [slog.LevelInfo]: document summary (lines, symbols, canvas size)
//   - [slog.LevelWarn]: non-fatal issues (skipped lines, style fallback, undecodable outlines)
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	glyphsvg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by glyphsvg.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
