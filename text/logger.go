package text

import (
	"log/slog"

	"github.com/gogpu/glyphsvg/internal/logging"
)

// Logger returns the logger used by the text package.
// It is configured through glyphsvg.SetLogger.
func Logger() *slog.Logger {
	return logging.Logger()
}
