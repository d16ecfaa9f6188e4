package glyphsvg

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyphsvg/text"
)

var (
	// ErrFaceUnavailable is matched by errors for lines whose requested
	// style and the regular fallback are both missing from the family.
	ErrFaceUnavailable = text.ErrFaceUnavailable

	// ErrNoRenderableLines is returned when every non-blank line failed.
	ErrNoRenderableLines = errors.New("glyphsvg: no renderable lines")

	// ErrEmptyText is returned when there is nothing to render.
	ErrEmptyText = errors.New("glyphsvg: empty text")

	// ErrInvalidFontSize is returned for a font size that is not positive.
	ErrInvalidFontSize = errors.New("glyphsvg: font size must be positive")

	// ErrNilFamily is returned by NewRenderer when no family is given.
	ErrNilFamily = errors.New("glyphsvg: nil font family")
)

// LineError reports a failure confined to one input line.
// Line is 1-based.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("glyphsvg: line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
