package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidWidth is returned when a line splitter is created with a
	// maximum width of zero or less.
	ErrInvalidWidth = errors.New("text: max width must be positive")

	// ErrFamilyNotFound is returned when a library has no family with the requested name.
	ErrFamilyNotFound = errors.New("text: font family not found")

	// ErrFaceUnavailable is returned when neither the requested style nor
	// the regular style of a family is available.
	ErrFaceUnavailable = errors.New("text: face unavailable")
)

// FaceUnavailableError reports the family and style that could not be resolved.
type FaceUnavailableError struct {
	Family string
	Style  Style
}

func (e *FaceUnavailableError) Error() string {
	return fmt.Sprintf("text: no %s face (and no regular fallback) in family %q", e.Style, e.Family)
}

// Is reports whether target is ErrFaceUnavailable.
func (e *FaceUnavailableError) Is(target error) bool {
	return target == ErrFaceUnavailable
}

// ErrUnsupportedFontType is returned when the font type is not supported.
var ErrUnsupportedFontType = &FontError{Reason: "unsupported font type for outline extraction"}

// FontError represents a font-related error.
type FontError struct {
	Reason string
}

func (e *FontError) Error() string {
	return "text: " + e.Reason
}
