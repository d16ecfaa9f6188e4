package text

import (
	"fmt"
	"os"
	"sync"
)

// FontSource represents a loaded font file.
// FontSource is heavyweight and should be shared across the application;
// its metrics and classification are computed once at load time.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data   []byte
	parsed ParsedFont // Abstracted font interface (pluggable backend)

	// Metadata
	name     string
	fullName string
	style    Style
	metrics  FontMetrics

	mu sync.RWMutex

	// Configuration
	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	// Apply options first to get parser name
	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:     dataCopy,
		parsed:   parsed,
		config:   config,
		fullName: parsed.FullName(),
		metrics:  parsed.Metrics(),
	}
	s.addr = s // Self-reference for copy detection

	s.name = extractFontName(parsed)
	if config.family != "" {
		s.name = config.family
	}
	if config.style != nil {
		s.style = *config.style
	} else {
		s.style = ClassifyFont(parsed)
	}

	Logger().Debug("font source loaded",
		"name", s.name, "full_name", s.fullName, "style", s.style.String(),
		"upem", s.metrics.UnitsPerEm)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// FullName returns the full face name, e.g. "Go Bold".
func (s *FontSource) FullName() string {
	s.copyCheck()
	return s.fullName
}

// Style returns the style this face was classified as.
func (s *FontSource) Style() Style {
	s.copyCheck()
	return s.style
}

// Italic reports whether the underlying face is italic or oblique.
func (s *FontSource) Italic() bool {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed != nil && s.parsed.Italic()
}

// Metrics returns the face's design-unit metrics.
func (s *FontSource) Metrics() FontMetrics {
	s.copyCheck()
	return s.metrics
}

// ScaleContext derives the scale context for this face at size.
func (s *FontSource) ScaleContext(size float64) ScaleContext {
	return NewScaleContext(s.Metrics(), size)
}

// Parsed returns the parsed font for advanced operations.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Data returns the raw font bytes. The returned slice must not be modified.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Close releases resources associated with the FontSource.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.parsed = nil

	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	// Try to get the family name
	if name := parsed.Name(); name != "" {
		return name
	}

	// Try full name as fallback
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}

	// Fallback
	return "Unknown Font"
}
