package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
	style      *Style
	family     string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName, // Default parser (ximage)
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithStyle overrides the automatic style classification of the face.
// Use it for fonts whose names and OS/2 data are misleading.
func WithStyle(s Style) SourceOption {
	return func(c *sourceConfig) {
		c.style = &s
	}
}

// WithFamily files the face under family instead of the family name stored
// in the font. Faces whose typographic family includes their weight, such
// as "Go Medium", use it to join their siblings.
func WithFamily(family string) SourceOption {
	return func(c *sourceConfig) {
		c.family = family
	}
}
