// Package config defines core configuration types for textsync.
// These types are pure data structures with no dependency on any config
// loader.
package config

// ColorMode controls ANSI color usage in command output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known values.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// PlaceholdersConfig controls placeholder token recognition.
type PlaceholdersConfig struct {
	// LegacySyntax additionally recognizes <@label@> tokens alongside the
	// canonical <#label#> form.
	LegacySyntax bool `yaml:"legacy_syntax"`

	// Marker is the text shown for an unfilled placeholder in rendered
	// output. Empty selects the built-in marker.
	Marker string `yaml:"marker"`
}

// HighlightConfig selects the chroma lexer, style and formatter used for
// section highlighting.
type HighlightConfig struct {
	// Language is a chroma lexer name, or "auto" for per-section
	// detection.
	Language string `yaml:"language"`

	// Theme is a chroma style name.
	Theme string `yaml:"theme"`

	// Formatter is a chroma formatter name.
	Formatter string `yaml:"formatter"`
}

// OutlineConfig controls the outline view.
type OutlineConfig struct {
	// TitleLimit bounds outline titles in grapheme clusters.
	TitleLimit int `yaml:"title_limit"`
}

// Config is the root configuration structure for textsync.
type Config struct {
	Placeholders PlaceholdersConfig `yaml:"placeholders"`
	Highlight    HighlightConfig    `yaml:"highlight"`
	Outline      OutlineConfig      `yaml:"outline"`

	// CLI-level options (not persisted to config files).

	// Color controls ANSI output.
	Color ColorMode `yaml:"-"`

	// Debug enables verbose logging.
	Debug bool `yaml:"-"`
}

// NewConfig returns a configuration populated with defaults.
func NewConfig() *Config {
	return &Config{
		Placeholders: PlaceholdersConfig{},
		Highlight: HighlightConfig{
			Language:  "auto",
			Theme:     "github",
			Formatter: "terminal256",
		},
		Outline: OutlineConfig{
			TitleLimit: 60,
		},
		Color: ColorAuto,
	}
}
