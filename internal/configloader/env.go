package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/scratchpaper/textsync/pkg/config"
)

// envVarPrefix is the prefix for all textsync environment variables.
const envVarPrefix = "TEXTSYNC_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"LEGACY_PLACEHOLDERS": {field: "placeholders.legacy_syntax", typ: envTypeBool},
	"MARKER":              {field: "placeholders.marker", typ: envTypeString},
	"LANGUAGE":            {field: "highlight.language", typ: envTypeString},
	"THEME":               {field: "highlight.theme", typ: envTypeString},
	"FORMATTER":           {field: "highlight.formatter", typ: envTypeString},
	"TITLE_LIMIT":         {field: "outline.title_limit", typ: envTypeInt},
	"COLOR":               {field: "color", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with TEXTSYNC_ (e.g., TEXTSYNC_THEME).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "placeholders.marker":
		cfg.Placeholders.Marker = value
	case "highlight.language":
		cfg.Highlight.Language = value
	case "highlight.theme":
		cfg.Highlight.Theme = value
	case "highlight.formatter":
		cfg.Highlight.Formatter = value
	case "color":
		cfg.Color = config.ColorMode(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "placeholders.legacy_syntax":
		cfg.Placeholders.LegacySyntax = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "outline.title_limit":
		cfg.Outline.TitleLimit = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"TEXTSYNC_LEGACY_PLACEHOLDERS": "Recognize legacy <@label@> placeholder tokens: true or false",
		"TEXTSYNC_MARKER":              "Text shown for unfilled placeholders in rendered output",
		"TEXTSYNC_LANGUAGE":            "Highlight lexer name, or auto",
		"TEXTSYNC_THEME":               "Highlight style name",
		"TEXTSYNC_FORMATTER":           "Highlight formatter name",
		"TEXTSYNC_TITLE_LIMIT":         "Maximum outline title length in grapheme clusters",
		"TEXTSYNC_COLOR":               "Color output: auto, always, or never",
	}
}
