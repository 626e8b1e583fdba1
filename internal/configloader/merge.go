package configloader

import "github.com/scratchpaper/textsync/pkg/config"

// merge combines two configurations, with override taking precedence over
// base. Scalar values in override overwrite base only when non-zero;
// booleans can only be switched on by an override, not unset.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Placeholders.LegacySyntax {
		result.Placeholders.LegacySyntax = true
	}
	if override.Placeholders.Marker != "" {
		result.Placeholders.Marker = override.Placeholders.Marker
	}

	if override.Highlight.Language != "" {
		result.Highlight.Language = override.Highlight.Language
	}
	if override.Highlight.Theme != "" {
		result.Highlight.Theme = override.Highlight.Theme
	}
	if override.Highlight.Formatter != "" {
		result.Highlight.Formatter = override.Highlight.Formatter
	}

	if override.Outline.TitleLimit != 0 {
		result.Outline.TitleLimit = override.Outline.TitleLimit
	}

	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Debug {
		result.Debug = true
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs
// taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
