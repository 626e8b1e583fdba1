// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Outline components
	Index     lipgloss.Style
	Title     lipgloss.Style
	LineSpan  lipgloss.Style
	RangeSpan lipgloss.Style

	// Placeholder components
	Label       lipgloss.Style
	Replacement lipgloss.Style
	Unfilled    lipgloss.Style
	Position    lipgloss.Style

	// Section components
	SectionHeader lipgloss.Style
	EmptySection  lipgloss.Style

	// Misc
	Success lipgloss.Style
	Failure lipgloss.Style
	Dim     lipgloss.Style
	Bold    lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Index:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Title:     lipgloss.NewStyle().Bold(true),
		LineSpan:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		RangeSpan: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Replacement: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Unfilled:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true),
		Position:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		SectionHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		EmptySection:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Index:         plain,
		Title:         plain,
		LineSpan:      plain,
		RangeSpan:     plain,
		Label:         plain,
		Replacement:   plain,
		Unfilled:      plain,
		Position:      plain,
		SectionHeader: plain,
		EmptySection:  plain,
		Success:       plain,
		Failure:       plain,
		Dim:           plain,
		Bold:          plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
