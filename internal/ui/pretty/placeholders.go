package pretty

import (
	"fmt"
	"strings"

	"github.com/scratchpaper/textsync/pkg/placeholder"
	"github.com/scratchpaper/textsync/pkg/textrange"
)

// PlaceholderRow pairs a placeholder with its resolved position for
// display.
type PlaceholderRow struct {
	Placeholder placeholder.Placeholder
	Range       textrange.Range
}

// FormatPlaceholders renders the placeholder list, one per line:
//
//	offset 14  name      (unfilled)
//	offset 31  greeting  = "Hello"
func (s *Styles) FormatPlaceholders(rows []PlaceholderRow) string {
	if len(rows) == 0 {
		return s.Dim.Render("(no placeholders)") + "\n"
	}

	labelWidth := 0
	for _, row := range rows {
		if n := len([]rune(row.Placeholder.Label)); n > labelWidth {
			labelWidth = n
		}
	}

	var builder strings.Builder
	for _, row := range rows {
		position := s.Position.Render(fmt.Sprintf("offset %-5d", row.Range.Location))
		label := s.Label.Render(fmt.Sprintf("%-*s", labelWidth, row.Placeholder.Label))

		state := s.Unfilled.Render("(unfilled)")
		if row.Placeholder.Replacement != "" {
			state = s.Replacement.Render(fmt.Sprintf("= %q", row.Placeholder.Replacement))
		}

		builder.WriteString(fmt.Sprintf("%s  %s  %s\n", position, label, state))
	}
	return builder.String()
}
