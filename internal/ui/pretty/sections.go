package pretty

import (
	"fmt"
	"strings"

	"github.com/scratchpaper/textsync/pkg/section"
)

// FormatSections renders each section with a header naming its index and
// source range, followed by the section content.
func (s *Styles) FormatSections(sections []section.Section) string {
	if len(sections) == 0 {
		return s.Dim.Render("(empty document)") + "\n"
	}

	var builder strings.Builder
	for i, sec := range sections {
		if i > 0 {
			builder.WriteString("\n")
		}

		header := fmt.Sprintf("section %d [%d..%d)",
			sec.Index, sec.SourceRange.Location, sec.SourceRange.Max())
		builder.WriteString(s.SectionHeader.Render(header))
		builder.WriteString("\n")

		if sec.Content == "" {
			builder.WriteString(s.EmptySection.Render("(empty)"))
			builder.WriteString("\n")
			continue
		}

		builder.WriteString(sec.Content)
		builder.WriteString("\n")
	}
	return builder.String()
}
