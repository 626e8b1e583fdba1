package pretty

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/scratchpaper/textsync/pkg/session"
)

// fallbackWidth is used when the output is not a terminal.
const fallbackWidth = 80

// FormatOutline renders outline entries, one per line:
//
//	 0  lines 1-3    # Notes
//	 1  lines 5-5    fill □ here
//
// Line numbers are shown one-based for humans.
func (s *Styles) FormatOutline(entries []session.OutlineEntry) string {
	if len(entries) == 0 {
		return s.Dim.Render("(empty document)") + "\n"
	}

	width := terminalWidth()

	var builder strings.Builder
	for i, entry := range entries {
		lines := fmt.Sprintf("lines %d-%d", entry.LineRange.First+1, entry.LineRange.LastExclusive)

		title := entry.Title
		if title == "" {
			title = s.EmptySection.Render("(empty)")
		} else {
			title = s.Title.Render(clipWidth(title, width))
		}

		builder.WriteString(fmt.Sprintf("%s  %s  %s\n",
			s.Index.Render(fmt.Sprintf("%2d", i)),
			s.LineSpan.Render(fmt.Sprintf("%-12s", lines)),
			title,
		))
	}
	return builder.String()
}

// terminalWidth returns the current terminal width, or a fallback when
// stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

// clipWidth hard-cuts a title that would overflow the terminal line. The
// session already truncates by grapheme; this only guards against very
// narrow terminals.
func clipWidth(text string, width int) string {
	const reserved = 20 // index and line-span columns
	max := width - reserved
	if max <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
