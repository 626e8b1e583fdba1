// Package placeholder parses inline placeholder tokens and tracks the
// resulting units as the buffer mutates. A placeholder is an atomic,
// single-rune fill-in-the-blank slot; its current range is always derived
// from the buffer's attachment table, never bookkept independently.
package placeholder

import (
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/scratchpaper/textsync/pkg/textbuf"
	"github.com/scratchpaper/textsync/pkg/textrange"
)

// Syntax selects which delimiter pairs the scanner recognizes.
type Syntax int

const (
	// SyntaxCanonical recognizes <#label#> only.
	SyntaxCanonical Syntax = iota

	// SyntaxWithLegacy additionally recognizes the older <@label@> and
	// <@label@>! forms as a distinct, non-interchangeable delimiter pair.
	SyntaxWithLegacy
)

// Token is one placeholder occurrence found in source text.
type Token struct {
	// Label is the text between the delimiters. It never contains the
	// closing delimiter.
	Label string

	// Range is the rune range of the whole token, delimiters included.
	Range textrange.Range

	// Legacy is true for the <@...@> delimiter family.
	Legacy bool

	// PreFilled marks the legacy <@label@>! form: the label doubles as
	// the unit's replacement content.
	PreFilled bool
}

var (
	canonicalPattern = regexp.MustCompile(`<#(.*?)#>`)
	legacyPattern    = regexp.MustCompile(`<@(.*?)@>(!?)`)
)

// Scan finds all placeholder tokens in text, ordered by location.
// Unterminated or malformed delimiters are left as plain text; a scan that
// finds nothing is a normal outcome, not an error.
func Scan(text string, syntax Syntax) []Token {
	tokens := scanPattern(text, canonicalPattern, false)
	if syntax == SyntaxWithLegacy {
		tokens = append(tokens, scanPattern(text, legacyPattern, true)...)
		sort.Slice(tokens, func(i, j int) bool {
			return tokens[i].Range.Location < tokens[j].Range.Location
		})
	}
	return tokens
}

func scanPattern(text string, pattern *regexp.Regexp, legacy bool) []Token {
	matches := pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		start := utf8.RuneCountInString(text[:m[0]])
		length := utf8.RuneCountInString(text[m[0]:m[1]])

		tok := Token{
			Label:  text[m[2]:m[3]],
			Range:  textrange.New(start, length),
			Legacy: legacy,
		}
		if legacy && len(m) >= 6 && m[5] > m[4] {
			tok.PreFilled = true
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// ParseIntoBuffer scans the buffer text and replaces every matched token
// with an atomic placeholder unit, back to front so earlier ranges stay
// valid. Returns the attachments created, in document order.
func ParseIntoBuffer(buf *textbuf.Buffer, syntax Syntax) ([]*textbuf.Attachment, error) {
	tokens := Scan(buf.Text(), syntax)

	created := make([]*textbuf.Attachment, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		replacement := ""
		if tok.PreFilled {
			replacement = tok.Label
		}

		a, err := buf.SpliceAttachment(tok.Range, tok.Label, replacement)
		if err != nil {
			return nil, err
		}
		created[i] = a
	}
	return created, nil
}
