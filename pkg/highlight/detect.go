package highlight

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// detectCandidates bounds the classifier to languages a scratch document
// plausibly embeds.
var detectCandidates = []string{
	"Markdown", "TeX", "Go", "Python", "Shell", "JavaScript",
	"JSON", "YAML", "HTML", "SQL", "C", "C++",
}

// DetectLanguage guesses a chroma lexer name for section content.
// Detection failures fall back to "markdown", the document's native
// dialect.
func DetectLanguage(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "markdown"
	}

	data := []byte(content)

	if lang, safe := enry.GetLanguageByShebang(data); safe {
		return normalize(lang)
	}

	// Inline or display math means TeX regardless of what the classifier
	// thinks.
	if strings.Contains(trimmed, "$") && strings.Contains(trimmed, "\\") {
		return "latex"
	}

	if lang, safe := enry.GetLanguageByClassifier(data, detectCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return "markdown"
}

// normalize maps go-enry language names onto chroma lexer names.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "TeX":
		return "latex"
	default:
		return strings.ToLower(lang)
	}
}
