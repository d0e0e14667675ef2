package submission

import (
	"strings"

	"github.com/welbinator/therepo/internal/utils"
)

// ExcerptWords is the word count an excerpt is trimmed to at creation.
const ExcerptWords = 55

// TrimWords truncates text to at most n whitespace-separated words, appending
// an ellipsis only when something was cut.
func TrimWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ") + "…"
}

// SplitTerms turns a comma-separated term string into trimmed names with
// empty entries dropped.
func SplitTerms(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := utils.SanitizeText(p); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// CleanList trims a term list supplied as separate values, dropping empties.
func CleanList(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if name := utils.SanitizeText(n); name != "" {
			out = append(out, name)
		}
	}
	return out
}
