package utils

import (
	"net/url"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeText cleans a single-line form field: tags stripped, control
// characters removed, whitespace collapsed, ends trimmed.
func SanitizeText(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = stripControl(s, false)
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// SanitizeTextarea is SanitizeText but newlines survive.
func SanitizeTextarea(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = stripControl(s, true)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(strings.Join(strings.Fields(line), " "), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// SanitizeURL returns the URL if it parses as absolute http(s), else "".
func SanitizeURL(s string) string {
	s = strings.TrimSpace(s)
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}

func stripControl(s string, keepNewlines bool) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' && keepNewlines {
			return r
		}
		if r == '\t' {
			return ' '
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
