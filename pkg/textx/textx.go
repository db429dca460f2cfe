// Package textx provides small text utilities used across the project.
package textx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizeText removes control characters except tab/newline/CR and trims spaces.
func SanitizeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Normalize lowercases, trims, and collapses internal whitespace so that
// subject and course names compare consistently.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

// ContainsWholeWord reports whether word occurs in text bounded by
// non-alphanumeric runes. Both arguments are matched case-insensitively.
func ContainsWholeWord(text, word string) bool {
	text = strings.ToLower(text)
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(word)
		// decode full runes at the boundaries; indexing bytes would
		// misread multibyte neighbors
		left, _ := utf8.DecodeLastRuneInString(text[:i])
		right, _ := utf8.DecodeRuneInString(text[end:])
		leftOK := i == 0 || !isWordRune(left)
		rightOK := end == len(text) || !isWordRune(right)
		if leftOK && rightOK {
			return true
		}
		start = i + 1
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
