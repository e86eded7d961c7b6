// Package ingredients turns raw ingredient labels into analyzer reports by
// matching them against a hazard database.
package ingredients

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeToken lower-cases s and collapses every run of characters outside
// [a-z0-9] into a single space.
func NormalizeToken(s string) string {
	s = strings.ToLower(norm.NFKC.String(s))
	return strings.TrimSpace(nonAlnum.ReplaceAllString(s, " "))
}

// SplitIngredients splits a pasted or OCR'd ingredient label on commas,
// semicolons and line breaks. Blank entries are dropped; order is kept.
func SplitIngredients(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case ',', ';', '\n', '\r':
			return true
		default:
			return false
		}
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Tokens normalizes raw ingredient names, dropping those that normalize to nothing.
func Tokens(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if t := NormalizeToken(r); t != "" {
			out = append(out, t)
		}
	}
	return out
}
