package match

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// NormalizeText lowercases a string, strips punctuation, and collapses
// all whitespace runs into single spaces. It is the shared normal form for
// every textual comparison in the matcher.
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Similarity compares two short strings and returns a score in [0, 1].
//
// Both strings are normalized first. Identical normalized strings score
// exactly 1.0, which also covers two strings that are empty after
// normalization. A single empty string scores 0.0. Everything else scores
// 1 - editDistance / maxLength over the normalized forms.
func Similarity(a, b string) float64 {
	na := NormalizeText(a)
	nb := NormalizeText(b)

	if na == nb {
		return 1.0
	}
	if na == "" || nb == "" {
		return 0.0
	}

	distance := levenshtein.ComputeDistance(na, nb)
	maxLen := utf8.RuneCountInString(na)
	if l := utf8.RuneCountInString(nb); l > maxLen {
		maxLen = l
	}

	return 1.0 - float64(distance)/float64(maxLen)
}
