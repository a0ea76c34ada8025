package domain

import "strings"

// NormalizeText prepares a typed answer for comparison: surrounding
// whitespace is dropped, inner runs of any whitespace become one space and
// letters are lower-cased. Diacritics, hyphens and apostrophes are kept.
func NormalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
