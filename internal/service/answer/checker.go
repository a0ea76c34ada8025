// Package answer decides whether a typed response matches a word.
package answer

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/boxstudy/internal/domain"
)

// Checker compares responses against accepted answers.
type Checker struct {
	// TypoTolerance accepts a single-edit typo for answers longer than one rune.
	TypoTolerance bool
	// IgnoreDiacritics folds accents before comparing.
	IgnoreDiacritics bool
}

// strokeReplacer folds letters that have no combining-mark decomposition.
var strokeReplacer = strings.NewReplacer("ł", "l", "ø", "o", "đ", "d", "ß", "ss")

// Normalize applies domain.NormalizeText and, when enabled, folds accents.
func (c Checker) Normalize(s string) string {
	s = domain.NormalizeText(s)
	if !c.IgnoreDiacritics {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return strokeReplacer.Replace(folded)
}

// Matches reports whether response is an acceptable rendition of expected.
func (c Checker) Matches(response, expected string) bool {
	r, e := c.Normalize(response), c.Normalize(expected)
	if r == "" || e == "" {
		return false
	}
	if r == e {
		return true
	}
	if !c.TypoTolerance {
		return false
	}
	if len([]rune(r)) <= 1 || len([]rune(e)) <= 1 {
		return false
	}
	return levenshtein.ComputeDistance(r, e) <= 1
}

// MatchesAny reports whether response matches one of expected.
func (c Checker) MatchesAny(response string, expected []string) bool {
	for _, e := range expected {
		if c.Matches(response, e) {
			return true
		}
	}
	return false
}

// Check grades response for w. Reversed prompts expect the word's prompt.
func (c Checker) Check(w domain.Word, response string, reversed bool) domain.AnswerResult {
	expected := w.Answers
	if reversed {
		expected = []string{w.Prompt}
	}
	if c.MatchesAny(response, expected) {
		return domain.AnswerOK
	}
	return domain.AnswerWrong
}
