package domain

import "strings"

// WordType is the presentation kind of a flashcard.
type WordType string

const (
	WordTypeText      WordType = "text"
	WordTypeImage     WordType = "image"
	WordTypeTrueFalse WordType = "true_false"
)

func (t WordType) String() string { return string(t) }

func (t WordType) IsValid() bool {
	switch t {
	case WordTypeText, WordTypeImage, WordTypeTrueFalse:
		return true
	}
	return false
}

// Word is a read-only content unit owned by the content provider.
type Word struct {
	ID      int64    `json:"id"`
	Prompt  string   `json:"prompt"`
	Answers []string `json:"answers"`
	Flipped bool     `json:"flipped,omitempty"`
	Media   string   `json:"media,omitempty"`
	Type    WordType `json:"type,omitempty"`
}

// PrimaryAnswer returns the first accepted answer or "".
func (w Word) PrimaryAnswer() string {
	if len(w.Answers) == 0 {
		return ""
	}
	return w.Answers[0]
}

// NormalizeAnswers trims, drops empties and removes duplicates preserving order.
func NormalizeAnswers(answers []string) []string {
	out := make([]string, 0, len(answers))
	seen := make(map[string]struct{}, len(answers))
	for _, a := range answers {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

// WordIDs extracts ids preserving order.
func WordIDs(words []Word) []int64 {
	ids := make([]int64, len(words))
	for i, w := range words {
		ids[i] = w.ID
	}
	return ids
}
