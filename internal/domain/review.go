package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewRecord is the durable long-term schedule of one word in one scope.
type ReviewRecord struct {
	WordID       int64
	Scope        Scope
	Stage        int
	NextReviewAt time.Time
	LearnedAt    time.Time
}

// IsDue reports whether the record is due at now.
func (r ReviewRecord) IsDue(now time.Time) bool {
	return !r.NextReviewAt.After(now)
}

// DueWord is a due review joined with its content.
type DueWord struct {
	Word         Word
	Stage        int
	NextReviewAt time.Time
}

// LevelCounts maps a level label to a count. Builtin groups always carry
// every CEFR level.
type LevelCounts map[string]int

// Total sums all buckets.
func (c LevelCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// AnswerResult is the outcome recorded for a single answer.
type AnswerResult string

const (
	AnswerOK    AnswerResult = "ok"
	AnswerWrong AnswerResult = "wrong"
)

func (r AnswerResult) String() string { return string(r) }

func (r AnswerResult) IsValid() bool {
	return r == AnswerOK || r == AnswerWrong
}

// LearningEvent is one answered card, stored for analytics.
type LearningEvent struct {
	ID         uuid.UUID
	WordID     int64
	Scope      Scope
	Box        Box // empty for due reviews
	Result     AnswerResult
	DurationMs int
	CreatedAt  time.Time
}
