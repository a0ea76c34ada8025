package review

import (
	"fmt"
	"time"
)

// DefaultStageDelays is the production interval table: 2d, 7d, 30d, 90d,
// 180d, 365d for stages 0..5.
var DefaultStageDelays = []time.Duration{
	48 * time.Hour,
	7 * 24 * time.Hour,
	30 * 24 * time.Hour,
	90 * 24 * time.Hour,
	180 * 24 * time.Hour,
	365 * 24 * time.Hour,
}

// StageTable maps a review stage to the delay before the next review.
// Stages outside [0, MaxStage] are clamped.
type StageTable struct {
	delays []time.Duration
}

// NewStageTable validates delays: non-empty, non-negative, non-decreasing.
func NewStageTable(delays []time.Duration) (*StageTable, error) {
	if len(delays) == 0 {
		return nil, fmt.Errorf("stage table: no delays")
	}
	for i, d := range delays {
		if d < 0 {
			return nil, fmt.Errorf("stage table: stage %d has negative delay %s", i, d)
		}
		if i > 0 && d < delays[i-1] {
			return nil, fmt.Errorf("stage table: stage %d delay %s shorter than stage %d", i, d, i-1)
		}
	}
	return &StageTable{delays: append([]time.Duration(nil), delays...)}, nil
}

// MaxStage is the highest stage a record can reach.
func (t *StageTable) MaxStage() int { return len(t.delays) - 1 }

// Clamp bounds stage to [0, MaxStage].
func (t *StageTable) Clamp(stage int) int {
	return max(0, min(stage, t.MaxStage()))
}

// Delay returns the interval for stage. Never fails.
func (t *StageTable) Delay(stage int) time.Duration {
	return t.delays[t.Clamp(stage)]
}

// NextReviewAt is now plus the delay of stage.
func (t *StageTable) NextReviewAt(stage int, now time.Time) time.Time {
	return now.Add(t.Delay(stage))
}
