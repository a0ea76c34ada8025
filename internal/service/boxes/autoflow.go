package boxes

import (
	"math"

	"github.com/heartmarshall/boxstudy/internal/domain"
)

// Reason explains an autoflow decision.
type Reason string

const (
	ReasonIntro   Reason = "intro"
	ReasonCleanup Reason = "cleanup"
	ReasonFlush   Reason = "flush"
	ReasonLearn   Reason = "learn"
	ReasonRefill  Reason = "refill"
	ReasonDone    Reason = "done"
)

// FlowOptions are the autoflow inputs that do not live in the box state.
type FlowOptions struct {
	PoolSize    int
	FlushMin    int
	FlushMax    int
	StackTarget int
	Intake      domain.Box
	CanRefill   bool
}

// Decision is the next box to practise and whether a refill should run
// first. Box is empty when the scope has nothing left to do.
type Decision struct {
	Box    domain.Box
	Refill bool
	Reason Reason
}

// FlushThreshold is the box size that forces a flush: a tenth of the pool,
// clamped to [lo, hi].
func FlushThreshold(poolSize, lo, hi int) int {
	if poolSize <= 0 {
		return hi
	}
	t := int(math.Ceil(float64(poolSize) / 10))
	return min(max(t, lo), hi)
}

// Decide picks the next box with backpressure:
//
//  1. the intro box is drained first;
//  2. a cleanup box being worked on is finished;
//  3. once boxTwo is full, the highest full box whose successor still has
//     room is flushed;
//  4. boxOne is practised, refilling when its stack runs low;
//  5. any remaining cleanup box is drained before a final refill.
func Decide(state *domain.BoxState, active domain.Box, opts FlowOptions) Decision {
	if state.Len(domain.BoxZero) > 0 {
		return Decision{Box: domain.BoxZero, Reason: ReasonIntro}
	}

	if active.IsValid() && active.IsCleanup() && state.Len(active) > 0 {
		return Decision{Box: active, Reason: ReasonCleanup}
	}

	threshold := FlushThreshold(opts.PoolSize, opts.FlushMin, opts.FlushMax)
	if state.Len(domain.BoxTwo) >= threshold {
		for i := len(domain.AllBoxes) - 1; i >= domain.BoxTwo.Index(); i-- {
			b := domain.AllBoxes[i]
			if state.Len(b) < threshold {
				continue
			}
			next, ok := b.Promote()
			if !ok || state.Len(next) < threshold {
				return Decision{Box: b, Reason: ReasonFlush}
			}
		}
	}

	if n := state.Len(domain.BoxOne); n > 0 {
		return Decision{
			Box:    domain.BoxOne,
			Refill: opts.CanRefill && n <= opts.StackTarget,
			Reason: ReasonLearn,
		}
	}

	for _, b := range domain.AllBoxes[domain.BoxTwo.Index():] {
		if state.Len(b) > 0 {
			return Decision{Box: b, Reason: ReasonCleanup}
		}
	}

	if opts.CanRefill {
		intake := opts.Intake
		if !intake.IsValid() {
			intake = domain.BoxOne
		}
		return Decision{Box: intake, Refill: true, Reason: ReasonRefill}
	}
	return Decision{Reason: ReasonDone}
}
