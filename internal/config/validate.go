package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

var boxNames = []string{"boxZero", "boxOne", "boxTwo", "boxThree", "boxFour", "boxFive"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite3", "pgx":
	default:
		return fmt.Errorf("database.driver must be sqlite3 or pgx (got %q)", c.Database.Driver)
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	switch c.Storage.Driver {
	case "sql", "memory":
	default:
		return fmt.Errorf("storage.driver must be sql or memory (got %q)", c.Storage.Driver)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}
	if err := c.Boxes.validate(); err != nil {
		return fmt.Errorf("boxes: %w", err)
	}

	if c.Session.DueBatchSize <= 0 {
		return fmt.Errorf("session.due_batch_size must be > 0 (got %d)", c.Session.DueBatchSize)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	intervals, err := ParseDurations(s.StageIntervalsRaw)
	if err != nil {
		return fmt.Errorf("stage_intervals: %w", err)
	}
	if len(intervals) == 0 {
		return fmt.Errorf("stage_intervals must not be empty")
	}
	for i, d := range intervals {
		if d < 0 {
			return fmt.Errorf("stage_intervals[%d] must be >= 0 (got %s)", i, d)
		}
		if i > 0 && d < intervals[i-1] {
			return fmt.Errorf("stage_intervals must be non-decreasing (%s after %s)", d, intervals[i-1])
		}
	}
	s.StageIntervals = intervals

	maxStage := len(intervals) - 1
	if s.DemotionFloor < 0 || s.DemotionFloor > maxStage {
		return fmt.Errorf("demotion_floor must be in [0, %d] (got %d)", maxStage, s.DemotionFloor)
	}

	return nil
}

func (b *BoxesConfig) validate() error {
	if b.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", b.BatchSize)
	}
	if b.IntroLimit <= 0 {
		return fmt.Errorf("intro_limit must be > 0 (got %d)", b.IntroLimit)
	}
	if b.SaveDelay < 0 {
		return fmt.Errorf("save_delay must be >= 0 (got %s)", b.SaveDelay)
	}
	if b.Namespace == "" || b.CustomNamespace == "" || b.Namespace == b.CustomNamespace {
		return fmt.Errorf("namespace and custom_namespace must be distinct and non-empty")
	}
	if strings.Contains(b.Namespace, ":") || strings.Contains(b.CustomNamespace, ":") {
		return fmt.Errorf("namespaces must not contain ':'")
	}
	if b.FlushThresholdMin <= 0 || b.FlushThresholdMax < b.FlushThresholdMin {
		return fmt.Errorf("flush thresholds must satisfy 0 < min <= max (got %d, %d)", b.FlushThresholdMin, b.FlushThresholdMax)
	}
	if b.StackTarget < 0 {
		return fmt.Errorf("stack_target must be >= 0 (got %d)", b.StackTarget)
	}

	reversed := ParseList(b.ReversedBoxesRaw)
	for _, name := range reversed {
		if !slices.Contains(boxNames, name) {
			return fmt.Errorf("reversed_boxes: unknown box %q", name)
		}
	}
	b.ReversedBoxes = reversed

	return nil
}

// ParseDurations parses a comma-separated string of durations (e.g. "1m,10m")
// into a slice of time.Duration. An empty string returns a nil slice.
func ParseDurations(raw string) ([]time.Duration, error) {
	parts := ParseList(raw)
	if len(parts) == 0 {
		return nil, nil
	}

	out := make([]time.Duration, 0, len(parts))
	for _, p := range parts {
		d, err := time.ParseDuration(p)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		out = append(out, d)
	}

	return out, nil
}

// ParseList splits a comma-separated string, trimming blanks.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
