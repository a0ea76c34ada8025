package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is a CEFR proficiency level of builtin content.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// AllLevels lists CEFR levels in ascending order.
var AllLevels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

// ScopeKind distinguishes builtin language-pair content from user courses.
type ScopeKind string

const (
	ScopeBuiltin ScopeKind = "lang"
	ScopeCustom  ScopeKind = "course"
)

func (k ScopeKind) String() string { return string(k) }

func (k ScopeKind) IsValid() bool {
	return k == ScopeBuiltin || k == ScopeCustom
}

// Scope identifies the content set all per-scope state is keyed by.
// Builtin scopes are (source, target, level); custom scopes are a course id.
type Scope struct {
	Kind         ScopeKind
	SourceLangID int64
	TargetLangID int64
	Level        Level
	CourseID     int64
}

// BuiltinScope returns a scope for a language pair at a CEFR level.
func BuiltinScope(src, tgt int64, level Level) Scope {
	return Scope{Kind: ScopeBuiltin, SourceLangID: src, TargetLangID: tgt, Level: level}
}

// CustomScope returns a scope for a user-created course.
func CustomScope(courseID int64) Scope {
	return Scope{Kind: ScopeCustom, CourseID: courseID}
}

// Validate reports ErrInvalidScope for incomplete or mixed scopes.
func (s Scope) Validate() error {
	switch s.Kind {
	case ScopeBuiltin:
		if s.SourceLangID <= 0 || s.TargetLangID <= 0 {
			return fmt.Errorf("%w: language ids must be positive", ErrInvalidScope)
		}
		if !s.Level.IsValid() {
			return fmt.Errorf("%w: level %q", ErrInvalidScope, s.Level)
		}
		if s.CourseID != 0 {
			return fmt.Errorf("%w: builtin scope with course id", ErrInvalidScope)
		}
	case ScopeCustom:
		if s.CourseID <= 0 {
			return fmt.Errorf("%w: course id must be positive", ErrInvalidScope)
		}
		if s.SourceLangID != 0 || s.TargetLangID != 0 || s.Level != "" {
			return fmt.Errorf("%w: custom scope with language fields", ErrInvalidScope)
		}
	default:
		return fmt.Errorf("%w: kind %q", ErrInvalidScope, s.Kind)
	}
	return nil
}

// Prefix is the key of the scope's group: all levels of a language pair,
// or the course itself.
func (s Scope) Prefix() string {
	if s.Kind == ScopeCustom {
		return fmt.Sprintf("%s:%d", ScopeCustom, s.CourseID)
	}
	return fmt.Sprintf("%s:%d-%d", ScopeBuiltin, s.SourceLangID, s.TargetLangID)
}

// Key is the canonical, collision-free string form of the scope.
func (s Scope) Key() string {
	if s.Kind == ScopeCustom {
		return s.Prefix()
	}
	return s.Prefix() + ":" + string(s.Level)
}

func (s Scope) String() string { return s.Key() }

// LevelLabel is the level stored alongside review rows. Custom scopes use
// "custom-<id>" so they never collide with CEFR buckets.
func (s Scope) LevelLabel() string {
	if s.Kind == ScopeCustom {
		return "custom-" + strconv.FormatInt(s.CourseID, 10)
	}
	return string(s.Level)
}

// ParseScope parses a key produced by Scope.Key.
func ParseScope(key string) (Scope, error) {
	parts := strings.Split(key, ":")
	switch {
	case len(parts) == 2 && parts[0] == string(ScopeCustom):
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return Scope{}, fmt.Errorf("%w: %q", ErrInvalidScope, key)
		}
		s := CustomScope(id)
		return s, s.Validate()
	case len(parts) == 3 && parts[0] == string(ScopeBuiltin):
		src, tgt, err := parsePair(parts[1])
		if err != nil {
			return Scope{}, fmt.Errorf("%w: %q", ErrInvalidScope, key)
		}
		s := BuiltinScope(src, tgt, Level(parts[2]))
		return s, s.Validate()
	}
	return Scope{}, fmt.Errorf("%w: %q", ErrInvalidScope, key)
}

// ValidatePrefix checks a group prefix produced by Scope.Prefix.
func ValidatePrefix(prefix string) (ScopeKind, error) {
	parts := strings.Split(prefix, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: prefix %q", ErrInvalidScope, prefix)
	}
	switch ScopeKind(parts[0]) {
	case ScopeCustom:
		if id, err := strconv.ParseInt(parts[1], 10, 64); err != nil || id <= 0 {
			return "", fmt.Errorf("%w: prefix %q", ErrInvalidScope, prefix)
		}
		return ScopeCustom, nil
	case ScopeBuiltin:
		if src, tgt, err := parsePair(parts[1]); err != nil || src <= 0 || tgt <= 0 {
			return "", fmt.Errorf("%w: prefix %q", ErrInvalidScope, prefix)
		}
		return ScopeBuiltin, nil
	}
	return "", fmt.Errorf("%w: prefix %q", ErrInvalidScope, prefix)
}

func parsePair(s string) (int64, int64, error) {
	a, b, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("missing separator")
	}
	src, err := strconv.ParseInt(a, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	tgt, err := strconv.ParseInt(b, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return src, tgt, nil
}
