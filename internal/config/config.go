package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
	SRS      SRSConfig      `yaml:"srs"`
	Boxes    BoxesConfig    `yaml:"boxes"`
	Session  SessionConfig  `yaml:"session"`
	Answer   AnswerConfig   `yaml:"answer"`
}

// DatabaseConfig holds the embedded relational store settings.
// Driver is "sqlite3" (default, embedded file) or "pgx" (PostgreSQL).
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"sqlite3"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-default:"file:boxstudy.db?_foreign_keys=on&_busy_timeout=5000"`
	MaxOpenConns    int           `yaml:"max_open_conns"     env:"DATABASE_MAX_OPEN_CONNS"     env-default:"10"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
}

// StorageConfig selects the key-value store backing box snapshots.
// "sql" keeps snapshots in the database, "memory" keeps them in process.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sql"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SRSConfig holds the long-term stage scheduler parameters.
type SRSConfig struct {
	StageIntervalsRaw string `yaml:"stage_intervals" env:"SRS_STAGE_INTERVALS" env-default:"48h,168h,720h,2160h,4320h,8760h"`
	DemotionFloor     int    `yaml:"demotion_floor"  env:"SRS_DEMOTION_FLOOR"  env-default:"1"`

	// StageIntervals is parsed from StageIntervalsRaw during validation.
	StageIntervals []time.Duration `yaml:"-" env:"-"`
}

// BoxesConfig holds Leitner box and snapshot parameters.
type BoxesConfig struct {
	BatchSize         int           `yaml:"batch_size"           env:"BOXES_BATCH_SIZE"           env-default:"10"`
	IntroEnabled      bool          `yaml:"intro_enabled"        env:"BOXES_INTRO_ENABLED"        env-default:"true"`
	IntroLimit        int           `yaml:"intro_limit"          env:"BOXES_INTRO_LIMIT"          env-default:"30"`
	StrictIntegrity   bool          `yaml:"strict_integrity"     env:"BOXES_STRICT_INTEGRITY"     env-default:"false"`
	SaveDelay         time.Duration `yaml:"save_delay"           env:"BOXES_SAVE_DELAY"           env-default:"500ms"`
	Namespace         string        `yaml:"namespace"            env:"BOXES_NAMESPACE"            env-default:"boxes"`
	CustomNamespace   string        `yaml:"custom_namespace"     env:"BOXES_CUSTOM_NAMESPACE"     env-default:"customBoxes"`
	ReversedBoxesRaw  string        `yaml:"reversed_boxes"       env:"BOXES_REVERSED"             env-default:"boxTwo,boxFour"`
	FlushThresholdMin int           `yaml:"flush_threshold_min"  env:"BOXES_FLUSH_THRESHOLD_MIN"  env-default:"12"`
	FlushThresholdMax int           `yaml:"flush_threshold_max"  env:"BOXES_FLUSH_THRESHOLD_MAX"  env-default:"20"`
	StackTarget       int           `yaml:"stack_target"         env:"BOXES_STACK_TARGET"         env-default:"5"`

	// ReversedBoxes is parsed from ReversedBoxesRaw during validation.
	ReversedBoxes []string `yaml:"-" env:"-"`
}

// SessionConfig holds review session parameters.
type SessionConfig struct {
	DueBatchSize int `yaml:"due_batch_size" env:"SESSION_DUE_BATCH_SIZE" env-default:"5"`
}

// AnswerConfig holds typed-answer matching rules.
type AnswerConfig struct {
	TypoTolerance    bool `yaml:"typo_tolerance"    env:"ANSWER_TYPO_TOLERANCE"    env-default:"true"`
	IgnoreDiacritics bool `yaml:"ignore_diacritics" env:"ANSWER_IGNORE_DIACRITICS" env-default:"false"`
}
