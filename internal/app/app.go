package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/boxstudy/internal/adapter/content"
	"github.com/heartmarshall/boxstudy/internal/adapter/memkv"
	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb"
	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb/event"
	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb/kv"
	reviewrepo "github.com/heartmarshall/boxstudy/internal/adapter/sqldb/review"
	"github.com/heartmarshall/boxstudy/internal/adapter/sqldb/word"
	"github.com/heartmarshall/boxstudy/internal/config"
	"github.com/heartmarshall/boxstudy/internal/domain"
	"github.com/heartmarshall/boxstudy/internal/service/answer"
	"github.com/heartmarshall/boxstudy/internal/service/review"
	"github.com/heartmarshall/boxstudy/internal/service/session"
	"github.com/heartmarshall/boxstudy/internal/service/snapshot"
)

// App holds the wired engine.
type App struct {
	DB        *sqldb.DB
	Content   *content.Loader
	Reviews   *review.Service
	Snapshots *snapshot.Store
	Session   *session.Orchestrator

	log *slog.Logger
}

// New opens the store, applies pending migrations and wires the services.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) (*App, error) {
	db, err := sqldb.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	applied, err := sqldb.Migrate(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	if applied > 0 {
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	a, err := Wire(cfg, logger, db, clock)
	if err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

// Wire builds the services on an open database.
func Wire(cfg *config.Config, logger *slog.Logger, db *sqldb.DB, clock clockwork.Clock) (*App, error) {
	loader := content.NewLoader(word.New(db))

	stages, err := review.NewStageTable(cfg.SRS.StageIntervals)
	if err != nil {
		return nil, fmt.Errorf("stage table: %w", err)
	}
	reviews, err := review.NewService(logger, reviewrepo.New(db), loader, sqldb.NewTxManager(db), stages, cfg.SRS.DemotionFloor, clock)
	if err != nil {
		return nil, err
	}

	var store interface {
		Get(ctx context.Context, key string) ([]byte, bool, error)
		Set(ctx context.Context, key string, value []byte) error
		Remove(ctx context.Context, key string) error
		Keys(ctx context.Context, prefix string) ([]string, error)
	}
	switch cfg.Storage.Driver {
	case "memory":
		store = memkv.New()
	default:
		store = kv.New(db)
	}

	snaps := snapshot.NewStore(logger, store, clock, snapshot.Options{
		Delay:           cfg.Boxes.SaveDelay,
		Namespace:       cfg.Boxes.Namespace,
		CustomNamespace: cfg.Boxes.CustomNamespace,
	})

	reversed := make([]domain.Box, 0, len(cfg.Boxes.ReversedBoxes))
	for _, name := range cfg.Boxes.ReversedBoxes {
		b, err := domain.ParseBox(name)
		if err != nil {
			return nil, err
		}
		reversed = append(reversed, b)
	}

	orchestrator := session.NewOrchestrator(
		logger,
		loader,
		reviews,
		snaps,
		event.New(db),
		answer.Checker{
			TypoTolerance:    cfg.Answer.TypoTolerance,
			IgnoreDiacritics: cfg.Answer.IgnoreDiacritics,
		},
		clock,
		session.Config{
			BatchSize:       cfg.Boxes.BatchSize,
			DueBatchSize:    cfg.Session.DueBatchSize,
			IntroLimit:      cfg.Boxes.IntroLimit,
			StrictIntegrity: cfg.Boxes.StrictIntegrity,
			ReversedBoxes:   reversed,
			FlushMin:        cfg.Boxes.FlushThresholdMin,
			FlushMax:        cfg.Boxes.FlushThresholdMax,
			StackTarget:     cfg.Boxes.StackTarget,
		},
	)

	return &App{
		DB:        db,
		Content:   loader,
		Reviews:   reviews,
		Snapshots: snaps,
		Session:   orchestrator,
		log:       logger,
	}, nil
}

// DefaultCourse is the course setup used when a course has no overrides.
func DefaultCourse(cfg *config.Config) session.CourseSettings {
	return session.CourseSettings{IntroEnabled: cfg.Boxes.IntroEnabled, ReviewsEnabled: true}
}

// Close leaves the active scope, flushes pending snapshots and closes the
// database.
func (a *App) Close(ctx context.Context) error {
	a.Session.Leave(ctx)
	flushErr := a.Snapshots.Close(ctx)
	if flushErr != nil {
		a.log.Error("flush snapshots on shutdown", slog.String("error", flushErr.Error()))
	}
	return errors.Join(flushErr, a.DB.Close())
}
