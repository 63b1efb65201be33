package scheduler

import (
	"context"
	"log/slog"
	"time"

	"tweet_sentiment/internal/domain"
)

// Importer defines the interface for a single import pass.
type Importer interface {
	Import(ctx context.Context) ([]domain.ImportStats, error)
}

type Scheduler struct {
	importer   Importer
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(importer Importer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		importer:   importer,
		interval:   interval,
		runTimeout: 5 * time.Minute,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runImport(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runImport(ctx)
		}
	}
}

func (s *Scheduler) runImport(ctx context.Context) {
	importCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	stats, err := s.importer.Import(importCtx)
	if err != nil {
		s.logger.Error("import failed", "error", err)
		return
	}
	if len(stats) > 0 {
		s.logger.Info("import finished", "files", len(stats))
	}
}
