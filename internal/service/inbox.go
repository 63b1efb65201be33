package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"tweet_sentiment/internal/config"
	"tweet_sentiment/internal/domain"
)

// InboxSource is the import_state key for files picked up from the inbox.
const InboxSource = "inbox"

var inboxSuffixes = map[string]domain.RecordKind{
	".tweets":     domain.KindTweet,
	".sentiments": domain.KindSentiment,
}

// InboxService loads delimited files dropped into a directory and moves
// them aside once loaded.
type InboxService struct {
	loader Loader
	state  ImportStateStore
	logger *slog.Logger
	config config.IngestConfig
}

func NewInboxService(loader Loader, state ImportStateStore, logger *slog.Logger, cfg config.IngestConfig) *InboxService {
	return &InboxService{
		loader: loader,
		state:  state,
		logger: logger.With("component", "inbox", "dir", cfg.InboxDir),
		config: cfg,
	}
}

type inboxFile struct {
	path string
	kind domain.RecordKind
}

// Import loads every pending file. Tweet files go before sentiment files so
// annotations find the tweets they reference. A file that fails to load is
// moved to the failed directory and the remaining files are still imported.
func (s *InboxService) Import(ctx context.Context) ([]domain.ImportStats, error) {
	files, err := s.pending()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		s.logger.Debug("inbox empty")
		return nil, nil
	}

	for _, dir := range []string{s.config.DoneDir, s.config.FailedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	var (
		results []domain.ImportStats
		errs    []error
	)
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		stats, err := s.importFile(ctx, f)
		if err != nil {
			errs = append(errs, err)
		}
		if stats == nil {
			continue
		}
		results = append(results, *stats)

		if err := s.updateState(ctx, stats); err != nil {
			return results, errors.Join(append(errs, fmt.Errorf("update import state: %w", err))...)
		}
	}

	return results, errors.Join(errs...)
}

func (s *InboxService) pending() ([]inboxFile, error) {
	entries, err := os.ReadDir(s.config.InboxDir)
	if err != nil {
		return nil, fmt.Errorf("read inbox: %w", err)
	}

	var files []inboxFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		kind, ok := inboxSuffixes[filepath.Ext(e.Name())]
		if !ok {
			continue
		}
		files = append(files, inboxFile{path: filepath.Join(s.config.InboxDir, e.Name()), kind: kind})
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].kind != files[j].kind {
			return files[i].kind == domain.KindTweet
		}
		return files[i].path < files[j].path
	})

	return files, nil
}

func (s *InboxService) importFile(ctx context.Context, f inboxFile) (*domain.ImportStats, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.path, err)
	}

	name := filepath.Base(f.path)
	stats, loadErr := s.loader.Load(ctx, f.kind, name, fh, s.config.Separator, s.config.NullToken)
	fh.Close()

	if loadErr != nil {
		// Lines read before the failure are already committed.
		if err := s.quarantine(name, loadErr); err != nil {
			return stats, errors.Join(fmt.Errorf("load %s: %w", name, loadErr), err)
		}
		s.logger.Error("file failed, moved to failed dir",
			"file", name,
			"kind", f.kind,
			"dir", s.config.FailedDir,
			"error", loadErr,
		)
		return stats, fmt.Errorf("load %s: %w", name, loadErr)
	}

	if err := os.Rename(f.path, filepath.Join(s.config.DoneDir, name)); err != nil {
		return stats, fmt.Errorf("move %s to done: %w", name, err)
	}

	s.logger.Info("imported file",
		"file", name,
		"kind", f.kind,
		"inserted", stats.Inserted,
		"failed", stats.Failed,
	)

	return stats, nil
}

// quarantine moves a file out of the inbox into the failed directory and
// writes the load error next to it as <name>.error.
func (s *InboxService) quarantine(name string, loadErr error) error {
	target := filepath.Join(s.config.FailedDir, name)
	if err := os.Rename(filepath.Join(s.config.InboxDir, name), target); err != nil {
		return fmt.Errorf("move %s to failed: %w", name, err)
	}
	if err := os.WriteFile(target+".error", []byte(loadErr.Error()+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s error: %w", name, err)
	}
	return nil
}

func (s *InboxService) updateState(ctx context.Context, stats *domain.ImportStats) error {
	state, err := s.state.Get(ctx, InboxSource)
	if err != nil {
		return err
	}

	state.Source = InboxSource
	state.LastImportedAt = time.Now().UTC()
	if stats.Kind == domain.KindTweet && stats.LastTweetID != 0 {
		state.LastTweetID = stats.LastTweetID
	}
	state.TotalImported += int64(stats.Inserted)

	return s.state.Update(ctx, state)
}
