package vertica

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"tweet_sentiment/internal/domain"
)

type ImportStateStore struct {
	db *sqlx.DB
}

func NewImportStateStore(db *sqlx.DB) *ImportStateStore {
	return &ImportStateStore{db: db}
}

func (s *ImportStateStore) Get(ctx context.Context, source string) (*domain.ImportState, error) {
	var state domain.ImportState
	query := `
		SELECT source, last_imported_at, last_tweet_id, total_imported
		FROM import_state
		WHERE source = ?`

	err := s.db.GetContext(ctx, &state, s.db.Rebind(query), source)
	if err == sql.ErrNoRows {
		// Return empty state for new sources
		return &domain.ImportState{Source: source}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Update writes state, inserting the row the first time a source is seen.
// Vertica has no ON CONFLICT, so this is an UPDATE followed by an INSERT
// when nothing matched.
func (s *ImportStateStore) Update(ctx context.Context, state *domain.ImportState) error {
	exec := GetExecutor(ctx, s.db)

	res, err := exec.ExecContext(ctx, exec.Rebind(`
		UPDATE import_state
		SET last_imported_at = ?, last_tweet_id = ?, total_imported = ?
		WHERE source = ?`),
		state.LastImportedAt,
		state.LastTweetID,
		state.TotalImported,
		state.Source,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil || n > 0 {
		return err
	}

	_, err = exec.ExecContext(ctx, exec.Rebind(`
		INSERT INTO import_state (source, last_imported_at, last_tweet_id, total_imported)
		VALUES (?, ?, ?, ?)`),
		state.Source,
		state.LastImportedAt,
		state.LastTweetID,
		state.TotalImported,
	)
	return err
}
