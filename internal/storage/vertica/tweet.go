package vertica

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"tweet_sentiment/internal/domain"
)

const tweetColumns = `id, message, lang, created_at, aggregate_sentiment, aggregate_score`

type TweetStore struct {
	db *sqlx.DB
}

func NewTweetStore(db *sqlx.DB) *TweetStore {
	return &TweetStore{db: db}
}

func (s *TweetStore) DateRange(ctx context.Context) (*domain.DateRange, error) {
	var first, last sql.NullTime
	err := s.db.QueryRowContext(ctx,
		"SELECT MIN(created_at), MAX(created_at) FROM tweets",
	).Scan(&first, &last)
	if err != nil {
		return nil, err
	}

	return &domain.DateRange{Begin: first.Time, End: last.Time}, nil
}

func (s *TweetStore) TweetsWithLabel(ctx context.Context, label string, begin, end time.Time) ([]domain.Tweet, error) {
	query := `
		SELECT ` + tweetColumns + `
		FROM tweets
		WHERE aggregate_sentiment = ?
		  AND created_at >= ? AND created_at < ?
		ORDER BY created_at, id`

	var tweets []domain.Tweet
	err := s.db.SelectContext(ctx, &tweets, s.db.Rebind(query), label, begin, end)
	return tweets, err
}

func (s *TweetStore) TweetsInRange(ctx context.Context, begin, end time.Time) ([]domain.Tweet, error) {
	query := `
		SELECT ` + tweetColumns + `
		FROM tweets
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at, id`

	var tweets []domain.Tweet
	err := s.db.SelectContext(ctx, &tweets, s.db.Rebind(query), begin, end)
	return tweets, err
}

// Insert adds one tweet and returns the number of affected rows.
func (s *TweetStore) Insert(ctx context.Context, tweet *domain.Tweet) (int64, error) {
	exec := GetExecutor(ctx, s.db)
	query := `
		INSERT INTO tweets (` + tweetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)`

	res, err := exec.ExecContext(ctx, exec.Rebind(query),
		tweet.ID,
		tweet.Message,
		tweet.Lang,
		tweet.CreatedAt,
		tweet.Label,
		tweet.Score,
	)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
