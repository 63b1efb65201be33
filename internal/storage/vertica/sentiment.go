package vertica

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"tweet_sentiment/internal/domain"
)

type SentimentStore struct {
	db *sqlx.DB
}

func NewSentimentStore(db *sqlx.DB) *SentimentStore {
	return &SentimentStore{db: db}
}

// Insert adds one annotation and returns the number of affected rows.
func (s *SentimentStore) Insert(ctx context.Context, sentiment *domain.Sentiment) (int64, error) {
	exec := GetExecutor(ctx, s.db)
	query := `
		INSERT INTO sentiments (tweet_id, sentiment, topic, score)
		VALUES (?, ?, ?, ?)`

	res, err := exec.ExecContext(ctx, exec.Rebind(query),
		sentiment.TweetID,
		sentiment.Sentiment,
		sentiment.Topic,
		sentiment.Score,
	)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// TweetsWithTopic returns the tweets annotated with topic, each tweet once.
func (s *SentimentStore) TweetsWithTopic(ctx context.Context, topic string, begin, end time.Time) ([]domain.Tweet, error) {
	query := `
		SELECT DISTINCT t.id, t.message, t.lang, t.created_at, t.aggregate_sentiment, t.aggregate_score
		FROM tweets t
		INNER JOIN sentiments s ON s.tweet_id = t.id
		WHERE s.topic = ?
		  AND t.created_at >= ? AND t.created_at < ?
		ORDER BY t.created_at, t.id`

	var tweets []domain.Tweet
	err := s.db.SelectContext(ctx, &tweets, s.db.Rebind(query), topic, begin, end)
	return tweets, err
}
