package vertica

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"tweet_sentiment/internal/domain"
)

// ReportStore runs the grouped counting queries behind totals and histograms.
type ReportStore struct {
	db *sqlx.DB
}

func NewReportStore(db *sqlx.DB) *ReportStore {
	return &ReportStore{db: db}
}

func (s *ReportStore) LabelTotals(ctx context.Context, begin, end time.Time) ([]domain.LabelCount, error) {
	query := `
		SELECT aggregate_sentiment AS label, COUNT(*) AS total
		FROM tweets
		WHERE aggregate_sentiment IS NOT NULL
		  AND created_at >= ? AND created_at < ?
		GROUP BY aggregate_sentiment
		ORDER BY label`

	return s.selectCounts(ctx, query, begin, end)
}

func (s *ReportStore) TopicTotals(ctx context.Context, begin, end time.Time) ([]domain.LabelCount, error) {
	query := `
		SELECT s.topic AS label, COUNT(DISTINCT s.tweet_id) AS total
		FROM sentiments s
		INNER JOIN tweets t ON t.id = s.tweet_id
		WHERE s.topic IS NOT NULL
		  AND t.created_at >= ? AND t.created_at < ?
		GROUP BY s.topic
		ORDER BY total DESC, label`

	return s.selectCounts(ctx, query, begin, end)
}

// LabelCountsByMinute counts labelled tweets per minute and label.
func (s *ReportStore) LabelCountsByMinute(ctx context.Context, begin, end time.Time) ([]domain.HistogramPoint, error) {
	query := `
		SELECT DATE_TRUNC('minute', created_at) AS bucket, aggregate_sentiment AS label, COUNT(*) AS total
		FROM tweets
		WHERE aggregate_sentiment IS NOT NULL
		  AND created_at >= ? AND created_at < ?
		GROUP BY 1, 2
		ORDER BY 1, 2`

	return s.selectPoints(ctx, query, begin, end)
}

// TopicCountsByMinute counts annotated tweets per minute and topic.
func (s *ReportStore) TopicCountsByMinute(ctx context.Context, begin, end time.Time) ([]domain.HistogramPoint, error) {
	query := `
		SELECT DATE_TRUNC('minute', t.created_at) AS bucket, s.topic AS label, COUNT(DISTINCT s.tweet_id) AS total
		FROM sentiments s
		INNER JOIN tweets t ON t.id = s.tweet_id
		WHERE s.topic IS NOT NULL
		  AND t.created_at >= ? AND t.created_at < ?
		GROUP BY 1, 2
		ORDER BY 1, 2`

	return s.selectPoints(ctx, query, begin, end)
}

func (s *ReportStore) selectCounts(ctx context.Context, query string, begin, end time.Time) ([]domain.LabelCount, error) {
	var counts []domain.LabelCount
	err := s.db.SelectContext(ctx, &counts, s.db.Rebind(query), begin, end)
	return counts, err
}

func (s *ReportStore) selectPoints(ctx context.Context, query string, begin, end time.Time) ([]domain.HistogramPoint, error) {
	var points []domain.HistogramPoint
	err := s.db.SelectContext(ctx, &points, s.db.Rebind(query), begin, end)
	return points, err
}
