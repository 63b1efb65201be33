package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"
	"time"

	"tweet_sentiment/internal/domain"
)

type TweetStore interface {
	DateRange(ctx context.Context) (*domain.DateRange, error)
	TweetsWithLabel(ctx context.Context, label string, begin, end time.Time) ([]domain.Tweet, error)
	TweetsInRange(ctx context.Context, begin, end time.Time) ([]domain.Tweet, error)
	Insert(ctx context.Context, tweet *domain.Tweet) (int64, error)
}

type SentimentStore interface {
	Insert(ctx context.Context, sentiment *domain.Sentiment) (int64, error)
	TweetsWithTopic(ctx context.Context, topic string, begin, end time.Time) ([]domain.Tweet, error)
}

type ReportStore interface {
	LabelTotals(ctx context.Context, begin, end time.Time) ([]domain.LabelCount, error)
	TopicTotals(ctx context.Context, begin, end time.Time) ([]domain.LabelCount, error)
	LabelCountsByMinute(ctx context.Context, begin, end time.Time) ([]domain.HistogramPoint, error)
	TopicCountsByMinute(ctx context.Context, begin, end time.Time) ([]domain.HistogramPoint, error)
}

type ImportStateStore interface {
	Get(ctx context.Context, source string) (*domain.ImportState, error)
	Update(ctx context.Context, state *domain.ImportState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishTweet(ctx context.Context, tweet *domain.Tweet) error
	PublishSentiment(ctx context.Context, sentiment *domain.Sentiment) error
	Close() error
}

type Loader interface {
	Load(ctx context.Context, kind domain.RecordKind, source string, r io.Reader, sep, nullToken string) (*domain.ImportStats, error)
}
