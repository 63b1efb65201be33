package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"tweet_sentiment/internal/config"
	"tweet_sentiment/internal/domain"
	"tweet_sentiment/internal/record"
)

const maxLineSize = 1 << 20

// IngestService parses delimited lines and inserts them one row at a time.
type IngestService struct {
	tweets     TweetStore
	sentiments SentimentStore
	txManager  TransactionManager
	publisher  Publisher
	logger     *slog.Logger
	config     config.IngestConfig
}

func NewIngestService(
	tweets TweetStore,
	sentiments SentimentStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.IngestConfig,
) *IngestService {
	return &IngestService{
		tweets:     tweets,
		sentiments: sentiments,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger.With("component", "ingest"),
		config:     cfg,
	}
}

// InsertTweetRecord parses line and inserts the tweet, returning the number
// of affected rows. An empty sep falls back to the configured separator.
func (s *IngestService) InsertTweetRecord(ctx context.Context, line, sep string) (int64, error) {
	tweet, err := record.ParseTweet(line, s.separator(sep))
	if err != nil {
		return 0, fmt.Errorf("parse tweet: %w", err)
	}

	n, _, err := s.insertTweet(ctx, tweet)
	return n, err
}

// InsertSentimentRecord parses line and inserts the annotation. Empty sep and
// nullToken fall back to the configured values.
func (s *IngestService) InsertSentimentRecord(ctx context.Context, line, sep, nullToken string) (int64, error) {
	sentiment, err := record.ParseSentiment(line, s.separator(sep), s.nullToken(nullToken))
	if err != nil {
		return 0, fmt.Errorf("parse sentiment: %w", err)
	}

	n, _, err := s.insertSentiment(ctx, sentiment)
	return n, err
}

// Load inserts every non-blank line read from r. Lines that fail to parse or
// insert are counted and skipped; reading errors and cancellation stop the load.
func (s *IngestService) Load(ctx context.Context, kind domain.RecordKind, source string, r io.Reader, sep, nullToken string) (*domain.ImportStats, error) {
	if kind != domain.KindTweet && kind != domain.KindSentiment {
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}

	startTime := time.Now()
	sep = s.separator(sep)
	nullToken = s.nullToken(nullToken)
	logger := s.logger.With("source", source, "kind", kind)

	stats := &domain.ImportStats{Source: source, Kind: kind}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(startTime)
			return stats, err
		}

		stats.Lines++
		tweetID, published, err := s.loadLine(ctx, kind, line, sep, nullToken)
		if err != nil {
			stats.Failed++
			logger.Warn("skipping line", "line", lineNo, "error", err)
			continue
		}

		stats.Inserted++
		stats.LastTweetID = tweetID
		if published {
			stats.Published++
		}
	}

	stats.Duration = time.Since(startTime)

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read %s: %w", source, err)
	}

	logger.Info("load completed",
		"lines", stats.Lines,
		"inserted", stats.Inserted,
		"failed", stats.Failed,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *IngestService) loadLine(ctx context.Context, kind domain.RecordKind, line, sep, nullToken string) (int64, bool, error) {
	if kind == domain.KindTweet {
		tweet, err := record.ParseTweet(line, sep)
		if err != nil {
			return 0, false, err
		}
		_, published, err := s.insertTweet(ctx, tweet)
		return tweet.ID, published, err
	}

	sentiment, err := record.ParseSentiment(line, sep, nullToken)
	if err != nil {
		return 0, false, err
	}
	_, published, err := s.insertSentiment(ctx, sentiment)
	return sentiment.TweetID, published, err
}

func (s *IngestService) insertTweet(ctx context.Context, tweet *domain.Tweet) (int64, bool, error) {
	var affected int64
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		n, err := s.tweets.Insert(txCtx, tweet)
		affected = n
		return err
	})
	if err != nil {
		return 0, false, fmt.Errorf("insert tweet %d: %w", tweet.ID, err)
	}

	published := false
	if s.publisher != nil {
		if err := s.publisher.PublishTweet(ctx, tweet); err != nil {
			s.logger.Warn("failed to publish tweet", "tweet_id", tweet.ID, "error", err)
		} else {
			published = true
		}
	}

	return affected, published, nil
}

func (s *IngestService) insertSentiment(ctx context.Context, sentiment *domain.Sentiment) (int64, bool, error) {
	var affected int64
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		n, err := s.sentiments.Insert(txCtx, sentiment)
		affected = n
		return err
	})
	if err != nil {
		return 0, false, fmt.Errorf("insert sentiment for tweet %d: %w", sentiment.TweetID, err)
	}

	published := false
	if s.publisher != nil {
		if err := s.publisher.PublishSentiment(ctx, sentiment); err != nil {
			s.logger.Warn("failed to publish sentiment", "tweet_id", sentiment.TweetID, "error", err)
		} else {
			published = true
		}
	}

	return affected, published, nil
}

func (s *IngestService) separator(sep string) string {
	if sep != "" {
		return sep
	}
	if s.config.Separator != "" {
		return s.config.Separator
	}
	return record.DefaultSeparator
}

func (s *IngestService) nullToken(token string) string {
	if token != "" {
		return token
	}
	return s.config.NullToken
}
