package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"tweet_sentiment/internal/domain"
	"tweet_sentiment/internal/record"
)

const (
	// Histograms spanning at least coarseSpan use coarseBucket wide buckets.
	coarseSpan   = time.Hour
	coarseBucket = 10 * time.Minute
	fineBucket   = time.Minute
)

var ErrInvalidRange = errors.New("invalid time range")

// ReportService answers the read-side queries over the tweet dataset.
type ReportService struct {
	tweets     TweetStore
	sentiments SentimentStore
	reports    ReportStore
	logger     *slog.Logger
}

func NewReportService(
	tweets TweetStore,
	sentiments SentimentStore,
	reports ReportStore,
	logger *slog.Logger,
) *ReportService {
	return &ReportService{
		tweets:     tweets,
		sentiments: sentiments,
		reports:    reports,
		logger:     logger.With("component", "report"),
	}
}

func (s *ReportService) DateRange(ctx context.Context) (*domain.DateRange, error) {
	r, err := s.tweets.DateRange(ctx)
	if err != nil {
		return nil, fmt.Errorf("date range: %w", err)
	}
	return r, nil
}

// AggregateTotal counts tweets per sentiment label in [begin, end).
func (s *ReportService) AggregateTotal(ctx context.Context, begin, end time.Time) ([]domain.LabelCount, error) {
	if err := checkRange(begin, end); err != nil {
		return nil, err
	}

	counts, err := s.reports.LabelTotals(ctx, begin, end)
	if err != nil {
		return nil, fmt.Errorf("aggregate total: %w", err)
	}
	return orEmpty(counts), nil
}

// TopicTotal counts tweets per topic in [begin, end).
func (s *ReportService) TopicTotal(ctx context.Context, begin, end time.Time) ([]domain.LabelCount, error) {
	if err := checkRange(begin, end); err != nil {
		return nil, err
	}

	counts, err := s.reports.TopicTotals(ctx, begin, end)
	if err != nil {
		return nil, fmt.Errorf("topic total: %w", err)
	}
	return orEmpty(counts), nil
}

func (s *ReportService) AggregateHistogram(ctx context.Context, begin, end time.Time) ([]domain.HistogramPoint, error) {
	if err := checkRange(begin, end); err != nil {
		return nil, err
	}

	points, err := s.reports.LabelCountsByMinute(ctx, begin, end)
	if err != nil {
		return nil, fmt.Errorf("aggregate histogram: %w", err)
	}

	width := BucketWidth(begin, end)
	s.logger.Debug("aggregate histogram", "begin", begin, "end", end, "bucket", width, "rows", len(points))

	return Bucketize(points, begin, width), nil
}

func (s *ReportService) TopicHistogram(ctx context.Context, begin, end time.Time) ([]domain.HistogramPoint, error) {
	if err := checkRange(begin, end); err != nil {
		return nil, err
	}

	points, err := s.reports.TopicCountsByMinute(ctx, begin, end)
	if err != nil {
		return nil, fmt.Errorf("topic histogram: %w", err)
	}

	width := BucketWidth(begin, end)
	s.logger.Debug("topic histogram", "begin", begin, "end", end, "bucket", width, "rows", len(points))

	return Bucketize(points, begin, width), nil
}

func (s *ReportService) TweetsWithAggregate(ctx context.Context, label string, begin, end time.Time) ([]domain.Tweet, error) {
	if err := checkRange(begin, end); err != nil {
		return nil, err
	}

	tweets, err := s.tweets.TweetsWithLabel(ctx, label, begin, end)
	if err != nil {
		return nil, fmt.Errorf("tweets with aggregate %q: %w", label, err)
	}
	return orEmpty(tweets), nil
}

func (s *ReportService) TweetsWithTopic(ctx context.Context, topic string, begin, end time.Time) ([]domain.Tweet, error) {
	if err := checkRange(begin, end); err != nil {
		return nil, err
	}

	tweets, err := s.sentiments.TweetsWithTopic(ctx, topic, begin, end)
	if err != nil {
		return nil, fmt.Errorf("tweets with topic %q: %w", topic, err)
	}
	return orEmpty(tweets), nil
}

// TweetsWithTime returns the tweets inside the window that starts at the
// parsed timestamp. An unparsable window yields no tweets and no error.
func (s *ReportService) TweetsWithTime(ctx context.Context, window string) ([]domain.Tweet, error) {
	begin, end, err := ParseWindow(window)
	if err != nil {
		s.logger.Debug("ignoring unparsable window", "window", window, "error", err)
		return []domain.Tweet{}, nil
	}

	tweets, err := s.tweets.TweetsInRange(ctx, begin, end)
	if err != nil {
		return nil, fmt.Errorf("tweets with time %q: %w", window, err)
	}
	return orEmpty(tweets), nil
}

// ParseWindow turns a timestamp into a half-open window. Timestamps on a
// ten minute boundary open a ten minute window, any other minute opens a one
// minute window, matching the histogram buckets of a range that starts on a
// ten minute boundary.
func ParseWindow(window string) (begin, end time.Time, err error) {
	t, err := record.ParseTime(window)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	begin = t.Truncate(time.Minute)
	width := fineBucket
	if begin.Minute()%10 == 0 {
		width = coarseBucket
	}
	return begin, begin.Add(width), nil
}

// BucketWidth picks the histogram bucket width for a range.
func BucketWidth(begin, end time.Time) time.Duration {
	if end.Sub(begin) >= coarseSpan {
		return coarseBucket
	}
	return fineBucket
}

// Bucketize folds per-minute counts into buckets of the given width anchored
// at begin, summing counts that share a bucket and label. No bucket starts
// before begin. The result is ordered by time, then label.
func Bucketize(points []domain.HistogramPoint, begin time.Time, width time.Duration) []domain.HistogramPoint {
	type key struct {
		bucket time.Time
		label  string
	}

	begin = begin.UTC()
	totals := make(map[key]int64, len(points))
	for _, p := range points {
		offset := p.Time.Sub(begin)
		if offset < 0 {
			offset = 0
		}
		totals[key{bucket: begin.Add(offset / width * width), label: p.Label}] += p.Total
	}

	result := make([]domain.HistogramPoint, 0, len(totals))
	for k, total := range totals {
		result = append(result, domain.HistogramPoint{Time: k.bucket, Label: k.label, Total: total})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Time.Equal(result[j].Time) {
			return result[i].Time.Before(result[j].Time)
		}
		return result[i].Label < result[j].Label
	})

	return result
}

func checkRange(begin, end time.Time) error {
	if end.Before(begin) {
		return fmt.Errorf("%w: end %s is before begin %s", ErrInvalidRange,
			end.Format(time.DateTime), begin.Format(time.DateTime))
	}
	return nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
