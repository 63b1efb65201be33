//go:build integration

package vertica

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"tweet_sentiment/internal/domain"
	"tweet_sentiment/internal/testutil"
)

type StoreIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
	base      time.Time
}

func (s *StoreIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.base = time.Date(2015, time.February, 2, 1, 0, 0, 0, time.UTC)

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_tweets.up.sql"),
			filepath.Join(migrationsPath, "002_create_import_state.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable", "timezone=UTC")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *StoreIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *StoreIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sentiments")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tweets")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM import_state")
}

func TestStoreIntegrationSuite(t *testing.T) {
	suite.Run(t, new(StoreIntegrationSuite))
}

func (s *StoreIntegrationSuite) at(minutes int) time.Time {
	return s.base.Add(time.Duration(minutes) * time.Minute)
}

// seed inserts tweets at the given minute offsets from base with the given labels.
func (s *StoreIntegrationSuite) seed(offsets []int, labels []string) {
	store := NewTweetStore(s.db)
	for i, off := range offsets {
		tweet := &domain.Tweet{
			ID:        int64(i + 1),
			Message:   "message",
			Lang:      "en",
			CreatedAt: s.at(off),
		}
		if labels[i] != "" {
			tweet.Label = testutil.Ptr(labels[i])
			tweet.Score = testutil.Ptr(0.5)
		}
		n, err := store.Insert(s.ctx, tweet)
		s.Require().NoError(err)
		s.Require().Equal(int64(1), n)
	}
}

func (s *StoreIntegrationSuite) TestTweetStore_InsertAffectsOneRow() {
	store := NewTweetStore(s.db)

	n, err := store.Insert(s.ctx, &domain.Tweet{
		ID:        1234,
		Message:   "nice test with | and \n",
		Lang:      "en",
		CreatedAt: time.Date(2015, time.February, 2, 3, 0, 0, 0, time.UTC),
		Label:     testutil.Ptr("neutral"),
		Score:     testutil.Ptr(0.89),
	})
	s.NoError(err)
	s.Equal(int64(1), n)

	var message string
	err = s.db.GetContext(s.ctx, &message, "SELECT message FROM tweets WHERE id = $1", 1234)
	s.NoError(err)
	s.Equal("nice test with | and \n", message)
}

func (s *StoreIntegrationSuite) TestTweetStore_InsertDuplicateFails() {
	s.seed([]int{0}, []string{"neutral"})

	_, err := NewTweetStore(s.db).Insert(s.ctx, &domain.Tweet{ID: 1, Message: "again", Lang: "en", CreatedAt: s.base})
	s.Error(err)
}

func (s *StoreIntegrationSuite) TestTweetStore_DateRange() {
	store := NewTweetStore(s.db)

	empty, err := store.DateRange(s.ctx)
	s.NoError(err)
	s.True(empty.IsZero())

	s.seed([]int{5, 0, 420}, []string{"", "neutral", "positive"})

	r, err := store.DateRange(s.ctx)
	s.NoError(err)
	s.True(s.at(0).Equal(r.Begin))
	s.True(s.at(420).Equal(r.End))
}

func (s *StoreIntegrationSuite) TestTweetStore_TweetsInRangeIsHalfOpen() {
	s.seed([]int{119, 120, 125, 129, 130}, []string{"", "", "", "", ""})

	tweets, err := NewTweetStore(s.db).TweetsInRange(s.ctx, s.at(120), s.at(130))
	s.NoError(err)
	s.Len(tweets, 3)
	for _, t := range tweets {
		s.False(t.CreatedAt.Before(s.at(120)))
		s.True(t.CreatedAt.Before(s.at(130)))
	}
}

func (s *StoreIntegrationSuite) TestTweetStore_TweetsWithLabel() {
	s.seed([]int{0, 1, 2, 500}, []string{"positive", "negative", "positive", "positive"})

	tweets, err := NewTweetStore(s.db).TweetsWithLabel(s.ctx, "positive", s.at(0), s.at(420))
	s.NoError(err)
	s.Require().Len(tweets, 2)
	s.Equal(int64(1), tweets[0].ID)
	s.Equal(int64(3), tweets[1].ID)
	s.Equal("positive", *tweets[0].Label)
}

func (s *StoreIntegrationSuite) TestSentimentStore_InsertAndTweetsWithTopic() {
	s.seed([]int{0, 10}, []string{"neutral", "neutral"})
	store := NewSentimentStore(s.db)

	for _, sentiment := range []*domain.Sentiment{
		{TweetID: 1, Sentiment: testutil.Ptr("nice"), Topic: testutil.Ptr("SB49"), Score: testutil.Ptr(0.89)},
		{TweetID: 1, Sentiment: nil, Topic: testutil.Ptr("SB49"), Score: testutil.Ptr(0.5)},
		{TweetID: 2, Sentiment: testutil.Ptr("nice"), Topic: nil, Score: nil},
	} {
		n, err := store.Insert(s.ctx, sentiment)
		s.Require().NoError(err)
		s.Equal(int64(1), n)
	}

	tweets, err := store.TweetsWithTopic(s.ctx, "SB49", s.at(0), s.at(60))
	s.NoError(err)
	s.Require().Len(tweets, 1)
	s.Equal(int64(1), tweets[0].ID)
}

func (s *StoreIntegrationSuite) TestSentimentStore_MissingTweetFails() {
	_, err := NewSentimentStore(s.db).Insert(s.ctx, &domain.Sentiment{TweetID: 404, Topic: testutil.Ptr("x")})
	s.Error(err)
}

func (s *StoreIntegrationSuite) TestReportStore_LabelTotals() {
	s.seed([]int{0, 1, 2, 3, 4, 600}, []string{"negative", "neutral", "positive", "positive", "", "positive"})

	counts, err := NewReportStore(s.db).LabelTotals(s.ctx, s.at(0), s.at(420))
	s.NoError(err)
	s.Equal([]domain.LabelCount{
		{Label: "negative", Total: 1},
		{Label: "neutral", Total: 1},
		{Label: "positive", Total: 2},
	}, counts)
}

func (s *StoreIntegrationSuite) TestReportStore_TopicTotalsAndMinuteCounts() {
	s.seed([]int{0, 0, 1}, []string{"neutral", "positive", "positive"})
	sentiments := NewSentimentStore(s.db)
	for _, sentiment := range []*domain.Sentiment{
		{TweetID: 1, Topic: testutil.Ptr("SB49")},
		{TweetID: 2, Topic: testutil.Ptr("SB49")},
		{TweetID: 3, Topic: testutil.Ptr("Katy Perry")},
		{TweetID: 3, Topic: nil},
	} {
		_, err := sentiments.Insert(s.ctx, sentiment)
		s.Require().NoError(err)
	}
	reports := NewReportStore(s.db)

	totals, err := reports.TopicTotals(s.ctx, s.at(0), s.at(60))
	s.NoError(err)
	s.Equal([]domain.LabelCount{
		{Label: "SB49", Total: 2},
		{Label: "Katy Perry", Total: 1},
	}, totals)

	points, err := reports.TopicCountsByMinute(s.ctx, s.at(0), s.at(60))
	s.NoError(err)
	s.Require().Len(points, 2)
	s.True(s.at(0).Equal(points[0].Time))
	s.Equal("SB49", points[0].Label)
	s.Equal(int64(2), points[0].Total)

	labels, err := reports.LabelCountsByMinute(s.ctx, s.at(0), s.at(60))
	s.NoError(err)
	s.Require().Len(labels, 3)
	s.Equal("neutral", labels[0].Label)
	s.True(s.at(1).Equal(labels[2].Time))
}

func (s *StoreIntegrationSuite) TestImportStateStore_GetNew() {
	state, err := NewImportStateStore(s.db).Get(s.ctx, "inbox")
	s.NoError(err)
	s.Equal("inbox", state.Source)
	s.True(state.LastImportedAt.IsZero())
	s.Equal(int64(0), state.TotalImported)
}

func (s *StoreIntegrationSuite) TestImportStateStore_UpdateAndGet() {
	store := NewImportStateStore(s.db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	state := &domain.ImportState{Source: "inbox", LastImportedAt: now, LastTweetID: 100, TotalImported: 10}
	s.NoError(store.Update(s.ctx, state))

	state.LastTweetID = 200
	state.TotalImported = 20
	s.NoError(store.Update(s.ctx, state))

	retrieved, err := store.Get(s.ctx, "inbox")
	s.NoError(err)
	s.Equal(int64(200), retrieved.LastTweetID)
	s.Equal(int64(20), retrieved.TotalImported)
	s.WithinDuration(now, retrieved.LastImportedAt, time.Second)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM import_state"))
	s.Equal(1, count)
}

func (s *StoreIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	store := NewTweetStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		_, err := store.Insert(ctx, &domain.Tweet{ID: 999, Message: "tx", Lang: "en", CreatedAt: s.base})
		return err
	})
	s.NoError(err)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM tweets WHERE id = $1", 999))
	s.Equal(1, count)
}

func (s *StoreIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	store := NewTweetStore(s.db)
	rollback := errors.New("rollback")

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, err := store.Insert(ctx, &domain.Tweet{ID: 777, Message: "tx", Lang: "en", CreatedAt: s.base}); err != nil {
			return err
		}
		return rollback
	})
	s.ErrorIs(err, rollback)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM tweets WHERE id = $1", 777))
	s.Equal(0, count)
}

func (s *StoreIntegrationSuite) TestTransaction_ReadCommittedIsolation() {
	connStr, err := s.container.ConnectionString(s.ctx,
		"sslmode=disable", "timezone=UTC", "default_transaction_isolation=serializable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	defer db.Close()

	var sessionLevel string
	s.Require().NoError(db.GetContext(s.ctx, &sessionLevel, "SHOW transaction_isolation"))
	s.Require().Equal("serializable", sessionLevel)

	var level string
	err = NewTransactionManager(db).WithTransaction(s.ctx, func(ctx context.Context) error {
		return GetTxFromContext(ctx).GetContext(ctx, &level, "SHOW transaction_isolation")
	})

	s.NoError(err)
	s.Equal("read committed", level)
}
