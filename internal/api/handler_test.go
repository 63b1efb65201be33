package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tweet_sentiment/internal/config"
	"tweet_sentiment/internal/domain"
	"tweet_sentiment/internal/service"
	"tweet_sentiment/internal/service/mocks"
	"tweet_sentiment/internal/testutil"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}

type HandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	tweets     *mocks.MockTweetStore
	sentiments *mocks.MockSentimentStore
	reports    *mocks.MockReportStore
	txManager  *mocks.MockTransactionManager

	router http.Handler
	begin  time.Time
	end    time.Time
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tweets = mocks.NewMockTweetStore(s.ctrl)
	s.sentiments = mocks.NewMockSentimentStore(s.ctrl)
	s.reports = mocks.NewMockReportStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.router = s.newRouter(fakePinger{})

	s.begin = time.Date(2015, time.February, 2, 1, 0, 0, 0, time.UTC)
	s.end = time.Date(2015, time.February, 2, 8, 0, 0, 0, time.UTC)
}

func (s *HandlerTestSuite) newRouter(db Pinger) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reports := service.NewReportService(s.tweets, s.sentiments, s.reports, logger)
	ingest := service.NewIngestService(s.tweets, s.sentiments, s.txManager, nil, logger, config.IngestConfig{Separator: "|"})
	return NewRouter(NewHandler(reports, ingest, db, logger))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type testResponse struct {
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func (s *HandlerTestSuite) do(method, target string, body io.Reader) (int, testResponse) {
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal("application/json", rec.Header().Get("Content-Type"))

	var resp testResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func rangeQuery(begin, end string) string {
	return "?" + url.Values{"begin": {begin}, "end": {end}}.Encode()
}

func (s *HandlerTestSuite) TestHealth() {
	code, _ := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, code)

	s.router = s.newRouter(fakePinger{err: errors.New("down")})
	code, resp := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusServiceUnavailable, code)
	s.Equal("DATABASE_UNAVAILABLE", resp.Error.Code)
}

func (s *HandlerTestSuite) TestDateRange() {
	s.tweets.EXPECT().DateRange(gomock.Any()).Return(&domain.DateRange{Begin: s.begin, End: s.end}, nil)

	code, resp := s.do(http.MethodGet, "/api/v1/range", nil)

	s.Equal(http.StatusOK, code)
	var got rangeView
	s.Require().NoError(json.Unmarshal(resp.Data, &got))
	s.Equal("2015-02-02 01:00:00", got.Begin)
	s.Equal("2015-02-02 08:00:00", got.End)
}

func (s *HandlerTestSuite) TestAggregateTotal() {
	s.reports.EXPECT().LabelTotals(gomock.Any(), s.begin, s.end).Return([]domain.LabelCount{
		{Label: "negative", Total: 3},
		{Label: "neutral", Total: 2},
		{Label: "positive", Total: 1},
	}, nil)

	code, resp := s.do(http.MethodGet, "/api/v1/aggregate/total"+rangeQuery("2015-02-02 01:00", "2015-02-02 08:00"), nil)

	s.Equal(http.StatusOK, code)
	var got []countView
	s.Require().NoError(json.Unmarshal(resp.Data, &got))
	s.Len(got, 3)
	s.Equal(countView{Label: "negative", Total: 3}, got[0])
}

func (s *HandlerTestSuite) TestAggregateTotal_MissingParameters() {
	code, resp := s.do(http.MethodGet, "/api/v1/aggregate/total", nil)

	s.Equal(http.StatusBadRequest, code)
	s.Equal("INVALID_PARAMETER", resp.Error.Code)
}

func (s *HandlerTestSuite) TestTopicTotal_InvertedRange() {
	code, resp := s.do(http.MethodGet, "/api/v1/topic/total"+rangeQuery("2015-02-02 08:00", "2015-02-02 01:00"), nil)

	s.Equal(http.StatusBadRequest, code)
	s.Equal("INVALID_RANGE", resp.Error.Code)
}

func (s *HandlerTestSuite) TestTopicHistogram() {
	end := s.begin.Add(50 * time.Minute)
	s.reports.EXPECT().TopicCountsByMinute(gomock.Any(), s.begin, end).Return([]domain.HistogramPoint{
		{Time: s.begin.Add(3 * time.Minute), Label: "SB49", Total: 4},
	}, nil)

	code, resp := s.do(http.MethodGet, "/api/v1/topic/histogram"+rangeQuery("2015-02-02 01:00", "2015-02-02 01:50"), nil)

	s.Equal(http.StatusOK, code)
	var got []pointView
	s.Require().NoError(json.Unmarshal(resp.Data, &got))
	s.Equal([]pointView{{Time: "2015-02-02 01:03:00", Label: "SB49", Total: 4}}, got)
}

func (s *HandlerTestSuite) TestAggregateHistogram_StoreFailure() {
	s.reports.EXPECT().LabelCountsByMinute(gomock.Any(), s.begin, s.end).Return(nil, errors.New("timeout"))

	code, resp := s.do(http.MethodGet, "/api/v1/aggregate/histogram"+rangeQuery("2015-02-02 01:00", "2015-02-02 08:00"), nil)

	s.Equal(http.StatusInternalServerError, code)
	s.Equal("INTERNAL_ERROR", resp.Error.Code)
}

func (s *HandlerTestSuite) TestTweetsWithAggregate() {
	s.tweets.EXPECT().TweetsWithLabel(gomock.Any(), "positive", s.begin, s.end).Return([]domain.Tweet{
		{ID: 1, Message: "touchdown", Lang: "en", CreatedAt: s.begin.Add(time.Hour), Label: testutil.Ptr("positive")},
	}, nil)

	code, resp := s.do(http.MethodGet, "/api/v1/tweets/aggregate/positive"+rangeQuery("2015-02-02 01:00", "2015-02-02 08:00"), nil)

	s.Equal(http.StatusOK, code)
	var got []tweetView
	s.Require().NoError(json.Unmarshal(resp.Data, &got))
	s.Require().Len(got, 1)
	s.Equal("2015-02-02 02:00:00", got[0].Time)
	s.Equal("touchdown", got[0].Message)
}

func (s *HandlerTestSuite) TestTweetsWithTopic() {
	s.sentiments.EXPECT().TweetsWithTopic(gomock.Any(), "SB49", s.begin, s.end).Return(nil, nil)

	code, resp := s.do(http.MethodGet, "/api/v1/tweets/topic/SB49"+rangeQuery("2015-02-02 01:00", "2015-02-02 08:00"), nil)

	s.Equal(http.StatusOK, code)
	s.JSONEq(`[]`, string(resp.Data))
}

func (s *HandlerTestSuite) TestTweetsWithTime() {
	window := "2015-02-02 03:00"
	begin := time.Date(2015, time.February, 2, 3, 0, 0, 0, time.UTC)
	s.tweets.EXPECT().TweetsInRange(gomock.Any(), begin, begin.Add(10*time.Minute)).Return([]domain.Tweet{
		{ID: 1, Message: "a", CreatedAt: begin},
		{ID: 2, Message: "b", CreatedAt: begin.Add(9*time.Minute + 59*time.Second)},
	}, nil)

	code, resp := s.do(http.MethodGet, "/api/v1/tweets/time?"+url.Values{"window": {window}}.Encode(), nil)

	s.Equal(http.StatusOK, code)
	var got []tweetView
	s.Require().NoError(json.Unmarshal(resp.Data, &got))
	s.Len(got, 2)
	for _, t := range got {
		s.True(window <= t.Time && t.Time < "2015-02-02 03:10", t.Time)
	}
}

func (s *HandlerTestSuite) TestTweetsWithTime_InvalidWindow() {
	code, resp := s.do(http.MethodGet, "/api/v1/tweets/time?window=invalid", nil)

	s.Equal(http.StatusOK, code)
	s.JSONEq(`[]`, string(resp.Data))
}

func (s *HandlerTestSuite) TestInsertTweet() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.tweets.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tweet *domain.Tweet) (int64, error) {
			s.Equal(int64(1234), tweet.ID)
			s.Equal("a | b", tweet.Message)
			return 1, nil
		},
	)

	code, resp := s.do(http.MethodPost, "/api/v1/tweets", strings.NewReader("1234|a \\| b|en|2015-02-02 03:00:00|neutral|0.89\n"))

	s.Equal(http.StatusCreated, code)
	s.JSONEq(`{"affected":1}`, string(resp.Data))
}

func (s *HandlerTestSuite) TestInsertTweet_Malformed() {
	code, resp := s.do(http.MethodPost, "/api/v1/tweets", strings.NewReader("1234|only two"))

	s.Equal(http.StatusBadRequest, code)
	s.Equal("INVALID_RECORD", resp.Error.Code)
}

func (s *HandlerTestSuite) TestInsertTweet_EmptyBody() {
	code, resp := s.do(http.MethodPost, "/api/v1/tweets", strings.NewReader("\n"))

	s.Equal(http.StatusBadRequest, code)
	s.Equal("EMPTY_RECORD", resp.Error.Code)
}

func (s *HandlerTestSuite) TestInsertSentiment_CustomSeparatorAndNull() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.sentiments.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sentiment *domain.Sentiment) (int64, error) {
			s.Nil(sentiment.Sentiment)
			s.Equal("test", *sentiment.Topic)
			return 1, nil
		},
	)

	target := "/api/v1/sentiments?" + url.Values{"separator": {";"}, "null": {"null"}}.Encode()
	code, resp := s.do(http.MethodPost, target, strings.NewReader("1234;null;test;0.89"))

	s.Equal(http.StatusCreated, code)
	s.JSONEq(`{"affected":1}`, string(resp.Data))
}
