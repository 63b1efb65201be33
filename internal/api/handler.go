// Package api exposes the sentiment reports and record inserts over HTTP.
package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"tweet_sentiment/internal/domain"
	"tweet_sentiment/internal/record"
	"tweet_sentiment/internal/service"
)

const maxRecordBytes = 1 << 20

type Reports interface {
	DateRange(ctx context.Context) (*domain.DateRange, error)
	AggregateTotal(ctx context.Context, begin, end time.Time) ([]domain.LabelCount, error)
	TopicTotal(ctx context.Context, begin, end time.Time) ([]domain.LabelCount, error)
	AggregateHistogram(ctx context.Context, begin, end time.Time) ([]domain.HistogramPoint, error)
	TopicHistogram(ctx context.Context, begin, end time.Time) ([]domain.HistogramPoint, error)
	TweetsWithAggregate(ctx context.Context, label string, begin, end time.Time) ([]domain.Tweet, error)
	TweetsWithTopic(ctx context.Context, topic string, begin, end time.Time) ([]domain.Tweet, error)
	TweetsWithTime(ctx context.Context, window string) ([]domain.Tweet, error)
}

type Ingester interface {
	InsertTweetRecord(ctx context.Context, line, sep string) (int64, error)
	InsertSentimentRecord(ctx context.Context, line, sep, nullToken string) (int64, error)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	reports Reports
	ingest  Ingester
	db      Pinger
	logger  *slog.Logger
}

func NewHandler(reports Reports, ingest Ingester, db Pinger, logger *slog.Logger) *Handler {
	return &Handler{
		reports: reports,
		ingest:  ingest,
		db:      db,
		logger:  logger.With("component", "api"),
	}
}

type envelope struct {
	Data  any       `json:"data"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.respondError(w, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "database unavailable", err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) DateRange(w http.ResponseWriter, r *http.Request) {
	dr, err := h.reports.DateRange(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newRangeView(dr))
}

func (h *Handler) AggregateTotal(w http.ResponseWriter, r *http.Request) {
	h.counts(w, r, h.reports.AggregateTotal)
}

func (h *Handler) TopicTotal(w http.ResponseWriter, r *http.Request) {
	h.counts(w, r, h.reports.TopicTotal)
}

func (h *Handler) AggregateHistogram(w http.ResponseWriter, r *http.Request) {
	h.histogram(w, r, h.reports.AggregateHistogram)
}

func (h *Handler) TopicHistogram(w http.ResponseWriter, r *http.Request) {
	h.histogram(w, r, h.reports.TopicHistogram)
}

func (h *Handler) TweetsWithAggregate(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, "label")
	h.tweets(w, r, func(ctx context.Context, begin, end time.Time) ([]domain.Tweet, error) {
		return h.reports.TweetsWithAggregate(ctx, label, begin, end)
	})
}

func (h *Handler) TweetsWithTopic(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")
	h.tweets(w, r, func(ctx context.Context, begin, end time.Time) ([]domain.Tweet, error) {
		return h.reports.TweetsWithTopic(ctx, topic, begin, end)
	})
}

func (h *Handler) TweetsWithTime(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.reports.TweetsWithTime(r.Context(), r.URL.Query().Get("window"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newTweetViews(tweets))
}

func (h *Handler) InsertTweet(w http.ResponseWriter, r *http.Request) {
	line, ok := h.readRecord(w, r)
	if !ok {
		return
	}

	n, err := h.ingest.InsertTweetRecord(r.Context(), line, r.URL.Query().Get("separator"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, insertView{Affected: n})
}

func (h *Handler) InsertSentiment(w http.ResponseWriter, r *http.Request) {
	line, ok := h.readRecord(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	n, err := h.ingest.InsertSentimentRecord(r.Context(), line, q.Get("separator"), q.Get("null"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, insertView{Affected: n})
}

func (h *Handler) counts(w http.ResponseWriter, r *http.Request, query func(ctx context.Context, begin, end time.Time) ([]domain.LabelCount, error)) {
	begin, end, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	counts, err := query(r.Context(), begin, end)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newCountViews(counts))
}

func (h *Handler) histogram(w http.ResponseWriter, r *http.Request, query func(ctx context.Context, begin, end time.Time) ([]domain.HistogramPoint, error)) {
	begin, end, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	points, err := query(r.Context(), begin, end)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newPointViews(points))
}

func (h *Handler) tweets(w http.ResponseWriter, r *http.Request, query func(ctx context.Context, begin, end time.Time) ([]domain.Tweet, error)) {
	begin, end, ok := h.parseRange(w, r)
	if !ok {
		return
	}

	tweets, err := query(r.Context(), begin, end)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newTweetViews(tweets))
}

func (h *Handler) parseRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	q := r.URL.Query()

	begin, err := record.ParseTime(q.Get("begin"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "begin must be a timestamp like 2015-02-02 01:00", nil)
		return time.Time{}, time.Time{}, false
	}
	end, err := record.ParseTime(q.Get("end"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "end must be a timestamp like 2015-02-02 08:00", nil)
		return time.Time{}, time.Time{}, false
	}
	return begin, end, true
}

func (h *Handler) readRecord(w http.ResponseWriter, r *http.Request) (string, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRecordBytes))
	if err != nil {
		h.respondError(w, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "record too large", nil)
		return "", false
	}

	line := strings.TrimRight(string(body), "\r\n")
	if line == "" {
		h.respondError(w, http.StatusBadRequest, "EMPTY_RECORD", "request body must contain one record line", nil)
		return "", false
	}
	return line, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, record.ErrInvalidRecord):
		h.respondError(w, http.StatusBadRequest, "INVALID_RECORD", err.Error(), nil)
	case errors.Is(err, service.ErrInvalidRange):
		h.respondError(w, http.StatusBadRequest, "INVALID_RANGE", err.Error(), nil)
	default:
		h.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error", err)
	}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	h.write(w, status, envelope{Data: data})
}

func (h *Handler) respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		h.logger.Error("request failed", "code", code, "error", err)
	}
	h.write(w, status, envelope{Error: &apiError{Code: code, Message: message}})
}

func (h *Handler) write(w http.ResponseWriter, status int, body envelope) {
	data, err := json.Marshal(body)
	if err != nil {
		h.logger.Error("failed to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		h.logger.Debug("failed to write response", "error", err)
	}
}
