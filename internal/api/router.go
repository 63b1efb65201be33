package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/range", h.DateRange)

		r.Get("/aggregate/total", h.AggregateTotal)
		r.Get("/aggregate/histogram", h.AggregateHistogram)
		r.Get("/topic/total", h.TopicTotal)
		r.Get("/topic/histogram", h.TopicHistogram)

		r.Route("/tweets", func(r chi.Router) {
			r.Get("/aggregate/{label}", h.TweetsWithAggregate)
			r.Get("/topic/{topic}", h.TweetsWithTopic)
			r.Get("/time", h.TweetsWithTime)
			r.Post("/", h.InsertTweet)
		})

		r.Post("/sentiments", h.InsertSentiment)
	})

	return r
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
