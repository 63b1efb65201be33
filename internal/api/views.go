package api

import (
	"time"

	"tweet_sentiment/internal/domain"
)

// TimeLayout is how timestamps are rendered in responses. It sorts
// lexically in time order.
const TimeLayout = time.DateTime

type rangeView struct {
	Begin string `json:"begin,omitempty"`
	End   string `json:"end,omitempty"`
}

type countView struct {
	Label string `json:"label"`
	Total int64  `json:"total"`
}

type pointView struct {
	Time  string `json:"time"`
	Label string `json:"label"`
	Total int64  `json:"total"`
}

type tweetView struct {
	ID      int64    `json:"id"`
	Time    string   `json:"time"`
	Message string   `json:"message"`
	Lang    string   `json:"lang"`
	Label   *string  `json:"label,omitempty"`
	Score   *float64 `json:"score,omitempty"`
}

type insertView struct {
	Affected int64 `json:"affected"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimeLayout)
}

func newRangeView(r *domain.DateRange) rangeView {
	return rangeView{Begin: formatTime(r.Begin), End: formatTime(r.End)}
}

func newCountViews(counts []domain.LabelCount) []countView {
	views := make([]countView, 0, len(counts))
	for _, c := range counts {
		views = append(views, countView(c))
	}
	return views
}

func newPointViews(points []domain.HistogramPoint) []pointView {
	views := make([]pointView, 0, len(points))
	for _, p := range points {
		views = append(views, pointView{Time: formatTime(p.Time), Label: p.Label, Total: p.Total})
	}
	return views
}

func newTweetViews(tweets []domain.Tweet) []tweetView {
	views := make([]tweetView, 0, len(tweets))
	for _, t := range tweets {
		views = append(views, tweetView{
			ID:      t.ID,
			Time:    formatTime(t.CreatedAt),
			Message: t.Message,
			Lang:    t.Lang,
			Label:   t.Label,
			Score:   t.Score,
		})
	}
	return views
}
