package domain

import "time"

type Tweet struct {
	ID        int64     `db:"id" json:"id"`
	Message   string    `db:"message" json:"message"`
	Lang      string    `db:"lang" json:"lang"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Label     *string   `db:"aggregate_sentiment" json:"label,omitempty"` // optional aggregate sentiment label
	Score     *float64  `db:"aggregate_score" json:"score,omitempty"`
}

// Sentiment is one annotation attached to a tweet.
type Sentiment struct {
	TweetID   int64    `db:"tweet_id" json:"tweet_id"`
	Sentiment *string  `db:"sentiment" json:"sentiment"`
	Topic     *string  `db:"topic" json:"topic"`
	Score     *float64 `db:"score" json:"score"`
}

// RecordKind names the table a delimited line is loaded into.
type RecordKind string

const (
	KindTweet     RecordKind = "tweet"
	KindSentiment RecordKind = "sentiment"
)
