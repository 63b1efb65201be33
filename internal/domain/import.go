package domain

import "time"

type ImportState struct {
	Source         string    `db:"source"`
	LastImportedAt time.Time `db:"last_imported_at"`
	LastTweetID    int64     `db:"last_tweet_id"`
	TotalImported  int64     `db:"total_imported"`
}

// ImportStats holds statistics about a bulk load.
type ImportStats struct {
	Source      string
	Kind        RecordKind
	Lines       int
	Inserted    int
	Failed      int
	Published   int
	LastTweetID int64
	Duration    time.Duration
}
