package domain

import "time"

// DateRange is the span of tweet timestamps present in the dataset.
// Both ends are zero when the dataset is empty.
type DateRange struct {
	Begin time.Time
	End   time.Time
}

func (r DateRange) IsZero() bool {
	return r.Begin.IsZero() && r.End.IsZero()
}

// LabelCount is a count of tweets sharing a sentiment label or topic.
type LabelCount struct {
	Label string `db:"label"`
	Total int64  `db:"total"`
}

// HistogramPoint is the count for one label in one time bucket.
type HistogramPoint struct {
	Time  time.Time `db:"bucket"`
	Label string    `db:"label"`
	Total int64     `db:"total"`
}
