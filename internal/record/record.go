// Package record parses the delimited text lines used to load tweets and
// sentiment annotations.
//
// A line is a list of fields joined by a separator ("|" unless configured
// otherwise). Inside a field a backslash escapes the separator, "\n" stands
// for a newline and "\\" for a backslash.
package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tweet_sentiment/internal/domain"
)

const DefaultSeparator = "|"

// TimeLayout is the timestamp format of the created_at field.
const TimeLayout = "2006-01-02 15:04:05"

var ErrInvalidRecord = errors.New("invalid record")

var timeLayouts = []string{TimeLayout, "2006-01-02 15:04", time.RFC3339}

// Split breaks line into fields on every unescaped occurrence of sep and
// resolves escape sequences. An empty sep means DefaultSeparator.
func Split(line, sep string) []string {
	if sep == "" {
		sep = DefaultSeparator
	}

	var fields []string
	var sb strings.Builder

	for i := 0; i < len(line); {
		if line[i] == '\\' && i+1 < len(line) {
			rest := line[i+1:]
			switch {
			case strings.HasPrefix(rest, sep):
				sb.WriteString(sep)
				i += 1 + len(sep)
				continue
			case rest[0] == 'n':
				sb.WriteByte('\n')
				i += 2
				continue
			case rest[0] == '\\':
				sb.WriteByte('\\')
				i += 2
				continue
			}
		}

		if strings.HasPrefix(line[i:], sep) {
			fields = append(fields, sb.String())
			sb.Reset()
			i += len(sep)
			continue
		}

		sb.WriteByte(line[i])
		i++
	}

	return append(fields, sb.String())
}

// ParseTweet reads id|message|lang|created_at[|label[|score]].
// Empty optional fields are left nil.
func ParseTweet(line, sep string) (*domain.Tweet, error) {
	fields := Split(line, sep)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fmt.Errorf("%w: tweet needs 4 to 6 fields, got %d", ErrInvalidRecord, len(fields))
	}

	id, err := parseID(fields[0])
	if err != nil {
		return nil, err
	}

	createdAt, err := ParseTime(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: created_at %q", ErrInvalidRecord, fields[3])
	}

	tweet := &domain.Tweet{
		ID:        id,
		Message:   fields[1],
		Lang:      strings.TrimSpace(fields[2]),
		CreatedAt: createdAt,
	}

	if len(fields) > 4 {
		tweet.Label = optionalString(fields[4], "")
	}
	if len(fields) > 5 {
		tweet.Score, err = optionalFloat(fields[5], "")
		if err != nil {
			return nil, err
		}
	}

	return tweet, nil
}

// ParseSentiment reads tweet_id|sentiment|topic|score. Fields that are empty
// or equal to nullToken are left nil.
func ParseSentiment(line, sep, nullToken string) (*domain.Sentiment, error) {
	fields := Split(line, sep)
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: sentiment needs 4 fields, got %d", ErrInvalidRecord, len(fields))
	}

	tweetID, err := parseID(fields[0])
	if err != nil {
		return nil, err
	}

	score, err := optionalFloat(fields[3], nullToken)
	if err != nil {
		return nil, err
	}

	return &domain.Sentiment{
		TweetID:   tweetID,
		Sentiment: optionalString(fields[1], nullToken),
		Topic:     optionalString(fields[2], nullToken),
		Score:     score,
	}, nil
}

// ParseTime accepts second or minute precision timestamps and RFC 3339.
// Timestamps without a zone are read as UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q", ErrInvalidRecord, s)
	}
	return id, nil
}

func isNull(s, nullToken string) bool {
	return s == "" || (nullToken != "" && s == nullToken)
}

func optionalString(s, nullToken string) *string {
	if isNull(s, nullToken) {
		return nil
	}
	return &s
}

func optionalFloat(s, nullToken string) (*float64, error) {
	s = strings.TrimSpace(s)
	if isNull(s, nullToken) {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: score %q", ErrInvalidRecord, s)
	}
	return &f, nil
}
