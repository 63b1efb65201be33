// Package vertica implements the tweet sentiment stores on top of sqlx.
//
// Queries are written with "?" placeholders and rebound for the connected
// driver, so the same stores run against Vertica in production and against
// PostgreSQL in development and integration tests.
package vertica

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/vertica/vertica-sql-go"

	"tweet_sentiment/internal/config"
)

func init() {
	sqlx.BindDriver(config.DriverVertica, sqlx.QUESTION)
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}
