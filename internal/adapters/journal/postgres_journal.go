package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

var postgresDialect = dialect{
	name:         "postgres",
	dollarParams: true,
	schema: []string{
		`CREATE TABLE IF NOT EXISTS analysis_journal (
			id TEXT PRIMARY KEY,
			target TEXT NOT NULL,
			kind TEXT NOT NULL,
			outcome TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			risk_score INTEGER NOT NULL DEFAULT 0,
			risk_level TEXT NOT NULL DEFAULT '',
			recorded_at BIGINT NOT NULL,
			expires_at BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_expires_at ON analysis_journal(expires_at)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_recorded_at ON analysis_journal(recorded_at)`,
	},
}

// NewPostgresJournal creates a new PostgreSQL journal
func NewPostgresJournal(dsn string, logger *zap.Logger, cleanupFreq time.Duration) (*SQLJournal, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	return newSQLJournal(db, postgresDialect, logger, cleanupFreq)
}
