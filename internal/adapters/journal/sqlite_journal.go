package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

var sqliteDialect = dialect{
	name: "sqlite",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS analysis_journal (
			id TEXT PRIMARY KEY,
			target TEXT NOT NULL,
			kind TEXT NOT NULL,
			outcome TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			risk_score INTEGER NOT NULL DEFAULT 0,
			risk_level TEXT NOT NULL DEFAULT '',
			recorded_at INTEGER NOT NULL,
			expires_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_expires_at ON analysis_journal(expires_at)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_recorded_at ON analysis_journal(recorded_at)`,
	},
}

// NewSQLiteJournal creates a new SQLite journal
func NewSQLiteJournal(dbPath string, logger *zap.Logger, cleanupFreq time.Duration) (*SQLJournal, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// A single writer avoids SQLITE_BUSY under concurrent records
	db.SetMaxOpenConns(1)

	return newSQLJournal(db, sqliteDialect, logger, cleanupFreq)
}
