package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

var mysqlDialect = dialect{
	name: "mysql",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS analysis_journal (
			id VARCHAR(36) PRIMARY KEY,
			target VARCHAR(255) NOT NULL,
			kind VARCHAR(16) NOT NULL,
			outcome VARCHAR(16) NOT NULL,
			category VARCHAR(32) NOT NULL DEFAULT '',
			risk_score INT NOT NULL DEFAULT 0,
			risk_level VARCHAR(32) NOT NULL DEFAULT '',
			recorded_at BIGINT NOT NULL,
			expires_at BIGINT NOT NULL,
			INDEX idx_journal_expires_at (expires_at),
			INDEX idx_journal_recorded_at (recorded_at)
		)`,
	},
}

// NewMySQLJournal creates a new MySQL journal
func NewMySQLJournal(dsn string, logger *zap.Logger, cleanupFreq time.Duration) (*SQLJournal, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	return newSQLJournal(db, mysqlDialect, logger, cleanupFreq)
}
