package journal

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mikey/safe-inbox/internal/core"
	"go.uber.org/zap"
)

// dialect captures the differences between the SQL backends
type dialect struct {
	name         string
	schema       []string
	dollarParams bool
}

// SQLJournal is a database/sql implementation of the AnalysisJournal
// interface shared by the SQLite, MySQL and PostgreSQL backends. Times are
// stored as unix milliseconds so every driver compares them the same way.
type SQLJournal struct {
	db          *sql.DB
	dialect     dialect
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
	stopOnce    sync.Once
}

func newSQLJournal(db *sql.DB, d dialect, logger *zap.Logger, cleanupFreq time.Duration) (*SQLJournal, error) {
	for _, stmt := range d.schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create %s journal schema: %w", d.name, err)
		}
	}

	j := &SQLJournal{
		db:          db,
		dialect:     d,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	go runCleanup(j, cleanupFreq, j.stopCh, logger)

	return j, nil
}

// Record stores an entry
func (j *SQLJournal) Record(ctx context.Context, entry *core.JournalEntry) error {
	_, err := j.db.ExecContext(ctx, j.bind(`
		INSERT INTO analysis_journal
			(id, target, kind, outcome, category, risk_score, risk_level, recorded_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`),
		entry.ID,
		entry.Target,
		entry.Kind,
		entry.Outcome,
		string(entry.Category),
		entry.RiskScore,
		string(entry.RiskLevel),
		entry.RecordedAt.UnixMilli(),
		entry.ExpiresAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return nil
}

// Recent returns up to limit unexpired entries, newest first
func (j *SQLJournal) Recent(ctx context.Context, limit int) ([]*core.JournalEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	rows, err := j.db.QueryContext(ctx, j.bind(`
		SELECT id, target, kind, outcome, category, risk_score, risk_level, recorded_at, expires_at
		FROM analysis_journal
		WHERE expires_at > ?
		ORDER BY recorded_at DESC
		LIMIT ?
	`), time.Now().UnixMilli(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	out := make([]*core.JournalEntry, 0, limit)
	for rows.Next() {
		var (
			e                     core.JournalEntry
			category, riskLevel   string
			recordedAt, expiresAt int64
		)
		if err := rows.Scan(&e.ID, &e.Target, &e.Kind, &e.Outcome, &category, &e.RiskScore, &riskLevel, &recordedAt, &expiresAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		e.Category = core.Category(category)
		e.RiskLevel = core.RiskLevel(riskLevel)
		e.RecordedAt = time.UnixMilli(recordedAt)
		e.ExpiresAt = time.UnixMilli(expiresAt)
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return out, nil
}

// Cleanup removes expired entries
func (j *SQLJournal) Cleanup(ctx context.Context) error {
	result, err := j.db.ExecContext(ctx, j.bind(`
		DELETE FROM analysis_journal
		WHERE expires_at <= ?
	`), time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to clean up expired entries: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		j.logger.Warn("Failed to get rows affected during cleanup", zap.Error(err))
	} else {
		j.logger.Debug("Cleaned up expired journal entries",
			zap.String("backend", j.dialect.name),
			zap.Int64("expired_count", rowsAffected))
	}
	return nil
}

// Stop stops the background cleanup task and closes the database connection
func (j *SQLJournal) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopCh)
		if err := j.db.Close(); err != nil {
			j.logger.Error("Failed to close journal database",
				zap.String("backend", j.dialect.name),
				zap.Error(err))
		}
	})
}

// bind rewrites ? placeholders for drivers that use $n
func (j *SQLJournal) bind(query string) string {
	if !j.dialect.dollarParams {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
