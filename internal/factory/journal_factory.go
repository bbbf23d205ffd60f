package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikey/safe-inbox/internal/adapters/journal"
	"github.com/mikey/safe-inbox/internal/config"
	"github.com/mikey/safe-inbox/internal/core"
	"go.uber.org/zap"
)

// JournalFactory creates analysis journals based on configuration
type JournalFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewJournalFactory creates a new journal factory
func NewJournalFactory(cfg *config.Config, logger *zap.Logger) *JournalFactory {
	return &JournalFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateJournal creates an analysis journal based on the configuration
func (f *JournalFactory) CreateJournal() (core.AnalysisJournal, error) {
	journalCfg, err := f.cfg.GetJournal()
	if err != nil {
		return nil, fmt.Errorf("invalid journal configuration: %w", err)
	}

	switch journalCfg.Type {
	case "memory":
		return journal.NewMemoryJournal(f.logger, journalCfg.CleanupFrequency), nil
	case "sqlite":
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(journalCfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return journal.NewSQLiteJournal(journalCfg.SQLitePath, f.logger, journalCfg.CleanupFrequency)
	case "mysql":
		return journal.NewMySQLJournal(journalCfg.MySQLDSN, f.logger, journalCfg.CleanupFrequency)
	case "postgres":
		return journal.NewPostgresJournal(journalCfg.PostgresDSN, f.logger, journalCfg.CleanupFrequency)
	default:
		return nil, fmt.Errorf("unsupported journal type: %s", journalCfg.Type)
	}
}

// ServiceOptions derives the inbox service options from the analysis and
// journal sections
func (f *JournalFactory) ServiceOptions() (core.ServiceOptions, error) {
	journalCfg, err := f.cfg.GetJournal()
	if err != nil {
		return core.ServiceOptions{}, fmt.Errorf("invalid journal configuration: %w", err)
	}
	analysisCfg, err := f.cfg.GetAnalysis()
	if err != nil {
		return core.ServiceOptions{}, fmt.Errorf("invalid analysis configuration: %w", err)
	}
	return core.ServiceOptions{
		JournalEnabled:  journalCfg.Enabled,
		JournalTTL:      journalCfg.TTL,
		PatternLimit:    analysisCfg.PatternLimit,
		AnalysisTimeout: analysisCfg.Timeout,
	}, nil
}
