package core

import (
	"context"
)

// LLMClient defines the interface for the remote analysis provider
type LLMClient interface {
	// AnalyzeEmail returns a structured risk assessment of req.Email
	AnalyzeEmail(ctx context.Context, req *AnalysisRequest) (*AnalysisResult, error)
}

// AnalysisJournal records the outcome of every analysis attempt
type AnalysisJournal interface {
	// Record stores an entry
	Record(ctx context.Context, entry *JournalEntry) error

	// Recent returns up to limit unexpired entries, newest first
	Recent(ctx context.Context, limit int) ([]*JournalEntry, error)

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}

// SenderWhitelist decides whether a sender is trusted without analysis
type SenderWhitelist interface {
	IsWhitelisted(from string) bool
}
