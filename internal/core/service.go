package core

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServiceOptions tunes the inbox service
type ServiceOptions struct {
	JournalEnabled  bool
	JournalTTL      time.Duration
	PatternLimit    int
	AnalysisTimeout time.Duration
}

// InboxService is the core service: it owns the message store, invokes the
// remote analyzer and applies the attachment policy
type InboxService struct {
	llmClient LLMClient
	journal   AnalysisJournal
	store     *Store
	whitelist SenderWhitelist
	logger    *zap.Logger
	opts      ServiceOptions

	dashMu      sync.Mutex
	dashVersion uint64
	dashValid   bool
	dashboard   Dashboard
}

// NewInboxService creates a new inbox service
func NewInboxService(
	llmClient LLMClient,
	journal AnalysisJournal,
	store *Store,
	whitelist SenderWhitelist,
	logger *zap.Logger,
	opts ServiceOptions,
) *InboxService {
	if opts.PatternLimit <= 0 {
		opts.PatternLimit = DefaultPatternLimit
	}
	return &InboxService{
		llmClient: llmClient,
		journal:   journal,
		store:     store,
		whitelist: whitelist,
		logger:    logger,
		opts:      opts,
	}
}

// Store exposes the underlying message store
func (s *InboxService) Store() *Store {
	return s.store
}

// Messages lists the store through the view classifier and search filter
func (s *InboxService) Messages(vc ViewContext) []Message {
	msgs, _ := s.store.Snapshot()
	return ListMessages(msgs, vc)
}

// Message returns one message by id
func (s *InboxService) Message(id string) (Message, error) {
	m, ok := s.store.Get(id)
	if !ok {
		return Message{}, ErrMessageNotFound
	}
	return m, nil
}

// Dashboard returns the aggregate statistics of the whole store. The value
// is memoized per store version, so any attach invalidates it.
func (s *InboxService) Dashboard() Dashboard {
	msgs, version := s.store.Snapshot()

	s.dashMu.Lock()
	defer s.dashMu.Unlock()
	if s.dashValid && s.dashVersion == version {
		return s.dashboard
	}
	s.dashboard = Aggregate(msgs)
	s.dashVersion = version
	s.dashValid = true
	return s.dashboard
}

// Patterns returns the current pattern memory
func (s *InboxService) Patterns() []string {
	msgs, _ := s.store.Snapshot()
	return PatternMemory(msgs, s.opts.PatternLimit)
}

// OpenMessage selects id in the session. An unanalyzed message is analyzed
// in the background; the returned channel then yields that analysis' error
// (nil on success). It is nil when no analysis was started.
func (s *InboxService) OpenMessage(ctx context.Context, sess *Session, id string) (<-chan error, error) {
	m, ok := s.store.Get(id)
	if !ok {
		return nil, ErrMessageNotFound
	}
	sess.Select(id)
	if m.Analysis != nil {
		return nil, nil
	}

	done := make(chan error, 1)
	go func() {
		_, err := s.AnalyzeMessage(ctx, sess, id, nil)
		if err != nil {
			s.logger.Warn("Automatic analysis did not complete",
				zap.String("message_id", id),
				zap.Error(err))
		}
		done <- err
	}()
	return done, nil
}

// AnalyzeMessage runs a remote analysis of message id, with override applied
// to the analyzed content. On success the result and override are attached
// together, but only while ctx is live and the session still views id.
// Failures leave the store untouched.
func (s *InboxService) AnalyzeMessage(ctx context.Context, sess *Session, id string, override *EnvelopeOverride) (*Message, error) {
	m, ok := s.store.Get(id)
	if !ok {
		return nil, ErrMessageNotFound
	}

	payload := m.Payload()
	override.applyPayload(&payload)

	if sess != nil {
		sess.beginAnalysis(id)
		defer sess.endAnalysis(id)
	}

	result, trusted, err := s.analyze(ctx, payload)
	if err != nil {
		s.logger.Error("Failed to analyze message",
			zap.String("message_id", id),
			zap.Error(errors.Unwrap(err)))
		s.record(JournalKindMessage, id, OutcomeFailed, nil)
		return nil, err
	}

	if ctx.Err() != nil || (sess != nil && !sess.IsViewing(id)) {
		s.logger.Info("Discarding analysis for message no longer in view",
			zap.String("message_id", id))
		s.record(JournalKindMessage, id, OutcomeDiscarded, result)
		return nil, ErrStaleResult
	}

	if !s.store.Attach(id, result, override) {
		return nil, ErrMessageNotFound
	}

	outcome := OutcomeAttached
	if trusted {
		outcome = OutcomeTrusted
	}
	s.record(JournalKindMessage, id, outcome, result)

	s.logger.Info("Analyzed message",
		zap.String("message_id", id),
		zap.String("category", string(result.Category)),
		zap.Int("risk_score", result.RiskScore),
		zap.String("risk_level", string(result.RiskLevel)),
		zap.Bool("envelope_edited", !override.IsEmpty()))

	updated, _ := s.store.Get(id)
	return &updated, nil
}

// ScanDraft analyzes a standalone draft. The result lives only in the
// session and is never attached to the store.
func (s *InboxService) ScanDraft(ctx context.Context, sess *Session, draft EmailPayload) (*AnalysisResult, error) {
	if strings.TrimSpace(draft.Body) == "" {
		return nil, ErrEmptyDraft
	}

	if sess != nil {
		sess.beginDraft(draft)
	}

	result, trusted, err := s.analyze(ctx, draft)
	if sess != nil {
		sess.endDraft(result)
	}

	target := uuid.New().String()
	if err != nil {
		s.logger.Error("Failed to scan draft", zap.String("scan_id", target), zap.Error(errors.Unwrap(err)))
		s.record(JournalKindDraft, target, OutcomeFailed, nil)
		return nil, err
	}

	outcome := OutcomeScanned
	if trusted {
		outcome = OutcomeTrusted
	}
	s.record(JournalKindDraft, target, outcome, result)

	s.logger.Info("Scanned draft",
		zap.String("scan_id", target),
		zap.String("category", string(result.Category)),
		zap.Int("risk_score", result.RiskScore))

	return result, nil
}

// Journal returns the most recent journal entries
func (s *InboxService) Journal(ctx context.Context, limit int) ([]*JournalEntry, error) {
	if !s.opts.JournalEnabled || s.journal == nil {
		return []*JournalEntry{}, nil
	}
	return s.journal.Recent(ctx, limit)
}

// analyze returns the verdict for payload; trusted is true when the sender
// whitelist answered instead of the remote analyzer
func (s *InboxService) analyze(ctx context.Context, payload EmailPayload) (*AnalysisResult, bool, error) {
	if s.whitelist != nil && s.whitelist.IsWhitelisted(payload.SenderEmail) {
		s.logger.Info("Skipping analysis for whitelisted domain",
			zap.String("sender", payload.SenderEmail),
			zap.String("action", "whitelist_bypass"))
		return trustedResult(), true, nil
	}

	msgs, _ := s.store.Snapshot()
	req := &AnalysisRequest{
		Email:        payload,
		PastPatterns: PatternMemory(msgs, s.opts.PatternLimit),
	}

	callCtx := ctx
	if s.opts.AnalysisTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.opts.AnalysisTimeout)
		defer cancel()
	}

	result, err := s.llmClient.AnalyzeEmail(callCtx, req)
	if err != nil {
		return nil, false, NewAnalysisFailure(err)
	}
	if result == nil {
		return nil, false, NewAnalysisFailure(errors.New("analyzer returned no result"))
	}
	return result, false, nil
}

func (s *InboxService) record(kind, target, outcome string, result *AnalysisResult) {
	if !s.opts.JournalEnabled || s.journal == nil {
		return
	}

	now := time.Now()
	entry := &JournalEntry{
		ID:         uuid.New().String(),
		Target:     target,
		Kind:       kind,
		Outcome:    outcome,
		RecordedAt: now,
		ExpiresAt:  now.Add(s.opts.JournalTTL),
	}
	if result != nil {
		entry.Category = result.Category
		entry.RiskScore = result.RiskScore
		entry.RiskLevel = result.RiskLevel
	}

	// The request context may already be cancelled for discarded results.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.journal.Record(ctx, entry); err != nil {
		s.logger.Error("Failed to record analysis outcome", zap.Error(err))
	}
}

func trustedResult() *AnalysisResult {
	return &AnalysisResult{
		Category:              CategoryGenuine,
		RiskScore:             0,
		RiskLevel:             RiskSafe,
		Confidence:            "High",
		Reasons:               []string{"Sender domain is whitelisted"},
		DetectedThreats:       []string{},
		SuggestedAction:       "No action needed.",
		LinkAnalysis:          []LinkAnalysis{},
		SimplifiedExplanation: "This email comes from a sender you trust.",
	}
}
