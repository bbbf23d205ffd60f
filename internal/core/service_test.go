package core

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeLLM struct {
	mu       sync.Mutex
	requests []*AnalysisRequest
	result   *AnalysisResult
	err      error
	gate     chan struct{}
	started  chan struct{}
}

func (f *fakeLLM) AnalyzeEmail(ctx context.Context, req *AnalysisRequest) (*AnalysisResult, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	gate, started := f.gate, f.started
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.result.Clone(), nil
}

func (f *fakeLLM) lastRequest(t *testing.T) *AnalysisRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		t.Fatalf("analyzer was not called")
	}
	return f.requests[len(f.requests)-1]
}

type fakeJournal struct {
	mu      sync.Mutex
	entries []*JournalEntry
}

func (j *fakeJournal) Record(_ context.Context, e *JournalEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, e)
	return nil
}

func (j *fakeJournal) Recent(_ context.Context, limit int) ([]*JournalEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]*JournalEntry(nil), j.entries...), nil
}

func (j *fakeJournal) Cleanup(context.Context) error { return nil }

func (j *fakeJournal) outcomes() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []string
	for _, e := range j.entries {
		out = append(out, e.Outcome)
	}
	return out
}

type domainList []string

func (d domainList) IsWhitelisted(from string) bool {
	for _, dom := range d {
		if strings.HasSuffix(from, "@"+dom) {
			return true
		}
	}
	return false
}

func newTestService(t *testing.T, llm LLMClient, wl SenderWhitelist, msgs ...Message) (*InboxService, *fakeJournal) {
	t.Helper()
	j := &fakeJournal{}
	svc := NewInboxService(llm, j, testStore(t, msgs...), wl, zap.NewNop(), ServiceOptions{
		JournalEnabled:  true,
		JournalTTL:      time.Hour,
		AnalysisTimeout: time.Second,
	})
	return svc, j
}

func TestAnalyzeMessageAttachesWithOverride(t *testing.T) {
	spam := analyzed(msg("s1", CategorySpam), verdict(CategorySpam, 90, RiskHigh))
	llm := &fakeLLM{result: verdict(CategoryGenuine, 5, RiskSafe)}
	svc, journal := newTestService(t, llm, nil, spam, msg("m1", CategorySpam))

	sess := NewSession()
	sess.Select("m1")
	override := &EnvelopeOverride{Body: strPtr("edited body"), SenderEmail: strPtr("boss@corp.test")}

	updated, err := svc.AnalyzeMessage(context.Background(), sess, "m1", override)
	if err != nil {
		t.Fatalf("AnalyzeMessage: %v", err)
	}
	if updated.Body != "edited body" || updated.SenderEmail != "boss@corp.test" || updated.Subject != "Subject m1" {
		t.Fatalf("unexpected envelope: %+v", updated)
	}
	if updated.Analysis == nil || updated.Analysis.Category != CategoryGenuine {
		t.Fatalf("analysis not attached: %+v", updated.Analysis)
	}

	req := llm.lastRequest(t)
	if req.Email.Body != "edited body" || req.Email.SenderEmail != "boss@corp.test" || req.Email.Sender != "Sender m1" {
		t.Fatalf("analyzer saw stale content: %+v", req.Email)
	}
	if !reflect.DeepEqual(req.PastPatterns, []string{"reason one, reason two"}) {
		t.Fatalf("past patterns = %v", req.PastPatterns)
	}

	msgs := svc.Messages(ViewContext{View: ViewInbox})
	if got := ids(msgs); !reflect.DeepEqual(got, []string{"m1"}) {
		t.Fatalf("inbox = %v", got)
	}
	if sess.IsPending("m1") {
		t.Fatalf("pending flag not cleared")
	}
	if got := journal.outcomes(); !reflect.DeepEqual(got, []string{OutcomeAttached}) {
		t.Fatalf("journal outcomes = %v", got)
	}
}

func TestAnalyzeMessageFailureLeavesStateUntouched(t *testing.T) {
	prior := verdict(CategorySpam, 70, RiskHigh)
	llm := &fakeLLM{err: errors.New("quota exceeded")}
	svc, journal := newTestService(t, llm, nil, analyzed(msg("a", CategoryGenuine), prior))

	before, _ := svc.Store().Snapshot()
	sess := NewSession()
	sess.Select("a")

	_, err := svc.AnalyzeMessage(context.Background(), sess, "a", &EnvelopeOverride{Subject: strPtr("x")})
	if !IsAnalysisFailure(err) {
		t.Fatalf("expected AnalysisFailure, got %v", err)
	}
	if err.Error() != "failed to analyze email security" {
		t.Fatalf("failure message leaked details: %q", err.Error())
	}

	after, _ := svc.Store().Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("store changed after failure")
	}
	if sess.IsPending("a") {
		t.Fatalf("pending flag not cleared after failure")
	}
	if got := journal.outcomes(); !reflect.DeepEqual(got, []string{OutcomeFailed}) {
		t.Fatalf("journal outcomes = %v", got)
	}
}

func TestAnalyzeMessageUnknownID(t *testing.T) {
	svc, _ := newTestService(t, &fakeLLM{result: verdict(CategorySpam, 1, RiskSafe)}, nil, msg("a", CategorySpam))
	if _, err := svc.AnalyzeMessage(context.Background(), NewSession(), "nope", nil); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestAnalyzeMessageDiscardedWhenViewClosed(t *testing.T) {
	llm := &fakeLLM{
		result:  verdict(CategorySpam, 99, RiskHigh),
		gate:    make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	svc, journal := newTestService(t, llm, nil, msg("a", CategoryGenuine))
	sess := NewSession()
	sess.Select("a")

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.AnalyzeMessage(context.Background(), sess, "a", nil)
		errCh <- err
	}()

	<-llm.started
	if !sess.IsPending("a") {
		t.Fatalf("expected pending while in flight")
	}
	sess.CloseSelection()
	close(llm.gate)

	if err := <-errCh; !errors.Is(err, ErrStaleResult) {
		t.Fatalf("expected ErrStaleResult, got %v", err)
	}
	m, _ := svc.Message("a")
	if m.Analysis != nil {
		t.Fatalf("late result was attached")
	}
	if sess.IsPending("a") {
		t.Fatalf("pending flag not cleared")
	}
	if got := journal.outcomes(); !reflect.DeepEqual(got, []string{OutcomeDiscarded}) {
		t.Fatalf("journal outcomes = %v", got)
	}
}

func TestAnalyzeMessageDiscardedWhenContextCancelled(t *testing.T) {
	svc, _ := newTestService(t, &fakeLLM{result: verdict(CategorySpam, 99, RiskHigh)}, nil, msg("a", CategoryGenuine))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.AnalyzeMessage(ctx, nil, "a", nil); !errors.Is(err, ErrStaleResult) {
		t.Fatalf("expected ErrStaleResult, got %v", err)
	}
}

func TestWhitelistedSenderSkipsAnalyzer(t *testing.T) {
	llm := &fakeLLM{result: verdict(CategorySpam, 99, RiskHigh)}
	m := msg("a", CategorySpam)
	m.SenderEmail = "ceo@trusted.test"
	svc, journal := newTestService(t, llm, domainList{"trusted.test"}, m)
	sess := NewSession()
	sess.Select("a")

	updated, err := svc.AnalyzeMessage(context.Background(), sess, "a", nil)
	if err != nil {
		t.Fatalf("AnalyzeMessage: %v", err)
	}
	if updated.Analysis.Category != CategoryGenuine || updated.Analysis.RiskLevel != RiskSafe {
		t.Fatalf("unexpected trusted verdict: %+v", updated.Analysis)
	}
	if len(llm.requests) != 0 {
		t.Fatalf("analyzer should not be called for whitelisted sender")
	}
	if got := journal.outcomes(); !reflect.DeepEqual(got, []string{OutcomeTrusted}) {
		t.Fatalf("journal outcomes = %v", got)
	}
}

func TestOpenMessageAutoAnalyzes(t *testing.T) {
	llm := &fakeLLM{result: verdict(CategorySpam, 80, RiskHigh)}
	svc, _ := newTestService(t, llm, nil, msg("a", CategoryGenuine))
	sess := NewSession()

	done, err := svc.OpenMessage(context.Background(), sess, "a")
	if err != nil {
		t.Fatalf("OpenMessage: %v", err)
	}
	if done == nil {
		t.Fatalf("expected automatic analysis to start")
	}
	if err := <-done; err != nil {
		t.Fatalf("automatic analysis: %v", err)
	}
	if sess.Selected() != "a" {
		t.Fatalf("message not selected")
	}
	if got := ids(svc.Messages(ViewContext{View: ViewHighRisk})); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("high-risk = %v", got)
	}

	done, err = svc.OpenMessage(context.Background(), sess, "a")
	if err != nil || done != nil {
		t.Fatalf("analyzed message should not be re-analyzed on open: %v %v", done, err)
	}
	if _, err := svc.OpenMessage(context.Background(), sess, "zzz"); !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestScanDraftIsNeverStored(t *testing.T) {
	llm := &fakeLLM{result: verdict(CategorySpam, 77, RiskHigh)}
	svc, journal := newTestService(t, llm, nil, msg("a", CategoryGenuine))
	sess := NewSession()
	before, v0 := svc.Store().Snapshot()

	result, err := svc.ScanDraft(context.Background(), sess, EmailPayload{Subject: "hi", Body: "click here"})
	if err != nil {
		t.Fatalf("ScanDraft: %v", err)
	}
	if result.RiskScore != 77 {
		t.Fatalf("unexpected result: %+v", result)
	}

	after, v1 := svc.Store().Snapshot()
	if !reflect.DeepEqual(before, after) || v0 != v1 {
		t.Fatalf("draft scan mutated the store")
	}
	if sess.DraftPending() {
		t.Fatalf("draft pending not cleared")
	}
	if got := sess.DraftResult(); got == nil || got.RiskScore != 77 {
		t.Fatalf("draft result not kept in session: %+v", got)
	}
	if got := journal.outcomes(); !reflect.DeepEqual(got, []string{OutcomeScanned}) {
		t.Fatalf("journal outcomes = %v", got)
	}
}

func TestScanDraftRejectsBlankBody(t *testing.T) {
	llm := &fakeLLM{result: verdict(CategorySpam, 1, RiskSafe)}
	svc, _ := newTestService(t, llm, nil, msg("a", CategoryGenuine))
	if _, err := svc.ScanDraft(context.Background(), NewSession(), EmailPayload{Subject: "x", Body: "  \n"}); !errors.Is(err, ErrEmptyDraft) {
		t.Fatalf("expected ErrEmptyDraft, got %v", err)
	}
	if len(llm.requests) != 0 {
		t.Fatalf("analyzer called for blank draft")
	}
}

func TestScanDraftFailureKeepsPreviousResult(t *testing.T) {
	llm := &fakeLLM{result: verdict(CategorySpam, 60, RiskMedium)}
	svc, _ := newTestService(t, llm, nil, msg("a", CategoryGenuine))
	sess := NewSession()

	if _, err := svc.ScanDraft(context.Background(), sess, EmailPayload{Body: "first"}); err != nil {
		t.Fatalf("ScanDraft: %v", err)
	}
	llm.err = errors.New("boom")
	if _, err := svc.ScanDraft(context.Background(), sess, EmailPayload{Body: "second"}); !IsAnalysisFailure(err) {
		t.Fatalf("expected AnalysisFailure, got %v", err)
	}
	if got := sess.DraftResult(); got == nil || got.RiskScore != 60 {
		t.Fatalf("previous draft result lost: %+v", got)
	}
	if sess.DraftPending() {
		t.Fatalf("draft pending not cleared")
	}
}

func TestDashboardTracksStoreVersion(t *testing.T) {
	llm := &fakeLLM{result: verdict(CategorySpam, 40, RiskMedium)}
	svc, _ := newTestService(t, llm, nil, msg("a", CategoryGenuine), msg("b", CategoryGenuine))

	if d := svc.Dashboard(); d.AverageRisk != 0 || d.AnalyzedCount != 0 {
		t.Fatalf("unexpected initial dashboard: %+v", d)
	}

	sess := NewSession()
	sess.Select("a")
	if _, err := svc.AnalyzeMessage(context.Background(), sess, "a", nil); err != nil {
		t.Fatalf("AnalyzeMessage: %v", err)
	}

	d := svc.Dashboard()
	if d.AverageRisk != 40 || d.AnalyzedCount != 1 {
		t.Fatalf("dashboard is stale: %+v", d)
	}
	want := []NamedCount{{"Spam", 1}, {"Genuine", 1}}
	if !reflect.DeepEqual(d.CategoryCounts, want) {
		t.Fatalf("CategoryCounts = %v", d.CategoryCounts)
	}
}

func TestSessionSetViewClosesSelection(t *testing.T) {
	sess := NewSession()
	sess.Select("a")
	sess.SetSearch("prize")
	sess.SetView(ViewSpam)

	st := sess.State()
	if st.Selected != "" || st.View != ViewSpam || st.Search != "prize" {
		t.Fatalf("unexpected state: %+v", st)
	}
}
