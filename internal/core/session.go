package core

import (
	"sort"
	"sync"
)

// Session is the explicit UI-session state: active view, search text, the
// message being viewed, pending indicators and the transient draft result.
// It is passed into the service rather than held as ambient globals.
type Session struct {
	mu           sync.Mutex
	view         View
	search       string
	selected     string
	pending      map[string]int
	draftPending bool
	draft        *EmailPayload
	draftResult  *AnalysisResult
}

// SessionState is a point-in-time copy of a Session
type SessionState struct {
	View         View            `json:"view"`
	Search       string          `json:"search"`
	Selected     string          `json:"selected,omitempty"`
	Pending      []string        `json:"pending"`
	DraftPending bool            `json:"draft_pending"`
	Draft        *EmailPayload   `json:"draft,omitempty"`
	DraftResult  *AnalysisResult `json:"draft_result,omitempty"`
}

// NewSession starts on the inbox view with nothing selected
func NewSession() *Session {
	return &Session{
		view:    ViewInbox,
		pending: make(map[string]int),
	}
}

// ViewContext returns the view and search text used to list messages
func (s *Session) ViewContext() ViewContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ViewContext{View: s.view, Search: s.search}
}

// SetView switches the active view and closes any open message
func (s *Session) SetView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
	s.selected = ""
}

// SetSearch replaces the search text
func (s *Session) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
}

// Select opens the message with the given id
func (s *Session) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
}

// CloseSelection closes the open message. Analyses still in flight for it
// will not be attached.
func (s *Session) CloseSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ""
}

// Selected returns the id of the open message, or ""
func (s *Session) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// IsViewing reports whether id is the open message
func (s *Session) IsViewing(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return id != "" && s.selected == id
}

// IsPending reports whether an analysis of id is in flight
func (s *Session) IsPending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[id] > 0
}

// DraftPending reports whether a draft scan is in flight
func (s *Session) DraftPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftPending
}

// DraftResult returns the last successful draft scan result
func (s *Session) DraftResult() *AnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftResult.Clone()
}

// State returns a copy of the session for display
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]string, 0, len(s.pending))
	for id, n := range s.pending {
		if n > 0 {
			pending = append(pending, id)
		}
	}
	sort.Strings(pending)

	var draft *EmailPayload
	if s.draft != nil {
		d := *s.draft
		draft = &d
	}

	return SessionState{
		View:         s.view,
		Search:       s.search,
		Selected:     s.selected,
		Pending:      pending,
		DraftPending: s.draftPending,
		Draft:        draft,
		DraftResult:  s.draftResult.Clone(),
	}
}

func (s *Session) beginAnalysis(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[id]++
}

func (s *Session) endAnalysis(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending[id] <= 1 {
		delete(s.pending, id)
		return
	}
	s.pending[id]--
}

func (s *Session) beginDraft(draft EmailPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draftPending = true
	s.draft = &draft
}

func (s *Session) endDraft(result *AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draftPending = false
	if result != nil {
		s.draftResult = result.Clone()
	}
}
