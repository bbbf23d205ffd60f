package core

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// View names one of the UI partitions
type View string

const (
	ViewInbox      View = "inbox"
	ViewSpam       View = "spam"
	ViewPromotions View = "promotions"
	ViewHighRisk   View = "high-risk"
	ViewDashboard  View = "dashboard"
	ViewCompose    View = "compose"
)

// ParseView validates a view name
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case ViewInbox, ViewSpam, ViewPromotions, ViewHighRisk, ViewDashboard, ViewCompose:
		return v, nil
	}
	return "", fmt.Errorf("unknown view: %q", s)
}

// IsListView reports whether the view renders a message subset.
// Dashboard and compose render derived or transient data instead.
func (v View) IsListView() bool {
	switch v {
	case ViewInbox, ViewSpam, ViewPromotions, ViewHighRisk:
		return true
	}
	return false
}

// ViewContext is the part of the session state that selects a message list
type ViewContext struct {
	View   View   `json:"view"`
	Search string `json:"search"`
}

// MatchesView decides membership of m in view. Category views prefer the
// attached verdict and fall back to the seed label; high-risk requires an
// analysis whose risk level is High Risk as supplied by the analyzer.
func MatchesView(m *Message, view View) bool {
	switch view {
	case ViewInbox:
		return m.CurrentCategory() == CategoryGenuine
	case ViewSpam:
		return m.CurrentCategory() == CategorySpam
	case ViewPromotions:
		return m.CurrentCategory() == CategoryPromotions
	case ViewHighRisk:
		return m.Analysis != nil && m.Analysis.RiskLevel == RiskHigh
	}
	return false
}

// ApplyView returns the messages belonging to view, in input order
func ApplyView(msgs []Message, view View) []Message {
	if !view.IsListView() {
		return nil
	}
	out := make([]Message, 0, len(msgs))
	for i := range msgs {
		if MatchesView(&msgs[i], view) {
			out = append(out, msgs[i])
		}
	}
	return out
}

// SearchFilter narrows msgs to those whose sender name, subject or body
// contains term, ignoring case. A blank term returns msgs unchanged.
func SearchFilter(msgs []Message, term string) []Message {
	term = strings.TrimSpace(term)
	if term == "" {
		return msgs
	}

	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if strings.Contains(fold.String(m.Sender), needle) ||
			strings.Contains(fold.String(m.Subject), needle) ||
			strings.Contains(fold.String(m.Body), needle) {
			out = append(out, m)
		}
	}
	return out
}

// ListMessages composes the view classifier and the search filter
func ListMessages(msgs []Message, vc ViewContext) []Message {
	return SearchFilter(ApplyView(msgs, vc.View), vc.Search)
}
