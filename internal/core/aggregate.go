package core

import (
	"math"
	"sort"
	"strings"
)

const (
	// TopThreatLimit caps the threat frequency ranking
	TopThreatLimit = 5
	// RiskyDomainLimit caps the risky sender domain ranking
	RiskyDomainLimit = 4
	// RiskyScoreThreshold is the score a message must exceed to count its domain
	RiskyScoreThreshold = 50
	// InvalidDomain buckets sender addresses without a usable domain part
	InvalidDomain = "invalid"
)

// NamedCount is one entry of a ranking or breakdown
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Badges are the sidebar counters
type Badges struct {
	UnanalyzedInbox int `json:"unanalyzed_inbox"`
	HighRisk        int `json:"high_risk"`
}

// Dashboard holds the statistics derived from the full message set
type Dashboard struct {
	CategoryCounts []NamedCount `json:"category_counts"`
	TopThreats     []NamedCount `json:"top_threats"`
	RiskyDomains   []NamedCount `json:"risky_domains"`
	AverageRisk    int          `json:"average_risk"`
	AnalyzedCount  int          `json:"analyzed_count"`
	TotalCount     int          `json:"total_count"`
	Badges         Badges       `json:"badges"`
}

// Aggregate derives every dashboard statistic from msgs
func Aggregate(msgs []Message) Dashboard {
	analyzed := 0
	for i := range msgs {
		if msgs[i].Analysis != nil {
			analyzed++
		}
	}
	return Dashboard{
		CategoryCounts: CategoryCounts(msgs),
		TopThreats:     TopThreats(msgs),
		RiskyDomains:   RiskyDomains(msgs),
		AverageRisk:    AverageRisk(msgs),
		AnalyzedCount:  analyzed,
		TotalCount:     len(msgs),
		Badges:         SidebarBadges(msgs),
	}
}

// CategoryCounts counts every message once under its current category.
// Keys appear in first-encountered order and only when they occur.
func CategoryCounts(msgs []Message) []NamedCount {
	t := newTally()
	for i := range msgs {
		t.add(string(msgs[i].CurrentCategory()))
	}
	return t.entries
}

// TopThreats ranks detected threats over analyzed messages. Every
// occurrence counts, including duplicates within one message.
func TopThreats(msgs []Message) []NamedCount {
	t := newTally()
	for i := range msgs {
		if msgs[i].Analysis == nil {
			continue
		}
		for _, threat := range msgs[i].Analysis.DetectedThreats {
			t.add(threat)
		}
	}
	return t.top(TopThreatLimit)
}

// RiskyDomains ranks sender domains of analyzed messages scoring above
// RiskyScoreThreshold
func RiskyDomains(msgs []Message) []NamedCount {
	t := newTally()
	for i := range msgs {
		a := msgs[i].Analysis
		if a == nil || clampScore(a.RiskScore) <= RiskyScoreThreshold {
			continue
		}
		t.add(SenderDomain(msgs[i].SenderEmail))
	}
	return t.top(RiskyDomainLimit)
}

// AverageRisk is the rounded mean risk score over analyzed messages, or 0
// when none are analyzed. Scores are clamped into [0,100] first.
func AverageRisk(msgs []Message) int {
	sum, n := 0, 0
	for i := range msgs {
		if msgs[i].Analysis == nil {
			continue
		}
		sum += clampScore(msgs[i].Analysis.RiskScore)
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// SidebarBadges counts unanalyzed inbox messages and high-risk messages
func SidebarBadges(msgs []Message) Badges {
	var b Badges
	for i := range msgs {
		m := &msgs[i]
		if m.Analysis == nil && m.InitialCategory == CategoryGenuine {
			b.UnanalyzedInbox++
		}
		if MatchesView(m, ViewHighRisk) {
			b.HighRisk++
		}
	}
	return b
}

// SenderDomain returns the lower-cased text after the first '@', or
// InvalidDomain when there is none
func SenderDomain(addr string) string {
	_, domain, ok := strings.Cut(strings.TrimSpace(addr), "@")
	domain = strings.ToLower(strings.TrimSpace(domain))
	if !ok || domain == "" {
		return InvalidDomain
	}
	return domain
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// tally counts keys while remembering first-encountered order
type tally struct {
	entries []NamedCount
	index   map[string]int
}

func newTally() *tally {
	return &tally{entries: []NamedCount{}, index: make(map[string]int)}
}

func (t *tally) add(key string) {
	if i, ok := t.index[key]; ok {
		t.entries[i].Count++
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, NamedCount{Name: key, Count: 1})
}

func (t *tally) top(n int) []NamedCount {
	ranked := append([]NamedCount(nil), t.entries...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	if ranked == nil {
		ranked = []NamedCount{}
	}
	return ranked
}
