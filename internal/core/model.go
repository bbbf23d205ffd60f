package core

import "time"

// Category is the mailbox partition a message belongs to
type Category string

const (
	CategoryGenuine    Category = "Genuine"
	CategorySpam       Category = "Spam"
	CategoryPromotions Category = "Promotions"
)

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryGenuine, CategorySpam, CategoryPromotions:
		return true
	}
	return false
}

// RiskLevel is the remote verdict's coarse risk bucket
type RiskLevel string

const (
	RiskSafe   RiskLevel = "Safe"
	RiskMedium RiskLevel = "Medium Risk"
	RiskHigh   RiskLevel = "High Risk"
)

// Valid reports whether l is one of the known risk levels
func (l RiskLevel) Valid() bool {
	switch l {
	case RiskSafe, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// LinkRisk rates a single URL found in a message
type LinkRisk string

const (
	LinkRiskLow    LinkRisk = "Low"
	LinkRiskMedium LinkRisk = "Medium"
	LinkRiskHigh   LinkRisk = "High"
)

// Valid reports whether r is one of the known link risks
func (r LinkRisk) Valid() bool {
	switch r {
	case LinkRiskLow, LinkRiskMedium, LinkRiskHigh:
		return true
	}
	return false
}

// EmotionalTriggers scores manipulation tactics on a 0-10 scale
type EmotionalTriggers struct {
	Urgency   int `json:"urgency"`
	Fear      int `json:"fear"`
	Greed     int `json:"greed"`
	Authority int `json:"authority"`
}

// LinkAnalysis is the verdict for one URL
type LinkAnalysis struct {
	URL    string   `json:"url"`
	Risk   LinkRisk `json:"risk"`
	Reason string   `json:"reason"`
}

// AnalysisResult is the remote verdict for one message or draft
type AnalysisResult struct {
	Category              Category          `json:"category"`
	RiskScore             int               `json:"risk_score"`
	RiskLevel             RiskLevel         `json:"risk_level"`
	Confidence            string            `json:"confidence"`
	Reasons               []string          `json:"reasons"`
	DetectedThreats       []string          `json:"detected_threats"`
	SuggestedAction       string            `json:"suggested_action"`
	ImpersonationTarget   string            `json:"impersonation_target,omitempty"`
	EmotionalTriggers     EmotionalTriggers `json:"emotional_triggers"`
	LinkAnalysis          []LinkAnalysis    `json:"link_analysis"`
	SimplifiedExplanation string            `json:"simplified_explanation"`
}

// Clone returns a deep copy so stored results never alias caller memory
func (r *AnalysisResult) Clone() *AnalysisResult {
	if r == nil {
		return nil
	}
	c := *r
	c.Reasons = cloneSlice(r.Reasons)
	c.DetectedThreats = cloneSlice(r.DetectedThreats)
	c.LinkAnalysis = cloneSlice(r.LinkAnalysis)
	return &c
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// Message is a single email held in the session store
type Message struct {
	ID              string          `json:"id" yaml:"id"`
	Sender          string          `json:"sender" yaml:"sender"`
	SenderEmail     string          `json:"senderEmail" yaml:"sender_email"`
	Subject         string          `json:"subject" yaml:"subject"`
	Body            string          `json:"body" yaml:"body"`
	Preview         string          `json:"preview" yaml:"preview"`
	Date            string          `json:"date" yaml:"date"`
	InitialCategory Category        `json:"initialCategory" yaml:"initial_category"`
	Analysis        *AnalysisResult `json:"analysis,omitempty" yaml:"-"`
}

// CurrentCategory prefers the attached verdict over the seed label
func (m *Message) CurrentCategory() Category {
	if m.Analysis != nil {
		return m.Analysis.Category
	}
	return m.InitialCategory
}

// Payload returns the fields sent to the remote analyzer
func (m *Message) Payload() EmailPayload {
	return EmailPayload{
		Sender:      m.Sender,
		SenderEmail: m.SenderEmail,
		Subject:     m.Subject,
		Body:        m.Body,
	}
}

func (m Message) clone() Message {
	m.Analysis = m.Analysis.Clone()
	return m
}

// EmailPayload is the email-like content submitted for analysis
type EmailPayload struct {
	Sender      string `json:"sender"`
	SenderEmail string `json:"senderEmail"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
}

// EnvelopeOverride carries fields edited just before a re-analysis.
// Nil fields are left untouched.
type EnvelopeOverride struct {
	Subject     *string `json:"subject,omitempty"`
	Body        *string `json:"body,omitempty"`
	SenderEmail *string `json:"senderEmail,omitempty"`
}

// IsEmpty reports whether the override changes nothing
func (o *EnvelopeOverride) IsEmpty() bool {
	return o == nil || (o.Subject == nil && o.Body == nil && o.SenderEmail == nil)
}

// applyPayload writes the override's non-nil fields onto p
func (o *EnvelopeOverride) applyPayload(p *EmailPayload) {
	if o == nil {
		return
	}
	if o.Subject != nil {
		p.Subject = *o.Subject
	}
	if o.Body != nil {
		p.Body = *o.Body
	}
	if o.SenderEmail != nil {
		p.SenderEmail = *o.SenderEmail
	}
}

// AnalysisRequest is what the remote analyzer receives
type AnalysisRequest struct {
	Email        EmailPayload
	PastPatterns []string
}

// JournalEntry records the outcome of one analysis attempt
type JournalEntry struct {
	ID         string    `json:"id"`
	Target     string    `json:"target"`
	Kind       string    `json:"kind"`
	Outcome    string    `json:"outcome"`
	Category   Category  `json:"category,omitempty"`
	RiskScore  int       `json:"risk_score"`
	RiskLevel  RiskLevel `json:"risk_level,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

const (
	JournalKindMessage = "message"
	JournalKindDraft   = "draft"

	OutcomeAttached  = "attached"
	OutcomeDiscarded = "discarded"
	OutcomeFailed    = "failed"
	OutcomeTrusted   = "trusted"
	OutcomeScanned   = "scanned"
)
