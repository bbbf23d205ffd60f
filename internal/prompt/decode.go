package prompt

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mikey/safe-inbox/internal/core"
	"github.com/mikey/safe-inbox/internal/utils"
)

// wireTriggers mirrors emotional_triggers; models may send fractional scores
type wireTriggers struct {
	Urgency   *float64 `json:"urgency"`
	Fear      *float64 `json:"fear"`
	Greed     *float64 `json:"greed"`
	Authority *float64 `json:"authority"`
}

type wireLink struct {
	URL    *string `json:"url"`
	Risk   *string `json:"risk"`
	Reason *string `json:"reason"`
}

// wireResult is the reply as sent by the model. Pointers distinguish a
// missing field from a zero value.
type wireResult struct {
	Category              *string       `json:"category"`
	RiskScore             *float64      `json:"risk_score"`
	RiskLevel             *string       `json:"risk_level"`
	Confidence            *string       `json:"confidence"`
	Reasons               *[]string     `json:"reasons"`
	DetectedThreats       *[]string     `json:"detected_threats"`
	SuggestedAction       *string       `json:"suggested_action"`
	ImpersonationTarget   *string       `json:"impersonation_target"`
	EmotionalTriggers     *wireTriggers `json:"emotional_triggers"`
	LinkAnalysis          *[]wireLink   `json:"link_analysis"`
	SimplifiedExplanation *string       `json:"simplified_explanation"`
}

// DecodeResult parses a model reply into an AnalysisResult. Replies that
// wrap the object in prose or code fences are accepted; replies missing a
// required field or carrying an unknown enum value are rejected.
func DecodeResult(text string) (*core.AnalysisResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var wire wireResult
	if err := json.Unmarshal([]byte(text), &wire); err != nil {
		jsonStr, ok := utils.ExtractJSONObject(text)
		if !ok {
			return nil, fmt.Errorf("failed to extract JSON from LLM response: %w", err)
		}
		wire = wireResult{}
		if err := json.Unmarshal([]byte(jsonStr), &wire); err != nil {
			return nil, fmt.Errorf("failed to parse LLM response as JSON: %w", err)
		}
	}

	return wire.toResult()
}

func (w *wireResult) toResult() (*core.AnalysisResult, error) {
	var missing []string
	need := func(ok bool, name string) {
		if !ok {
			missing = append(missing, name)
		}
	}
	need(w.Category != nil, "category")
	need(w.RiskScore != nil, "risk_score")
	need(w.RiskLevel != nil, "risk_level")
	need(w.Confidence != nil, "confidence")
	need(w.Reasons != nil, "reasons")
	need(w.DetectedThreats != nil, "detected_threats")
	need(w.SuggestedAction != nil, "suggested_action")
	need(w.EmotionalTriggers != nil, "emotional_triggers")
	need(w.LinkAnalysis != nil, "link_analysis")
	need(w.SimplifiedExplanation != nil, "simplified_explanation")
	if len(missing) > 0 {
		return nil, fmt.Errorf("LLM response is missing required fields: %s", strings.Join(missing, ", "))
	}

	category := core.Category(*w.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("LLM response has unknown category %q", *w.Category)
	}
	level := core.RiskLevel(*w.RiskLevel)
	if !level.Valid() {
		return nil, fmt.Errorf("LLM response has unknown risk level %q", *w.RiskLevel)
	}

	triggers, err := w.EmotionalTriggers.toTriggers()
	if err != nil {
		return nil, err
	}

	links := make([]core.LinkAnalysis, 0, len(*w.LinkAnalysis))
	for i, l := range *w.LinkAnalysis {
		if l.URL == nil || l.Risk == nil || l.Reason == nil {
			return nil, fmt.Errorf("LLM response link_analysis[%d] is incomplete", i)
		}
		risk := core.LinkRisk(*l.Risk)
		if !risk.Valid() {
			return nil, fmt.Errorf("LLM response link_analysis[%d] has unknown risk %q", i, *l.Risk)
		}
		links = append(links, core.LinkAnalysis{URL: *l.URL, Risk: risk, Reason: *l.Reason})
	}

	result := &core.AnalysisResult{
		Category:              category,
		RiskScore:             roundScore(*w.RiskScore),
		RiskLevel:             level,
		Confidence:            *w.Confidence,
		Reasons:               nonNil(*w.Reasons),
		DetectedThreats:       nonNil(*w.DetectedThreats),
		SuggestedAction:       *w.SuggestedAction,
		EmotionalTriggers:     triggers,
		LinkAnalysis:          links,
		SimplifiedExplanation: *w.SimplifiedExplanation,
	}
	if w.ImpersonationTarget != nil {
		result.ImpersonationTarget = strings.TrimSpace(*w.ImpersonationTarget)
	}
	return result, nil
}

func (t *wireTriggers) toTriggers() (core.EmotionalTriggers, error) {
	if t.Urgency == nil || t.Fear == nil || t.Greed == nil || t.Authority == nil {
		return core.EmotionalTriggers{}, fmt.Errorf("LLM response emotional_triggers is incomplete")
	}
	return core.EmotionalTriggers{
		Urgency:   roundScore(*t.Urgency),
		Fear:      roundScore(*t.Fear),
		Greed:     roundScore(*t.Greed),
		Authority: roundScore(*t.Authority),
	}, nil
}

func roundScore(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(math.Round(f))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
