package prompt

import (
	"fmt"
	"strings"

	"github.com/mikey/safe-inbox/internal/core"
)

const (
	unknownValue = "Unknown"
	noSubject    = "(No Subject)"
	emptyBody    = "(Empty Body)"
)

// SystemInstruction describes the task and the reply schema to the model
func SystemInstruction() string {
	return `You are an elite AI email security analyst specializing in psychological manipulation and impersonation detection.
Analyze the email provided and detect:
1. Category: Spam, Genuine, or Promotions.
2. Risk Level & Score (0-100).
3. Impersonation: Is the sender pretending to be a bank, government, or major brand (Amazon, PayPal, etc.)?
4. Psychological Manipulation: Score (0-10) for Urgency, Fear, Greed, and Authority tactics.
5. Link Safety: Evaluate any URLs mentioned in the text for domain mismatches or phishing signs.
6. Memory Match: If known malicious patterns are provided, identify if this email matches them.
7. Simple Explanation: A one-sentence explanation for a 10-year-old.

Return one valid JSON object only (no markdown, no commentary) that follows this schema:
{
  "category": "<Genuine|Spam|Promotions>",
  "risk_score": 0,
  "risk_level": "<Safe|Medium Risk|High Risk>",
  "confidence": "<string>",
  "reasons": ["<string>"],
  "detected_threats": ["<string>"],
  "suggested_action": "<string>",
  "impersonation_target": "<string, omit when none>",
  "emotional_triggers": {"urgency": 0, "fear": 0, "greed": 0, "authority": 0},
  "link_analysis": [{"url": "<string>", "risk": "<Low|Medium|High>", "reason": "<string>"}],
  "simplified_explanation": "<string>"
}`
}

// BuildUserPrompt renders the message content and, when there are any, the
// known malicious patterns. The body is expected to be already processed.
func BuildUserPrompt(email core.EmailPayload, pastPatterns []string) string {
	var b strings.Builder
	b.WriteString("Analyze this email content:\n")
	fmt.Fprintf(&b, "SENDER_NAME: %s\n", orDefault(email.Sender, unknownValue))
	fmt.Fprintf(&b, "SENDER_EMAIL: %s\n", orDefault(email.SenderEmail, unknownValue))
	fmt.Fprintf(&b, "SUBJECT: %s\n", orDefault(email.Subject, noSubject))
	fmt.Fprintf(&b, "BODY: %s\n", orDefault(email.Body, emptyBody))

	if len(pastPatterns) > 0 {
		b.WriteString("\nKNOWN MALICIOUS PATTERNS FROM HISTORY:\n")
		b.WriteString(strings.Join(pastPatterns, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
