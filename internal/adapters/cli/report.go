package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mikey/safe-inbox/internal/core"
)

const bodyPreviewLength = 500

// PrintEmailSummary writes the envelope of a scanned message
func PrintEmailSummary(w io.Writer, email core.EmailPayload, verbose bool) {
	fmt.Fprintf(w, "\n=== Email Summary ===\n")
	fmt.Fprintf(w, "From: %s <%s>\n", email.Sender, email.SenderEmail)
	fmt.Fprintf(w, "Subject: %s\n", email.Subject)
	fmt.Fprintf(w, "Body length: %d bytes\n", len(email.Body))

	if verbose {
		preview := []rune(email.Body)
		if len(preview) > bodyPreviewLength {
			preview = append(preview[:bodyPreviewLength], []rune("...")...)
		}
		fmt.Fprintf(w, "\nBody preview:\n%s\n", string(preview))
	}
}

// PrintAnalysis writes an analysis result as a human readable report
func PrintAnalysis(w io.Writer, r *core.AnalysisResult, duration time.Duration) {
	fmt.Fprintf(w, "\n=== Results ===\n")
	fmt.Fprintf(w, "Category: %s\n", r.Category)
	fmt.Fprintf(w, "Risk: %d/100 (%s)\n", r.RiskScore, r.RiskLevel)
	fmt.Fprintf(w, "Confidence: %s\n", r.Confidence)
	if r.ImpersonationTarget != "" {
		fmt.Fprintf(w, "Impersonating: %s\n", r.ImpersonationTarget)
	}
	fmt.Fprintf(w, "Summary: %s\n", r.SimplifiedExplanation)
	fmt.Fprintf(w, "Suggested action: %s\n", r.SuggestedAction)

	printList(w, "Reasons", r.Reasons)
	printList(w, "Detected threats", r.DetectedThreats)

	t := r.EmotionalTriggers
	fmt.Fprintf(w, "\nManipulation (0-10): urgency %d, fear %d, greed %d, authority %d\n",
		t.Urgency, t.Fear, t.Greed, t.Authority)

	if len(r.LinkAnalysis) > 0 {
		fmt.Fprintf(w, "\nLinks:\n")
		for _, l := range r.LinkAnalysis {
			fmt.Fprintf(w, "  [%s] %s - %s\n", l.Risk, l.URL, l.Reason)
		}
	}

	if duration > 0 {
		fmt.Fprintf(w, "\nProcessing time: %v\n", duration.Round(time.Millisecond))
	}
}

// PrintDashboard writes the aggregate statistics and pattern memory
func PrintDashboard(w io.Writer, d core.Dashboard, patterns []string) {
	fmt.Fprintf(w, "\n=== Dashboard ===\n")
	fmt.Fprintf(w, "Messages: %d (%d analyzed)\n", d.TotalCount, d.AnalyzedCount)
	fmt.Fprintf(w, "Average risk: %d\n", d.AverageRisk)
	fmt.Fprintf(w, "Unanalyzed in inbox: %d\n", d.Badges.UnanalyzedInbox)
	fmt.Fprintf(w, "High risk: %d\n", d.Badges.HighRisk)

	printCounts(w, "Categories", d.CategoryCounts)
	printCounts(w, "Top threats", d.TopThreats)
	printCounts(w, "Risky sender domains", d.RiskyDomains)
	printList(w, "Known malicious patterns", patterns)
}

func printList(w io.Writer, title string, items []string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	if len(items) == 0 {
		fmt.Fprintf(w, "  (none)\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func printCounts(w io.Writer, title string, counts []core.NamedCount) {
	fmt.Fprintf(w, "\n%s:\n", title)
	if len(counts) == 0 {
		fmt.Fprintf(w, "  (none)\n")
		return
	}
	width := 0
	for _, c := range counts {
		if len(c.Name) > width {
			width = len(c.Name)
		}
	}
	for _, c := range counts {
		fmt.Fprintf(w, "  %s%s  %d\n", c.Name, strings.Repeat(" ", width-len(c.Name)), c.Count)
	}
}
