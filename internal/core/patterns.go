package core

import "strings"

// DefaultPatternLimit is how many past spam verdicts are fed back to the analyzer
const DefaultPatternLimit = 5

// PatternMemory returns the joined reasons of the first limit messages whose
// current analysis category is Spam, in store order. Unanalyzed messages
// never qualify, whatever their seed label.
func PatternMemory(msgs []Message, limit int) []string {
	if limit <= 0 {
		limit = DefaultPatternLimit
	}
	patterns := make([]string, 0, limit)
	for i := range msgs {
		if len(patterns) == limit {
			break
		}
		a := msgs[i].Analysis
		if a == nil || a.Category != CategorySpam {
			continue
		}
		patterns = append(patterns, strings.Join(a.Reasons, ", "))
	}
	return patterns
}
