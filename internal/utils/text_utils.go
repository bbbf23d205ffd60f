package utils

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// TruncationMarker is appended to bodies cut to the size limit
const TruncationMarker = "\n[... Content truncated due to size limits ...]"

var (
	htmlTagPattern  = regexp.MustCompile(`(?i)<(html|body|div|p|br|span|table|a\s|img|font|td|tr|head|style)[\s>/]`)
	blankRunPattern = regexp.MustCompile(`\n{3,}`)
)

// TextProcessor prepares message text before it is sent to a model
type TextProcessor struct {
	logger *zap.Logger
	strict *bluemonday.Policy
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		logger: logger,
		strict: bluemonday.StrictPolicy(),
	}
}

// TruncateText safely truncates text to the specified maximum size
// and ensures the result is valid UTF-8
func (tp *TextProcessor) TruncateText(text string, maxSize int) string {
	if maxSize <= 0 || len(text) <= maxSize {
		return text
	}

	truncated := text[:maxSize]

	// Drop a trailing partial rune
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}

	tp.logger.Debug("Text truncated",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)),
		zap.Int("max_size", maxSize))

	return truncated + TruncationMarker
}

// SanitizeUTF8 removes invalid UTF-8 bytes from text
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	sanitized := strings.ToValidUTF8(text, "")

	tp.logger.Debug("Text sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(sanitized)))

	return sanitized
}

// StripHTML reduces an HTML body to its text. Plain text passes through
// unchanged.
func (tp *TextProcessor) StripHTML(text string) string {
	if !LooksLikeHTML(text) {
		return text
	}

	stripped := html.UnescapeString(tp.strict.Sanitize(text))
	stripped = blankRunPattern.ReplaceAllString(strings.TrimSpace(stripped), "\n\n")

	tp.logger.Debug("HTML stripped",
		zap.Int("original_size", len(text)),
		zap.Int("stripped_size", len(stripped)))

	return stripped
}

// ProcessText sanitizes, strips markup and truncates text in one operation
func (tp *TextProcessor) ProcessText(text string, maxSize int) string {
	text = tp.SanitizeUTF8(text)
	text = tp.StripHTML(text)
	return tp.TruncateText(text, maxSize)
}

// LooksLikeHTML reports whether text contains common HTML markup
func LooksLikeHTML(text string) bool {
	return htmlTagPattern.MatchString(text)
}

// ExtractJSONObject returns the span from the first '{' to the last '}' of
// text, for model replies that wrap JSON in prose or code fences
func ExtractJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}
