package core

import "errors"

var (
	// ErrMessageNotFound is returned when no message has the requested id
	ErrMessageNotFound = errors.New("message not found")
	// ErrEmptyDraft is returned when a draft scan is requested without a body
	ErrEmptyDraft = errors.New("draft body is empty")
	// ErrStaleResult is returned when a completed analysis was dropped because
	// the requesting view was closed or moved to another message
	ErrStaleResult = errors.New("analysis result discarded: message no longer selected")
)

// AnalysisFailure is the single error kind surfaced from the remote analyzer.
// Network, provider and malformed-response failures are not distinguished.
type AnalysisFailure struct {
	Cause error
}

func (e *AnalysisFailure) Error() string {
	return "failed to analyze email security"
}

func (e *AnalysisFailure) Unwrap() error {
	return e.Cause
}

// NewAnalysisFailure wraps err unless it already is an AnalysisFailure
func NewAnalysisFailure(err error) error {
	var af *AnalysisFailure
	if errors.As(err, &af) {
		return err
	}
	return &AnalysisFailure{Cause: err}
}

// IsAnalysisFailure reports whether err is or wraps an AnalysisFailure
func IsAnalysisFailure(err error) bool {
	var af *AnalysisFailure
	return errors.As(err, &af)
}
