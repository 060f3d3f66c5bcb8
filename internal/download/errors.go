package download

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ytget/yt-grabber/internal/model"
)

// Service errors
var (
	ErrTaskInProgress = errors.New("a download task is already running")
	ErrTaskNotFound   = errors.New("task not found")
	ErrTaskNotActive  = errors.New("task is not active")
	ErrNoRequests     = errors.New("no download requests given")
)

// unavailablePatterns mark stderr output of private, removed or otherwise
// unextractable items. Matched case-insensitively.
var unavailablePatterns = []string{"private", "not found", "extractorerror"}

// IsUnavailable reports whether stderr describes content that should be
// skipped rather than treated as a failure
func IsUnavailable(stderr string) bool {
	lower := strings.ToLower(stderr)
	for _, p := range unavailablePatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// FailureError is a downloader run that exited non-zero for a reason other
// than unavailable content. Its message is the diagnostic text verbatim.
type FailureError struct {
	ExitCode   int
	Diagnostic string
}

// Error implements the error interface
func (e *FailureError) Error() string {
	if e.Diagnostic == "" {
		return fmt.Sprintf("downloader exited with code %d", e.ExitCode)
	}
	return e.Diagnostic
}

// OutcomeError converts a terminal outcome into an error; successes, with or
// without skips, return nil
func OutcomeError(o model.Outcome) error {
	switch o.Kind {
	case model.OutcomeFailure:
		return &FailureError{ExitCode: o.ExitCode, Diagnostic: o.Message}
	case model.OutcomeCancelled:
		return context.Canceled
	default:
		return nil
	}
}
