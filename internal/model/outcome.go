package model

import "fmt"

// OutcomeKind tags the terminal result of a download task
type OutcomeKind string

const (
	OutcomeSuccess         OutcomeKind = "success"
	OutcomeSuccessWithSkip OutcomeKind = "success_with_skip"
	OutcomeFailure         OutcomeKind = "failure"
	OutcomeCancelled       OutcomeKind = "cancelled"
)

// SkippedUnavailableMessage is reported when a single item was private or removed
const SkippedUnavailableMessage = "Skipped private/unavailable video."

// Outcome is reported exactly once per task. Message carries the skip
// reason or the verbatim diagnostic text of a failure.
type Outcome struct {
	Kind      OutcomeKind `json:"kind"`
	Message   string      `json:"message,omitempty"`
	ExitCode  int         `json:"exit_code,omitempty"`
	Total     int         `json:"total"`
	Completed int         `json:"completed"`
	Skipped   int         `json:"skipped"`
}

// SuccessOutcome returns a plain success
func SuccessOutcome(total, completed int) Outcome {
	return Outcome{Kind: OutcomeSuccess, Total: total, Completed: completed}
}

// SkipOutcome returns a success in which some items were skipped
func SkipOutcome(reason string, total, completed, skipped int) Outcome {
	return Outcome{Kind: OutcomeSuccessWithSkip, Message: reason, Total: total, Completed: completed, Skipped: skipped}
}

// FailureOutcome returns a failure carrying the diagnostic text verbatim
func FailureOutcome(diagnostic string, exitCode, total, completed, skipped int) Outcome {
	return Outcome{
		Kind:      OutcomeFailure,
		Message:   diagnostic,
		ExitCode:  exitCode,
		Total:     total,
		Completed: completed,
		Skipped:   skipped,
	}
}

// CancelledOutcome returns the outcome of a task stopped by its caller
func CancelledOutcome(total, completed, skipped int) Outcome {
	return Outcome{Kind: OutcomeCancelled, Message: "download cancelled", Total: total, Completed: completed, Skipped: skipped}
}

// Succeeded reports whether the task ended without failing or being cancelled
func (o Outcome) Succeeded() bool {
	return o.Kind == OutcomeSuccess || o.Kind == OutcomeSuccessWithSkip
}

// Summary renders a one-line, user-facing description of the outcome
func (o Outcome) Summary() string {
	switch o.Kind {
	case OutcomeSuccess:
		return "Download completed successfully"
	case OutcomeSuccessWithSkip:
		if o.Total > 1 {
			return fmt.Sprintf("Download completed, %d of %d skipped", o.Skipped, o.Total)
		}
		return o.Message
	case OutcomeCancelled:
		return "Download cancelled"
	default:
		return "Download failed: " + o.Message
	}
}
