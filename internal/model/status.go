package model

// TaskStatus represents the status of a download task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but the worker has not picked it up
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusStarting means the worker is preparing the first subprocess
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusDownloading means a downloader subprocess is running
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusStopping means cancellation was requested and is propagating
	TaskStatusStopping TaskStatus = "Stopping"

	// TaskStatusStopped means the task was stopped by the user
	TaskStatusStopped TaskStatus = "Stopped"

	// TaskStatusCompleted means the task finished successfully, possibly with skips
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusStarting || ts == TaskStatusDownloading || ts == TaskStatusStopping
}

// IsFinished returns true if the task is in a finished state (completed, stopped, or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusStopped || ts == TaskStatusError
}

// StatusForOutcome maps a terminal outcome onto the task status shown in lists
func StatusForOutcome(o Outcome) TaskStatus {
	switch o.Kind {
	case OutcomeSuccess, OutcomeSuccessWithSkip:
		return TaskStatusCompleted
	case OutcomeCancelled:
		return TaskStatusStopped
	default:
		return TaskStatusError
	}
}
