package download

import (
	"context"

	"github.com/ytget/yt-grabber/internal/model"
)

// TaskRunner executes download requests and reports a terminal outcome.
// *Runner is the production implementation.
type TaskRunner interface {
	Run(ctx context.Context, req model.DownloadRequest, hooks Hooks) model.Outcome
	RunBatch(ctx context.Context, reqs []model.DownloadRequest, hooks Hooks) model.Outcome
}

// Downloader defines the interface for the download service.
type Downloader interface {
	// SetUpdateCallback receives a snapshot of the task on every state or progress change
	SetUpdateCallback(func(*model.DownloadTask))

	// SetLineCallback receives every raw output line of the running task
	SetLineCallback(func(taskID, line string))

	// StartSingle starts a one-item task; skips are reported as success with skip
	StartSingle(req model.DownloadRequest) (*model.DownloadTask, error)

	// StartBatch starts an ordered multi-item task
	StartBatch(reqs []model.DownloadRequest) (*model.DownloadTask, error)

	GetTask(id string) (*model.DownloadTask, bool)
	GetAllTasks() []*model.DownloadTask
	ActiveTask() (*model.DownloadTask, bool)
	StopTask(id string) error
}
