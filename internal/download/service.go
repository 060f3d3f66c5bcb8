package download

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/yt-grabber/internal/model"
)

// TaskIDPrefix prefixes every generated task id
const TaskIDPrefix = "task-"

// Service runs at most one download task at a time on a background goroutine
// and reports its progress through callbacks. Callbacks for a task are only
// ever invoked from that task's goroutine.
type Service struct {
	runner TaskRunner
	logger *zap.Logger

	tasks      map[string]*model.DownloadTask
	order      []string
	tasksMutex sync.RWMutex
	activeID   string
	cancel     context.CancelFunc

	onUpdate func(*model.DownloadTask) // callback for UI updates
	onLine   func(taskID, line string)

	wg sync.WaitGroup
}

// NewService creates a new download service
func NewService(runner TaskRunner, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		runner: runner,
		logger: logger,
		tasks:  make(map[string]*model.DownloadTask),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// SetLineCallback sets the callback receiving raw downloader output
func (s *Service) SetLineCallback(callback func(taskID, line string)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onLine = callback
}

// StartSingle starts downloading one request
func (s *Service) StartSingle(req model.DownloadRequest) (*model.DownloadTask, error) {
	return s.start([]model.DownloadRequest{req}, false)
}

// StartBatch starts downloading requests in order
func (s *Service) StartBatch(reqs []model.DownloadRequest) (*model.DownloadTask, error) {
	return s.start(reqs, true)
}

func (s *Service) start(reqs []model.DownloadRequest, batch bool) (*model.DownloadTask, error) {
	if len(reqs) == 0 {
		return nil, ErrNoRequests
	}
	urls := make([]string, 0, len(reqs))
	for i, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("invalid request %d: %w", i+1, err)
		}
		urls = append(urls, req.SourceURL)
	}

	s.tasksMutex.Lock()
	if s.activeID != "" {
		s.tasksMutex.Unlock()
		return nil, ErrTaskInProgress
	}

	ctx, cancel := context.WithCancel(context.Background())
	task := &model.DownloadTask{
		ID:        generateTaskID(),
		URLs:      urls,
		Kind:      reqs[0].Kind,
		Batch:     batch,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.activeID = task.ID
	s.cancel = cancel
	snapshot := task.Clone()
	s.tasksMutex.Unlock()

	s.logger.Info("download task started",
		zap.String("task_id", task.ID),
		zap.Int("items", len(reqs)),
		zap.String("kind", string(task.Kind)))

	s.wg.Add(1)
	go s.runTask(ctx, cancel, task, reqs)

	return snapshot, nil
}

// runTask drives the runner for one task and publishes its lifecycle
func (s *Service) runTask(ctx context.Context, cancel context.CancelFunc, task *model.DownloadTask, reqs []model.DownloadRequest) {
	defer s.wg.Done()
	defer cancel()

	s.transition(task, model.TaskStatusStarting)
	s.transition(task, model.TaskStatusDownloading)

	hooks := Hooks{
		Progress: func(percent int) {
			s.tasksMutex.Lock()
			task.Percent = percent
			snapshot := task.Clone()
			s.tasksMutex.Unlock()
			s.notifyUpdate(snapshot)
		},
		Line: func(line string) {
			s.notifyLine(task.ID, line)
		},
	}

	var outcome model.Outcome
	if task.Batch {
		outcome = s.runner.RunBatch(ctx, reqs, hooks)
	} else {
		outcome = s.runner.Run(ctx, reqs[0], hooks)
	}

	s.tasksMutex.Lock()
	task.Outcome = &outcome
	task.Status = model.StatusForOutcome(outcome)
	if outcome.Succeeded() {
		task.Percent = 100
	}
	if outcome.Kind == model.OutcomeFailure {
		task.LastError = outcome.Message
	}
	task.FinishedAt = time.Now()
	s.activeID = ""
	s.cancel = nil
	snapshot := task.Clone()
	s.tasksMutex.Unlock()

	s.logger.Info("download task finished",
		zap.String("task_id", task.ID),
		zap.String("outcome", string(outcome.Kind)),
		zap.Int("completed", outcome.Completed),
		zap.Int("skipped", outcome.Skipped))

	s.notifyUpdate(snapshot)
}

// transition moves the task to status unless a stop was requested meanwhile
func (s *Service) transition(task *model.DownloadTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	if task.Status != model.TaskStatusStopping {
		task.Status = status
	}
	snapshot := task.Clone()
	s.tasksMutex.Unlock()
	s.notifyUpdate(snapshot)
}

// GetTask returns a snapshot of a task by ID
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	return task.Clone(), true
}

// GetAllTasks returns snapshots of all tasks in creation order
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(s.order))
	for _, id := range s.order {
		tasks = append(tasks, s.tasks[id].Clone())
	}
	return tasks
}

// ActiveTask returns the running task, if any
func (s *Service) ActiveTask() (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	if s.activeID == "" {
		return nil, false
	}
	return s.tasks[s.activeID].Clone(), true
}

// StopTask cancels a running task. The in-flight subprocess is killed and the
// task finishes as stopped; the final update arrives through the callback.
func (s *Service) StopTask(id string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	if id != s.activeID || !task.Status.IsActive() {
		return fmt.Errorf("%w: %s", ErrTaskNotActive, task.Status)
	}

	task.Status = model.TaskStatusStopping
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// Wait blocks until the running task, if any, has reported its outcome
func (s *Service) Wait() {
	s.wg.Wait()
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	s.tasksMutex.RUnlock()
	if callback != nil {
		callback(task)
	}
}

func (s *Service) notifyLine(taskID, line string) {
	s.tasksMutex.RLock()
	callback := s.onLine
	s.tasksMutex.RUnlock()
	if callback != nil {
		callback(taskID, line)
	}
}

// generateTaskID generates a unique task ID using UUID v7 so ids sort by creation time
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
