package download

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-grabber/internal/model"
)

// stubRunner is a TaskRunner returning canned outcomes. When block is set it
// waits for cancellation before returning.
type stubRunner struct {
	outcome model.Outcome
	block   bool
	started chan struct{}

	mu    sync.Mutex
	batch [][]model.DownloadRequest
}

func newStubRunner(outcome model.Outcome) *stubRunner {
	return &stubRunner{outcome: outcome, started: make(chan struct{}, 1)}
}

func (s *stubRunner) Run(ctx context.Context, req model.DownloadRequest, hooks Hooks) model.Outcome {
	return s.RunBatch(ctx, []model.DownloadRequest{req}, hooks)
}

func (s *stubRunner) RunBatch(ctx context.Context, reqs []model.DownloadRequest, hooks Hooks) model.Outcome {
	s.mu.Lock()
	s.batch = append(s.batch, reqs)
	s.mu.Unlock()

	hooks.line("[download] starting")
	hooks.progress(30)
	s.started <- struct{}{}

	if s.block {
		<-ctx.Done()
		return model.CancelledOutcome(len(reqs), 0, 0)
	}
	return s.outcome
}

type updateLog struct {
	mu       sync.Mutex
	statuses []model.TaskStatus
	last     *model.DownloadTask
	lines    []string
}

func (u *updateLog) onUpdate(task *model.DownloadTask) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.statuses = append(u.statuses, task.Status)
	u.last = task
}

func (u *updateLog) onLine(_ string, line string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.lines = append(u.lines, line)
}

func newWatchedService(r TaskRunner) (*Service, *updateLog) {
	log := &updateLog{}
	svc := NewService(r, nil)
	svc.SetUpdateCallback(log.onUpdate)
	svc.SetLineCallback(log.onLine)
	return svc, log
}

func fileRequest(url string) model.DownloadRequest {
	return model.DownloadRequest{SourceURL: url, File: "/tmp/a.mp4", Kind: model.MediaKindVideo}
}

func TestService_StartSingle_Success(t *testing.T) {
	runner := newStubRunner(model.SuccessOutcome(1, 1))
	svc, log := newWatchedService(runner)

	task, err := svc.StartSingle(fileRequest("https://example.com/v"))
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusPending, task.Status)
	assert.False(t, task.Batch)

	svc.Wait()

	got, ok := svc.GetTask(task.ID)
	require.True(t, ok)
	assert.Equal(t, model.TaskStatusCompleted, got.Status)
	assert.Equal(t, 100, got.Percent)
	require.NotNil(t, got.Outcome)
	assert.Equal(t, model.OutcomeSuccess, got.Outcome.Kind)
	assert.False(t, got.FinishedAt.IsZero())

	log.mu.Lock()
	defer log.mu.Unlock()
	assert.Equal(t, []model.TaskStatus{
		model.TaskStatusStarting,
		model.TaskStatusDownloading,
		model.TaskStatusDownloading,
		model.TaskStatusCompleted,
	}, log.statuses)
	assert.Equal(t, []string{"[download] starting"}, log.lines)

	_, active := svc.ActiveTask()
	assert.False(t, active)
}

func TestService_Failure_RecordsDiagnostic(t *testing.T) {
	runner := newStubRunner(model.FailureOutcome("ERROR: boom\n", 2, 1, 0, 0))
	svc, _ := newWatchedService(runner)

	task, err := svc.StartSingle(fileRequest("https://example.com/v"))
	require.NoError(t, err)
	svc.Wait()

	got, _ := svc.GetTask(task.ID)
	assert.Equal(t, model.TaskStatusError, got.Status)
	assert.Equal(t, "ERROR: boom\n", got.LastError)
	assert.Equal(t, 30, got.Percent)
}

func TestService_OnlyOneTaskAtATime(t *testing.T) {
	runner := newStubRunner(model.Outcome{})
	runner.block = true
	svc, _ := newWatchedService(runner)

	first, err := svc.StartSingle(fileRequest("https://example.com/1"))
	require.NoError(t, err)
	<-runner.started

	_, err = svc.StartBatch([]model.DownloadRequest{fileRequest("https://example.com/2")})
	assert.ErrorIs(t, err, ErrTaskInProgress)

	active, ok := svc.ActiveTask()
	require.True(t, ok)
	assert.Equal(t, first.ID, active.ID)

	require.NoError(t, svc.StopTask(first.ID))
	svc.Wait()

	got, _ := svc.GetTask(first.ID)
	assert.Equal(t, model.TaskStatusStopped, got.Status)
	assert.Equal(t, model.OutcomeCancelled, got.Outcome.Kind)

	// a new task can start once the previous one is done
	runner.block = false
	runner.outcome = model.SuccessOutcome(1, 1)
	second, err := svc.StartSingle(fileRequest("https://example.com/3"))
	require.NoError(t, err)
	svc.Wait()

	all := svc.GetAllTasks()
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestService_StartBatch(t *testing.T) {
	runner := newStubRunner(model.SkipOutcome("Skipped 1 private/unavailable video(s).", 3, 2, 1))
	svc, log := newWatchedService(runner)

	reqs := BatchRequests([]string{"a", "b", "c"}, "/dl", model.MediaKindAudio, "Best")
	task, err := svc.StartBatch(reqs)
	require.NoError(t, err)
	assert.True(t, task.Batch)
	assert.Equal(t, []string{"a", "b", "c"}, task.URLs)
	assert.Equal(t, model.MediaKindAudio, task.Kind)
	svc.Wait()

	require.Len(t, runner.batch, 1)
	assert.Len(t, runner.batch[0], 3)

	log.mu.Lock()
	defer log.mu.Unlock()
	require.NotNil(t, log.last)
	assert.Equal(t, model.TaskStatusCompleted, log.last.Status)
	assert.Equal(t, 1, log.last.Outcome.Skipped)
}

func TestService_StartValidation(t *testing.T) {
	svc := NewService(newStubRunner(model.SuccessOutcome(1, 1)), nil)

	_, err := svc.StartBatch(nil)
	assert.ErrorIs(t, err, ErrNoRequests)

	_, err = svc.StartSingle(model.DownloadRequest{SourceURL: "x", Kind: model.MediaKindVideo})
	assert.Error(t, err)
	assert.Empty(t, svc.GetAllTasks())
}

func TestService_StopTask_Errors(t *testing.T) {
	svc := NewService(newStubRunner(model.SuccessOutcome(1, 1)), nil)

	err := svc.StopTask("task-missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	task, err := svc.StartSingle(fileRequest("https://example.com/v"))
	require.NoError(t, err)
	svc.Wait()

	err = svc.StopTask(task.ID)
	assert.ErrorIs(t, err, ErrTaskNotActive)
}

func TestService_SnapshotsAreIndependent(t *testing.T) {
	svc := NewService(newStubRunner(model.SuccessOutcome(1, 1)), nil)

	task, err := svc.StartSingle(fileRequest("https://example.com/v"))
	require.NoError(t, err)
	svc.Wait()

	got, _ := svc.GetTask(task.ID)
	got.URLs[0] = "mutated"
	got.Status = model.TaskStatusError

	again, _ := svc.GetTask(task.ID)
	assert.Equal(t, "https://example.com/v", again.URLs[0])
	assert.Equal(t, model.TaskStatusCompleted, again.Status)
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	time.Sleep(time.Millisecond)
	id2 := generateTaskID()

	assert.NotEqual(t, id1, id2)
	assert.True(t, strings.HasPrefix(id1, TaskIDPrefix))
	assert.Len(t, id1, len(TaskIDPrefix)+36)
	assert.Less(t, id1, id2)
}
