package download

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/yt-grabber/internal/model"
)

// Runner tuning
const (
	maxLineSize  = 1024 * 1024
	waitDelay    = 5 * time.Second
	exitCodeNone = -1
)

// Hooks receive events of one task. Both are optional and are called from
// the goroutine running the task, never concurrently. Line gets every
// output line as written, blank ones included, without its terminator.
type Hooks struct {
	Progress func(percent int)
	Line     func(line string)
}

func (h Hooks) progress(p int) {
	if h.Progress != nil {
		h.Progress(p)
	}
}

func (h Hooks) line(l string) {
	if h.Line != nil {
		h.Line(l)
	}
}

// CommandFunc creates the process for one downloader invocation
type CommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// Runner runs yt-dlp subprocesses one at a time. A Runner is not meant to be
// shared by concurrent tasks writing to the same destination.
type Runner struct {
	binary  string
	logger  *zap.Logger
	command CommandFunc
}

// NewRunner creates a runner invoking the given yt-dlp binary
func NewRunner(binary string, logger *zap.Logger) *Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		binary:  binary,
		logger:  logger,
		command: exec.CommandContext,
	}
}

// SetCommandFunc replaces the process factory
func (r *Runner) SetCommandFunc(fn CommandFunc) {
	r.command = fn
}

// execResult is what one finished subprocess left behind
type execResult struct {
	exitCode int
	stderr   string
	err      error // start or I/O failure, not a non-zero exit
}

// Run downloads a single request. A private or unavailable item is reported
// as a success with skip.
func (r *Runner) Run(ctx context.Context, req model.DownloadRequest, hooks Hooks) model.Outcome {
	if err := req.Validate(); err != nil {
		return model.FailureOutcome(err.Error(), exitCodeNone, 1, 0, 0)
	}

	res := r.execute(ctx, req, hooks)
	switch {
	case ctx.Err() != nil:
		return model.CancelledOutcome(1, 0, 0)
	case res.err != nil:
		return model.FailureOutcome(res.err.Error(), exitCodeNone, 1, 0, 0)
	case res.exitCode == 0:
		return model.SuccessOutcome(1, 1)
	case IsUnavailable(res.stderr):
		r.logger.Info("skipping unavailable item", zap.String("url", req.SourceURL), zap.Int("exit_code", res.exitCode))
		return model.SkipOutcome(model.SkippedUnavailableMessage, 1, 0, 1)
	default:
		return model.FailureOutcome(res.stderr, res.exitCode, 1, 0, 0)
	}
}

// RunBatch downloads requests strictly in order. Unavailable items are
// skipped and the batch continues; any other failure aborts the remaining
// queue. After each completed or skipped item the overall percentage is
// reported through hooks.Progress.
func (r *Runner) RunBatch(ctx context.Context, reqs []model.DownloadRequest, hooks Hooks) model.Outcome {
	total := len(reqs)
	completed, skipped := 0, 0

	for i, req := range reqs {
		if ctx.Err() != nil {
			return model.CancelledOutcome(total, completed, skipped)
		}
		if err := req.Validate(); err != nil {
			return model.FailureOutcome(fmt.Sprintf("item %d: %v", i+1, err), exitCodeNone, total, completed, skipped)
		}

		res := r.execute(ctx, req, hooks)
		switch {
		case ctx.Err() != nil:
			return model.CancelledOutcome(total, completed, skipped)
		case res.err != nil:
			return model.FailureOutcome(res.err.Error(), exitCodeNone, total, completed, skipped)
		case res.exitCode == 0:
			completed++
		case IsUnavailable(res.stderr):
			skipped++
			r.logger.Info("skipping unavailable item",
				zap.String("url", req.SourceURL),
				zap.Int("index", i),
				zap.Int("total", total))
		default:
			r.logger.Warn("batch aborted",
				zap.String("url", req.SourceURL),
				zap.Int("index", i),
				zap.Int("exit_code", res.exitCode))
			return model.FailureOutcome(res.stderr, res.exitCode, total, completed, skipped)
		}

		hooks.progress(BatchPercent(i, total))
	}

	if skipped > 0 {
		reason := fmt.Sprintf("Skipped %d private/unavailable video(s).", skipped)
		return model.SkipOutcome(reason, total, completed, skipped)
	}
	return model.SuccessOutcome(total, completed)
}

// execute runs one subprocess to completion, relaying stdout lines as they
// arrive. stderr is buffered and returned once the process has exited.
func (r *Runner) execute(ctx context.Context, req model.DownloadRequest, hooks Hooks) execResult {
	args := BuildArgs(req)
	cmd := r.command(ctx, r.binary, args...)
	cmd.WaitDelay = waitDelay

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return execResult{exitCode: exitCodeNone, err: fmt.Errorf("failed to create stdout pipe: %w", err)}
	}

	r.logger.Debug("starting downloader", zap.String("binary", r.binary), zap.Strings("args", args))

	if err := cmd.Start(); err != nil {
		return execResult{exitCode: exitCodeNone, err: fmt.Errorf("failed to start %s: %w", r.binary, err)}
	}

	r.relayOutput(stdout, hooks)

	err = cmd.Wait()
	res := execResult{exitCode: 0, stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.exitCode = exitErr.ExitCode()
		} else {
			res.exitCode = exitCodeNone
			res.err = fmt.Errorf("failed waiting for %s: %w", r.binary, err)
		}
	}

	r.logger.Debug("downloader exited", zap.String("url", req.SourceURL), zap.Int("exit_code", res.exitCode))
	return res
}

// relayOutput scans stdout line by line, forwarding every raw line and progress
func (r *Runner) relayOutput(stdout io.Reader, hooks Hooks) {
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanOutputLines)

	for scanner.Scan() {
		line := scanner.Text()
		hooks.line(line)
		if percent, ok := ParseProgressLine(line); ok {
			hooks.progress(percent)
		}
	}

	if err := scanner.Err(); err != nil {
		r.logger.Warn("stopped reading downloader output", zap.Error(err))
		// keep the pipe drained so the child never blocks on a full buffer
		_, _ = io.Copy(io.Discard, stdout)
	}
}
