package model

import (
	"testing"
	"time"
)

func TestDownloadTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		task     DownloadTask
		expected string
	}{
		{DownloadTask{URLs: []string{"https://youtube.com/watch?v=123"}}, "https://youtube.com/watch?v=123"},
		{DownloadTask{URLs: []string{"a", "b", "c"}, Batch: true, Kind: MediaKindAudio}, "3 items (audio)"},
		{DownloadTask{}, ""},
	}

	for _, test := range tests {
		result := test.task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() = '%s', expected '%s'", result, test.expected)
		}
	}
}

func TestDownloadTask_GetElapsedString(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		started  time.Time
		finished time.Time
		expected string
	}{
		{time.Time{}, time.Time{}, "—"},
		{start, start.Add(90 * time.Second), "01:30"},
		{start, start.Add(3661 * time.Second), "01:01:01"},
	}

	for _, test := range tests {
		task := &DownloadTask{StartedAt: test.started, FinishedAt: test.finished}
		if result := task.GetElapsedString(); result != test.expected {
			t.Errorf("GetElapsedString() = %s, expected %s", result, test.expected)
		}
	}
}

func TestDownloadTask_Clone(t *testing.T) {
	outcome := SuccessOutcome(1, 1)
	task := &DownloadTask{
		ID:      "test-123",
		URLs:    []string{"https://youtube.com/watch?v=test"},
		Status:  TaskStatusCompleted,
		Outcome: &outcome,
	}

	clone := task.Clone()
	clone.URLs[0] = "changed"
	clone.Outcome.Kind = OutcomeFailure

	if task.URLs[0] != "https://youtube.com/watch?v=test" {
		t.Errorf("clone shares URL slice with original")
	}
	if task.Outcome.Kind != OutcomeSuccess {
		t.Errorf("clone shares outcome with original")
	}
	if clone.ID != task.ID {
		t.Errorf("Expected ID to be '%s', got '%s'", task.ID, clone.ID)
	}
}
