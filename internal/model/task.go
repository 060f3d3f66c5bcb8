package model

import (
	"fmt"
	"time"
)

// DownloadTask represents one run of the download runner, single or batch
type DownloadTask struct {
	ID         string     `json:"id"`
	URLs       []string   `json:"urls"`
	Kind       MediaKind  `json:"kind"`
	Batch      bool       `json:"batch"`
	Status     TaskStatus `json:"status"`
	Percent    int        `json:"percent"` // 0 to 100
	Outcome    *Outcome   `json:"outcome,omitempty"`
	LastError  string     `json:"last_error,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at,omitempty"`
}

// Clone returns a copy safe to hand to another goroutine
func (dt *DownloadTask) Clone() *DownloadTask {
	c := *dt
	c.URLs = append([]string(nil), dt.URLs...)
	if dt.Outcome != nil {
		o := *dt.Outcome
		c.Outcome = &o
	}
	return &c
}

// GetDisplayTitle returns the URL for single tasks and an item count for batches
func (dt *DownloadTask) GetDisplayTitle() string {
	if len(dt.URLs) == 0 {
		return ""
	}
	if !dt.Batch {
		return dt.URLs[0]
	}
	return fmt.Sprintf("%d items (%s)", len(dt.URLs), dt.Kind)
}

// GetElapsedString returns the run time as MM:SS or HH:MM:SS, or "—" before start
func (dt *DownloadTask) GetElapsedString() string {
	if dt.StartedAt.IsZero() {
		return "—"
	}
	end := dt.FinishedAt
	if end.IsZero() {
		end = time.Now()
	}
	return FormatDuration(int(end.Sub(dt.StartedAt).Seconds()))
}
