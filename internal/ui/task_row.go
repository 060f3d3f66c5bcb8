package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-grabber/internal/model"
)

// TaskRow is one line of the task history: title, status, percent, elapsed
// time and a stop button while the task is active
type TaskRow struct {
	widget.BaseWidget

	task         *model.DownloadTask
	localization *Localization

	titleLabel    *widget.Label
	statusLabel   *widget.Label
	progressLabel *widget.Label
	elapsedLabel  *widget.Label
	stopBtn       *widget.Button

	onStop func(taskID string)
}

// NewTaskRow creates a new task row widget
func NewTaskRow(task *model.DownloadTask, localization *Localization) *TaskRow {
	if task == nil {
		task = &model.DownloadTask{Status: model.TaskStatusPending}
	}

	tr := &TaskRow{
		task:         task,
		localization: localization,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	tr.updateFromTask()
	return tr
}

// SetOnStop sets the stop button callback
func (tr *TaskRow) SetOnStop(onStop func(taskID string)) {
	tr.onStop = onStop
}

// UpdateTask updates the row with new task data
func (tr *TaskRow) UpdateTask(task *model.DownloadTask) {
	if task == nil {
		return
	}
	tr.task = task
	tr.updateFromTask()
	tr.Refresh()
}

func (tr *TaskRow) createUI() {
	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Alignment = fyne.TextAlignTrailing
	tr.progressLabel = widget.NewLabel("")
	tr.progressLabel.Alignment = fyne.TextAlignTrailing
	tr.elapsedLabel = widget.NewLabel("")
	tr.elapsedLabel.TextStyle = fyne.TextStyle{Monospace: true}

	tr.stopBtn = widget.NewButton(IconStop, func() {
		if tr.onStop != nil && tr.task.ID != "" {
			tr.onStop(tr.task.ID)
		}
	})
	tr.stopBtn.Importance = widget.LowImportance
}

func (tr *TaskRow) updateFromTask() {
	tr.titleLabel.SetText(tr.task.GetDisplayTitle())
	tr.statusLabel.SetText(tr.task.Status.String())
	tr.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, displayPercent(tr.task)))
	tr.elapsedLabel.SetText(tr.task.GetElapsedString())

	if tr.task.Status.IsActive() && tr.task.Status != model.TaskStatusStopping {
		tr.stopBtn.Enable()
	} else {
		tr.stopBtn.Disable()
	}
}

// displayPercent is the percent shown for a task; completed tasks always show 100
func displayPercent(task *model.DownloadTask) int {
	if task.Status == model.TaskStatusCompleted {
		return 100
	}
	switch {
	case task.Percent < 0:
		return 0
	case task.Percent > 100:
		return 100
	default:
		return task.Percent
	}
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	return &taskRowRenderer{taskRow: tr}
}

type taskRowRenderer struct {
	taskRow *TaskRow
	layout  *fyne.Container
}

func (r *taskRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

func (r *taskRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	return r.layout.MinSize()
}

func (r *taskRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

func (r *taskRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

func (r *taskRowRenderer) Destroy() {}

func (r *taskRowRenderer) createLayout() {
	tr := r.taskRow

	// Fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	rightSide := container.NewHBox(
		fixedWidth(StatusLabelWidth, tr.statusLabel),
		fixedWidth(PercentLabelWidth, tr.progressLabel),
		fixedWidth(ElapsedLabelWidth, tr.elapsedLabel),
		tr.stopBtn,
	)

	r.layout = container.NewBorder(nil, nil, nil, rightSide, tr.titleLabel)
}
