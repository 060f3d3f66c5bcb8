package ui

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/yt-grabber/internal/config"
	"github.com/ytget/yt-grabber/internal/download"
	"github.com/ytget/yt-grabber/internal/model"
	"github.com/ytget/yt-grabber/internal/platform"
)

// Preference keys stored through the Fyne app preferences
const (
	PreferenceLanguage = "language"
	PreferenceTheme    = "theme"
	ThemeMaterial      = "material"
	ThemeCompact       = "compact"
)

// Prober resolves a URL to a media item or collection
type Prober interface {
	Probe(ctx context.Context, url string) (*model.ProbeResult, error)
}

// ThumbnailLoader fetches preview images
type ThumbnailLoader interface {
	Fetch(ctx context.Context, url string) (*platform.Thumbnail, error)
}

// Deps groups the services the window drives
type Deps struct {
	Downloads  download.Downloader
	Prober     Prober
	Store      config.Store
	Thumbnails ThumbnailLoader
	Logger     *zap.Logger
}

// RootUI represents the main UI structure. Fields below the widgets are
// only touched on the Fyne UI goroutine.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	downloads    download.Downloader
	prober       Prober
	store        config.Store
	thumbnails   ThumbnailLoader
	logger       *zap.Logger
	localization *Localization

	urlEntry      *widget.Entry
	checkBtn      *widget.Button
	settingsBtn   *widget.Button
	infoLabel     *widget.Label
	thumbnail     *canvas.Image
	formatLabel   *widget.Label
	formatSelect  *widget.Select
	qualityLabel  *widget.Label
	qualitySelect *widget.Select
	videoBtn      *widget.Button
	audioBtn      *widget.Button
	batchVideoBtn *widget.Button
	batchAudioBtn *widget.Button
	stopBtn       *widget.Button
	previewBtn    *widget.Button
	openFileBtn   *widget.Button
	openFolderBtn *widget.Button
	progressBar   *widget.ProgressBar
	consoleTitle  *widget.Label
	consoleLabel  *widget.Label
	consoleScroll *container.Scroll
	historyTitle  *widget.Label
	historyList   *widget.List

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	probeResult     *model.ProbeResult
	probing         bool
	activeTaskID    string
	lastOutput      string
	lastOutputIsDir bool
	tasks           []*model.DownloadTask
	console         *consoleBuffer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, deps Deps) *RootUI {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(app.Preferences().StringWithFallback(PreferenceLanguage, "en"))

	ui := &RootUI{
		window:       window,
		app:          app,
		downloads:    deps.Downloads,
		prober:       deps.Prober,
		store:        deps.Store,
		thumbnails:   deps.Thumbnails,
		logger:       logger,
		localization: localization,
		tasks:        deps.Downloads.GetAllTasks(),
		console:      newConsoleBuffer(ConsoleMaxLines),
	}

	ui.applyTheme(app.Preferences().StringWithFallback(PreferenceTheme, ThemeCompact))
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.downloads.SetUpdateCallback(ui.onTaskUpdate)
	ui.downloads.SetLineCallback(ui.onTaskLine)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()
	loc := ui.localization

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(loc.GetText(KeyEnterURL))
	ui.urlEntry.Validator = validateURL
	ui.urlEntry.OnSubmitted = func(string) { ui.onCheckClick() }

	ui.checkBtn = widget.NewButton(loc.GetText(KeyCheckURL), ui.onCheckClick)
	ui.checkBtn.Importance = widget.HighImportance
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	ui.infoLabel = widget.NewLabel("")
	ui.infoLabel.Wrapping = fyne.TextWrapWord
	ui.thumbnail = canvas.NewImageFromImage(nil)
	ui.thumbnail.FillMode = canvas.ImageFillContain
	ui.thumbnail.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	ui.thumbnail.Hide()

	ui.videoBtn = widget.NewButton(IconVideo+" "+loc.GetText(KeyDownloadVideo), func() { ui.onDownloadSingle(model.MediaKindVideo) })
	ui.audioBtn = widget.NewButton(IconMusic+" "+loc.GetText(KeyDownloadAudio), func() { ui.onDownloadSingle(model.MediaKindAudio) })
	ui.batchVideoBtn = widget.NewButton(loc.GetText(KeyBatchVideo), func() { ui.onDownloadBatch(model.MediaKindVideo) })
	ui.batchAudioBtn = widget.NewButton(loc.GetText(KeyBatchAudio), func() { ui.onDownloadBatch(model.MediaKindAudio) })
	ui.stopBtn = widget.NewButton(IconStop+" "+loc.GetText(KeyStop), ui.onStopClick)
	ui.stopBtn.Importance = widget.DangerImportance
	ui.previewBtn = widget.NewButton(IconPlay+" "+loc.GetText(KeyPreview), ui.onPreview)
	ui.openFileBtn = widget.NewButton(IconFile+" "+loc.GetText(KeyOpenFile), ui.onOpenFile)
	ui.openFileBtn.Disable()
	ui.openFolderBtn = widget.NewButton(IconFolder+" "+loc.GetText(KeyOpenFolder), ui.onOpenFolder)
	ui.openFolderBtn.Disable()

	ui.formatLabel = widget.NewLabel(loc.GetText(KeyFormat))
	ui.formatSelect = widget.NewSelect(formatChoices(nil), nil)
	ui.formatSelect.SetSelected(NoFormatOption)
	ui.formatSelect.OnChanged = func(string) { ui.updateActions() }

	ui.qualityLabel = widget.NewLabel(loc.GetText(KeyQuality))
	ui.qualitySelect = widget.NewSelect(download.QualityTiers(), nil)
	ui.qualitySelect.SetSelected(download.QualityBest)

	ui.progressBar = widget.NewProgressBar()

	ui.consoleTitle = widget.NewLabelWithStyle(loc.GetText(KeyConsole), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.consoleLabel = widget.NewLabel("")
	ui.consoleLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.consoleLabel.Wrapping = fyne.TextWrapBreak
	ui.consoleScroll = container.NewVScroll(ui.consoleLabel)
	ui.consoleScroll.SetMinSize(fyne.NewSize(0, ConsoleMinHeight))

	ui.historyTitle = widget.NewLabelWithStyle(loc.GetText(KeyHistory), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.historyList = widget.NewList(
		func() int { return len(ui.tasks) },
		func() fyne.CanvasObject {
			row := NewTaskRow(nil, ui.localization)
			row.SetOnStop(ui.onStopTask)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			// Newest first
			idx := len(ui.tasks) - 1 - id
			if idx < 0 || idx >= len(ui.tasks) {
				return
			}
			obj.(*TaskRow).UpdateTask(ui.tasks[idx])
		},
	)

	urlRow := container.NewBorder(nil, nil, ui.settingsBtn, ui.checkBtn, ui.urlEntry)
	infoRow := container.NewBorder(nil, nil, ui.thumbnail, nil, ui.infoLabel)
	pickers := container.NewGridWithColumns(2,
		container.NewBorder(nil, nil, ui.formatLabel, nil, ui.formatSelect),
		container.NewBorder(nil, nil, ui.qualityLabel, nil, ui.qualitySelect),
	)
	actions := container.NewGridWithColumns(4,
		ui.videoBtn, ui.audioBtn, ui.previewBtn, ui.stopBtn,
		ui.batchVideoBtn, ui.batchAudioBtn, ui.openFileBtn, ui.openFolderBtn,
	)
	top := container.NewVBox(urlRow, ui.notificationContainer, infoRow, pickers, actions, ui.progressBar)

	consolePane := container.NewBorder(ui.consoleTitle, nil, nil, nil, ui.consoleScroll)
	historyPane := container.NewBorder(ui.historyTitle, nil, nil, nil, ui.historyList)
	split := container.NewVSplit(consolePane, historyPane)
	split.Offset = 0.6

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, split))
	ui.updateActions()
	ui.logger.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	loc := ui.localization
	settingsItem := fyne.NewMenuItem(loc.GetText(KeySettings), ui.onShowSettings)

	currentTheme := ui.app.Preferences().StringWithFallback(PreferenceTheme, ThemeCompact)
	compactItem := fyne.NewMenuItem(loc.GetText(KeyThemeDefault), func() { ui.onThemeChange(ThemeCompact) })
	compactItem.Checked = currentTheme != ThemeMaterial
	materialItem := fyne.NewMenuItem(loc.GetText(KeyThemeMaterial), func() { ui.onThemeChange(ThemeMaterial) })
	materialItem.Checked = currentTheme == ThemeMaterial
	themeMenu := fyne.NewMenu(loc.GetText(KeyTheme), compactItem, materialItem)

	languageMenu := fyne.NewMenu(loc.GetText(KeyLanguage))
	languages := loc.GetAvailableLanguages()
	for _, code := range slices.Sorted(maps.Keys(languages)) {
		langCode := code
		langItem := fyne.NewMenuItem(languages[code], func() { ui.onLanguageChange(langCode) })
		langItem.Checked = loc.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(loc.GetText(KeyFile), settingsItem),
		themeMenu,
		languageMenu,
	))
}

func (ui *RootUI) applyTheme(name string) {
	if name == ThemeMaterial {
		ui.app.Settings().SetTheme(NewMaterialTheme())
		return
	}
	ui.app.Settings().SetTheme(NewCompactTheme())
}

func (ui *RootUI) onThemeChange(name string) {
	ui.app.Preferences().SetString(PreferenceTheme, name)
	ui.applyTheme(name)
	ui.createMenu()
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.app.Preferences().SetString(PreferenceLanguage, langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	loc := ui.localization
	ui.window.SetTitle(loc.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(loc.GetText(KeyEnterURL))
	ui.checkBtn.SetText(loc.GetText(KeyCheckURL))
	ui.videoBtn.SetText(IconVideo + " " + loc.GetText(KeyDownloadVideo))
	ui.audioBtn.SetText(IconMusic + " " + loc.GetText(KeyDownloadAudio))
	ui.batchVideoBtn.SetText(loc.GetText(KeyBatchVideo))
	ui.batchAudioBtn.SetText(loc.GetText(KeyBatchAudio))
	ui.stopBtn.SetText(IconStop + " " + loc.GetText(KeyStop))
	ui.previewBtn.SetText(IconPlay + " " + loc.GetText(KeyPreview))
	ui.openFileBtn.SetText(IconFile + " " + loc.GetText(KeyOpenFile))
	ui.openFolderBtn.SetText(IconFolder + " " + loc.GetText(KeyOpenFolder))
	ui.formatLabel.SetText(loc.GetText(KeyFormat))
	ui.qualityLabel.SetText(loc.GetText(KeyQuality))
	ui.consoleTitle.SetText(loc.GetText(KeyConsole))
	ui.historyTitle.SetText(loc.GetText(KeyHistory))
	ui.infoLabel.SetText(describeProbe(ui.probeResult, loc))
}

// updateActions enables the controls valid for the current probe and task state
func (ui *RootUI) updateActions() {
	busy := ui.activeTaskID != ""
	var item *model.MediaItem
	if ui.probeResult != nil {
		item = ui.probeResult.Item
	}
	_, formatChosen := formatIDForChoice(item, ui.formatSelect.Selected)
	haveURLs := len(ui.probeResult.URLs()) > 0
	_, havePreview := previewURL(ui.probeResult)

	setEnabled(ui.checkBtn, !busy && !ui.probing)
	setEnabled(ui.videoBtn, !busy && item != nil && formatChosen)
	setEnabled(ui.audioBtn, !busy && item != nil)
	setEnabled(ui.batchVideoBtn, !busy && haveURLs)
	setEnabled(ui.batchAudioBtn, !busy && haveURLs)
	setEnabled(ui.stopBtn, busy)
	setEnabled(ui.previewBtn, havePreview)
	setEnabled(ui.formatSelect, item != nil)
}

type disableable interface {
	Enable()
	Disable()
}

func setEnabled(w disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}

// showNotification displays a message in the notification panel under the
// URL input. Must run on the UI goroutine.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

func (ui *RootUI) showError(message string) {
	dialog.ShowError(errors.New(message), ui.window)
}

func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.store, ui.window, ui.localization, ui.logger)
	sd.SetOnSaved(func(dir string) {
		ui.appendConsole(ui.localization.GetText(KeyDefaultDirectory) + ": " + dir)
	})
	sd.Show()
}

// onCheckClick probes the entered URL in the background
func (ui *RootUI) onCheckClick() {
	rawURL := strings.TrimSpace(ui.urlEntry.Text)
	if rawURL == "" || validateURL(rawURL) != nil {
		ui.showError(ui.localization.GetText(KeyInvalidURL))
		return
	}

	ui.setProbeResult(nil)
	ui.probing = true
	ui.updateActions()
	ui.showNotification(ui.localization.GetText(KeyChecking), true)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ProbeTimeout)
		defer cancel()

		result, err := ui.prober.Probe(ctx, rawURL)
		fyne.Do(func() {
			ui.probing = false
			ui.hideNotification()
			if err != nil {
				ui.logger.Warn("probe failed", zap.String("url", rawURL), zap.Error(err))
				ui.appendConsole(err.Error())
				ui.updateActions()
				ui.showError(ui.localization.GetText(KeyProbeFailed) + ": " + err.Error())
				return
			}
			ui.setProbeResult(result)
		})

		if err == nil && result.Item != nil && result.Item.ThumbnailURL != "" && ui.thumbnails != nil {
			ui.loadThumbnail(result, result.Item.ThumbnailURL)
		}
	}()
}

// loadThumbnail runs off the UI goroutine; a result for a stale probe is dropped
func (ui *RootUI) loadThumbnail(result *model.ProbeResult, url string) {
	ctx, cancel := context.WithTimeout(context.Background(), ThumbnailTimeout)
	defer cancel()

	thumb, err := ui.thumbnails.Fetch(ctx, url)
	fyne.Do(func() {
		if ui.probeResult != result {
			return
		}
		if err != nil {
			ui.logger.Warn("thumbnail fetch failed", zap.String("url", url), zap.Error(err))
			ui.appendConsole(ui.localization.GetText(KeyThumbnailFailed) + ": " + err.Error())
			return
		}
		ui.thumbnail.Image = thumb.Image
		ui.thumbnail.Show()
		ui.thumbnail.Refresh()
	})
}

func (ui *RootUI) setProbeResult(result *model.ProbeResult) {
	ui.probeResult = result
	ui.infoLabel.SetText(describeProbe(result, ui.localization))

	var item *model.MediaItem
	if result != nil {
		item = result.Item
	}
	ui.formatSelect.Options = formatChoices(item)
	ui.formatSelect.SetSelected(NoFormatOption)
	ui.formatSelect.Refresh()

	ui.thumbnail.Image = nil
	ui.thumbnail.Hide()
	ui.updateActions()
}

func (ui *RootUI) onDownloadSingle(kind model.MediaKind) {
	if ui.probeResult == nil || ui.probeResult.Item == nil {
		ui.showError(ui.localization.GetText(KeyNothingToDownload))
		return
	}
	item := ui.probeResult.Item

	var formatID string
	if kind == model.MediaKindVideo {
		id, ok := formatIDForChoice(item, ui.formatSelect.Selected)
		if !ok {
			ui.showError(ui.localization.GetText(KeySelectQuality))
			return
		}
		formatID = id
	}

	ui.withDirectory(func(dir string) {
		file := singleDestination(dir, item.Title, kind)
		req := model.DownloadRequest{
			SourceURL:      item.WebpageURL,
			File:           file,
			Kind:           kind,
			FormatSelector: formatID,
		}
		ui.startTask(file, false, func() (*model.DownloadTask, error) {
			return ui.downloads.StartSingle(req)
		})
	})
}

func (ui *RootUI) onDownloadBatch(kind model.MediaKind) {
	urls := ui.probeResult.URLs()
	if len(urls) == 0 {
		ui.showError(ui.localization.GetText(KeyNothingToDownload))
		return
	}
	tier := ui.qualitySelect.Selected

	ui.withDirectory(func(dir string) {
		reqs := download.BatchRequests(urls, dir, kind, tier)
		ui.startTask(dir, true, func() (*model.DownloadTask, error) {
			return ui.downloads.StartBatch(reqs)
		})
	})
}

// withDirectory calls fn with the default directory, asking for one with a
// folder picker when none is configured
func (ui *RootUI) withDirectory(fn func(dir string)) {
	settings, err := ui.store.Load()
	if err != nil {
		ui.logger.Warn("failed to load settings", zap.Error(err))
	}
	if dir := settings.DefaultDirectory; err == nil && dir != "" {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		fn(dir)
		return
	}

	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		fn(uri.Path())
	}, ui.window)
}

func (ui *RootUI) startTask(output string, isDir bool, start func() (*model.DownloadTask, error)) {
	task, err := start()
	if err != nil {
		ui.logger.Warn("failed to start download", zap.Error(err))
		if errors.Is(err, download.ErrTaskInProgress) {
			dialog.ShowInformation(ui.localization.GetText(KeyAppTitle), ui.localization.GetText(KeyAlreadyRunning), ui.window)
			return
		}
		dialog.ShowError(err, ui.window)
		return
	}

	ui.activeTaskID = task.ID
	ui.lastOutput = output
	ui.lastOutputIsDir = isDir
	ui.openFileBtn.Disable()
	ui.openFolderBtn.Disable()
	ui.console.Reset()
	ui.refreshConsole()
	ui.progressBar.SetValue(0)
	ui.upsertTask(task)
	ui.updateActions()
	ui.showNotification(ui.localization.GetText(KeyDownloadStarted), true)
	ui.logger.Info("download started", zap.String("task_id", task.ID), zap.String("output", output))
}

func (ui *RootUI) onStopClick() {
	if ui.activeTaskID == "" {
		return
	}
	ui.onStopTask(ui.activeTaskID)
}

func (ui *RootUI) onStopTask(taskID string) {
	if err := ui.downloads.StopTask(taskID); err != nil {
		ui.logger.Warn("failed to stop task", zap.String("task_id", taskID), zap.Error(err))
		dialog.ShowError(err, ui.window)
		return
	}
	ui.showNotification(ui.localization.GetText(KeyStoppingDownload), true)
}

// onTaskUpdate is called from the download worker
func (ui *RootUI) onTaskUpdate(task *model.DownloadTask) {
	fyne.Do(func() {
		ui.applyTaskUpdate(task)
	})
}

// onTaskLine is called from the download worker
func (ui *RootUI) onTaskLine(_ string, line string) {
	fyne.Do(func() {
		ui.appendConsole(line)
	})
}

func (ui *RootUI) applyTaskUpdate(task *model.DownloadTask) {
	ui.upsertTask(task)
	if task.ID != ui.activeTaskID {
		return
	}

	ui.progressBar.SetValue(progressValue(task.Percent))
	if !task.Status.IsFinished() {
		return
	}

	ui.activeTaskID = ""
	ui.hideNotification()
	ui.updateActions()
	ui.onTaskFinished(task)
}

func (ui *RootUI) onTaskFinished(task *model.DownloadTask) {
	if task.Outcome == nil {
		return
	}
	outcome := *task.Outcome
	message, failed := outcomeMessage(outcome, ui.localization)
	ui.logger.Info("download finished",
		zap.String("task_id", task.ID),
		zap.String("outcome", string(outcome.Kind)),
		zap.Int("completed", outcome.Completed),
		zap.Int("skipped", outcome.Skipped))

	if failed {
		ui.showError(message)
		return
	}
	openFile, openFolder := revealActions(outcome, task.Batch)
	setEnabled(ui.openFileBtn, openFile)
	setEnabled(ui.openFolderBtn, openFolder)
	if outcome.Succeeded() {
		ui.progressBar.SetValue(1)
		ui.app.SendNotification(&fyne.Notification{
			Title:   ui.localization.GetText(KeyAppTitle),
			Content: message,
		})
	}
	dialog.ShowInformation(ui.localization.GetText(KeyAppTitle), message, ui.window)
}

func (ui *RootUI) upsertTask(task *model.DownloadTask) {
	for i, t := range ui.tasks {
		if t.ID == task.ID {
			ui.tasks[i] = task
			ui.historyList.Refresh()
			return
		}
	}
	ui.tasks = append(ui.tasks, task)
	ui.historyList.Refresh()
}

func (ui *RootUI) appendConsole(line string) {
	ui.console.Append(line)
	ui.refreshConsole()
}

func (ui *RootUI) refreshConsole() {
	ui.consoleLabel.SetText(ui.console.String())
	ui.consoleScroll.ScrollToBottom()
}

func (ui *RootUI) onPreview() {
	u, ok := previewURL(ui.probeResult)
	if !ok {
		ui.showError(ui.localization.GetText(KeyNothingToDownload))
		return
	}
	if err := ui.app.OpenURL(u); err != nil {
		ui.logger.Warn("failed to open preview", zap.String("url", u.String()), zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyPreviewFailed), err), ui.window)
	}
}

func (ui *RootUI) onOpenFile() {
	if ui.lastOutput == "" || ui.lastOutputIsDir {
		return
	}
	if err := platform.OpenFileWithDefaultApp(ui.lastOutput); err != nil {
		ui.logger.Warn("failed to open file", zap.String("path", ui.lastOutput), zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

func (ui *RootUI) onOpenFolder() {
	if ui.lastOutput == "" {
		return
	}

	var err error
	if ui.lastOutputIsDir {
		err = platform.OpenDirectory(ui.lastOutput)
	} else {
		err = platform.OpenFileInManager(ui.lastOutput)
	}
	if err != nil {
		ui.logger.Warn("failed to open folder", zap.String("path", ui.lastOutput), zap.Error(err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFolder), err), ui.window)
	}
}
