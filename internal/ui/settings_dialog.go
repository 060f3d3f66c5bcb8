package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/yt-grabber/internal/config"
	"github.com/ytget/yt-grabber/internal/platform"
)

// SettingsDialog edits the default download directory
type SettingsDialog struct {
	store        config.Store
	window       fyne.Window
	localization *Localization
	logger       *zap.Logger
	dialog       *dialog.ConfirmDialog
	onSaved      func(dir string)

	downloadDirEntry *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(store config.Store, window fyne.Window, loc *Localization, logger *zap.Logger) *SettingsDialog {
	sd := &SettingsDialog{
		store:        store,
		window:       window,
		localization: loc,
		logger:       logger,
	}

	sd.createUI()
	return sd
}

// SetOnSaved registers a callback run after the directory was persisted
func (sd *SettingsDialog) SetOnSaved(fn func(dir string)) {
	sd.onSaved = fn
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder(sd.localization.GetText(KeyDefaultDirectory))

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDefaultDirectory)+":"),
		downloadDirRow,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	settings, err := sd.store.Load()
	if err != nil {
		sd.logger.Warn("failed to load settings", zap.Error(err))
		sd.downloadDirEntry.SetText("")
		return
	}
	sd.downloadDirEntry.SetText(settings.DefaultDirectory)
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	dir := strings.TrimSpace(sd.downloadDirEntry.Text)
	if dir != "" {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
	}
	if err := config.SetDefaultDirectory(sd.store, dir); err != nil {
		sd.logger.Error("failed to save settings", zap.Error(err))
		dialog.ShowError(err, sd.window)
		return
	}

	sd.logger.Info("default directory saved", zap.String("dir", dir))
	if sd.onSaved != nil {
		sd.onSaved(dir)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
