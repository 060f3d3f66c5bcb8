package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconStop     = "■"
	IconVideo    = "🎬"
	IconMusic    = "🎵"
	IconPlay     = "▶"
	IconFile     = "📄"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
)

// NoFormatOption is the first entry of the format picker; while it is
// selected the single video download stays disabled
const NoFormatOption = "-- None --"

// Thumbnail preview size
const (
	ThumbnailWidth  float32 = 120
	ThumbnailHeight float32 = 90
)

// ConsoleMaxLines bounds the downloader output kept in the console
const ConsoleMaxLines = 500

// Pane and dialog sizing
const (
	ConsoleMinHeight     float32 = 160
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 180
)

// Layout sizing (TaskRow / lists)
const (
	StatusLabelWidth  float32 = 96
	PercentLabelWidth float32 = 48
	ElapsedLabelWidth float32 = 64
)

// Timeouts for background work started from the window
const (
	ProbeTimeout     = 90 * time.Second
	ThumbnailTimeout = 20 * time.Second
)
