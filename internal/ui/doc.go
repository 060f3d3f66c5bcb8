// Package ui contains the Fyne-based desktop window of yt-grabber. It probes
// URLs, starts single and batch downloads through the download service and
// renders progress, console output and results. Widget updates coming from
// the download worker are marshalled onto the UI goroutine with fyne.Do.
package ui
