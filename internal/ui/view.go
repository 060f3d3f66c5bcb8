package ui

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ytget/yt-grabber/internal/model"
	"github.com/ytget/yt-grabber/internal/platform"
)

// validateURL accepts empty input and absolute http(s) URLs
func validateURL(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return errors.New("URL has no host")
	}
	return nil
}

// formatChoices returns the format picker options for item, with
// NoFormatOption first
func formatChoices(item *model.MediaItem) []string {
	choices := []string{NoFormatOption}
	if item == nil {
		return choices
	}
	for _, f := range item.Formats {
		choices = append(choices, f.Label())
	}
	return choices
}

// formatIDForChoice maps a picker label back to its format id.
// NoFormatOption and unknown labels report false.
func formatIDForChoice(item *model.MediaItem, choice string) (string, bool) {
	if item == nil || choice == "" || choice == NoFormatOption {
		return "", false
	}
	for _, f := range item.Formats {
		if f.Label() == choice {
			return f.FormatID, true
		}
	}
	return "", false
}

// previewURL is the page the Preview action opens in the browser. Only a
// probed single item with an http(s) webpage has one.
func previewURL(result *model.ProbeResult) (*url.URL, bool) {
	if result == nil || result.Item == nil {
		return nil, false
	}
	u, err := url.Parse(strings.TrimSpace(result.Item.WebpageURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, false
	}
	return u, true
}

// revealActions reports whether Open file and Open folder apply after a
// task finished with o. Only a fully successful single download leaves a
// file to open.
func revealActions(o model.Outcome, batch bool) (openFile, openFolder bool) {
	if !o.Succeeded() {
		return false, false
	}
	return !batch && o.Kind == model.OutcomeSuccess, true
}

// singleDestination is the output file of a single download of title into dir
func singleDestination(dir, title string, kind model.MediaKind) string {
	return platform.SanitizedOutputFile(dir, title, kind)
}

// describeProbe renders the one-line summary shown under the URL entry
func describeProbe(result *model.ProbeResult, loc *Localization) string {
	switch {
	case result == nil:
		return ""
	case result.Collection != nil:
		return fmt.Sprintf(loc.GetText(KeyPlaylistEntries), result.Collection.Len())
	case result.Item != nil:
		return result.Item.Title + MiddleDotSeparator +
			loc.GetText(KeyDuration) + " " + result.Item.DisplayDuration()
	default:
		return ""
	}
}

// outcomeMessage returns the dialog text for a finished task and whether it
// should be presented as an error
func outcomeMessage(o model.Outcome, loc *Localization) (string, bool) {
	switch o.Kind {
	case model.OutcomeSuccess:
		return loc.GetText(KeyDownloadCompleted), false
	case model.OutcomeSuccessWithSkip:
		if o.Total > 1 {
			return fmt.Sprintf(loc.GetText(KeyBatchSkipped), o.Skipped, o.Total), false
		}
		return loc.GetText(KeyDownloadSkipped), false
	case model.OutcomeCancelled:
		return loc.GetText(KeyDownloadCancelled), false
	default:
		return fmt.Sprintf(loc.GetText(KeyDownloadFailed), strings.TrimSpace(o.Message)), true
	}
}

// progressValue converts a percent into the 0..1 range of a progress bar
func progressValue(percent int) float64 {
	switch {
	case percent < 0:
		return 0
	case percent > 100:
		return 1
	default:
		return float64(percent) / 100
	}
}

// consoleBuffer keeps the last max lines of downloader output
type consoleBuffer struct {
	lines []string
	max   int
}

func newConsoleBuffer(max int) *consoleBuffer {
	return &consoleBuffer{max: max}
}

// Append adds a line, dropping the oldest when full. Blank lines are ignored.
func (c *consoleBuffer) Append(line string) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return
	}
	c.lines = append(c.lines, line)
	if over := len(c.lines) - c.max; c.max > 0 && over > 0 {
		c.lines = append(c.lines[:0], c.lines[over:]...)
	}
}

// Reset drops every line
func (c *consoleBuffer) Reset() {
	c.lines = c.lines[:0]
}

// String joins the kept lines
func (c *consoleBuffer) String() string {
	return strings.Join(c.lines, "\n")
}

// Len returns the number of kept lines
func (c *consoleBuffer) Len() int {
	return len(c.lines)
}
