package download

import (
	"strings"

	"github.com/ytget/yt-grabber/internal/model"
)

// yt-dlp executable and flag constants
const (
	DefaultBinary = "yt-dlp"

	// DefaultUserAgent is attached to every request the downloader makes
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

	FlagAddHeader          = "--add-header"
	FlagFormat             = "-f"
	FlagRecodeVideo        = "--recode-video"
	FlagExtractAudio       = "-x"
	FlagAudioFormat        = "--audio-format"
	FlagPostprocessorArgs  = "--postprocessor-args"
	FlagOutput             = "-o"
	RecodeContainer        = "mp4"
	AudioOutputFormat      = "mp3"
	PostprocessorFFmpegKey = "ffmpeg:"
	UserAgentHeaderPrefix  = "User-Agent: "
)

// UserAgentHeader returns the value passed to --add-header
func UserAgentHeader() string {
	return UserAgentHeaderPrefix + DefaultUserAgent
}

// BuildArgs builds the yt-dlp arguments for one request. Audio requests never
// carry a format selector.
func BuildArgs(req model.DownloadRequest) []string {
	args := []string{FlagAddHeader, UserAgentHeader()}

	switch req.Kind {
	case model.MediaKindAudio:
		args = append(args, FlagExtractAudio, FlagAudioFormat, AudioOutputFormat)
	default:
		if req.FormatSelector != "" {
			args = append(args, FlagFormat, req.FormatSelector)
		}
		args = append(args, FlagRecodeVideo, RecodeContainer)
	}

	if req.HasTrim() {
		args = append(args, FlagPostprocessorArgs, PostprocessorFFmpegKey+trimArgs(req.TrimStart, req.TrimEnd))
	}

	return append(args, FlagOutput, req.OutputPath(), req.SourceURL)
}

// trimArgs renders the ffmpeg cut options; either bound may be absent
func trimArgs(start, end string) string {
	var parts []string
	if start != "" {
		parts = append(parts, "-ss", start)
	}
	if end != "" {
		parts = append(parts, "-to", end)
	}
	return strings.Join(parts, " ")
}
