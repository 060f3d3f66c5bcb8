package download

import "github.com/ytget/yt-grabber/internal/model"

// Quality tiers offered for batch downloads
const (
	QualityBest  = "Best"
	Quality1080p = "1080p"
	Quality720p  = "720p"
	Quality480p  = "480p"
	Quality360p  = "360p"
)

var qualityFormatMap = map[string]string{
	QualityBest:  "best",
	Quality1080p: "bestvideo[height<=1080]+bestaudio/best",
	Quality720p:  "bestvideo[height<=720]+bestaudio/best",
	Quality480p:  "bestvideo[height<=480]+bestaudio/best",
	Quality360p:  "bestvideo[height<=360]+bestaudio/best",
}

// QualityTiers returns the tier names in display order
func QualityTiers() []string {
	return []string{QualityBest, Quality1080p, Quality720p, Quality480p, Quality360p}
}

// FormatForQuality maps a tier name to its format selector. Unknown names
// resolve to the "Best" selector.
func FormatForQuality(tier string) string {
	if selector, ok := qualityFormatMap[tier]; ok {
		return selector
	}
	return qualityFormatMap[QualityBest]
}

// BatchRequests builds one request per URL writing title-named files into dir.
// Video requests use the selector of the given tier.
func BatchRequests(urls []string, dir string, kind model.MediaKind, tier string) []model.DownloadRequest {
	reqs := make([]model.DownloadRequest, 0, len(urls))
	for _, u := range urls {
		req := model.DownloadRequest{
			SourceURL: u,
			Directory: dir,
			Kind:      kind,
		}
		if kind == model.MediaKindVideo {
			req.FormatSelector = FormatForQuality(tier)
		}
		reqs = append(reqs, req)
	}
	return reqs
}
