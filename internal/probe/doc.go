// Package probe extracts metadata for a URL through yt-dlp without
// downloading anything. A URL resolves either to a single media item with
// its video formats or to a flat collection of entry URLs.
package probe
