package server

import (
	"errors"
	"net/http"
	"net/url"
	"path/filepath"
	"slices"
	"strings"
)

var errOutsideDownloadDirectory = errors.New("path must be inside the download directory")

// originAllowed reports whether the request may use the API. Requests
// without an Origin header come from non-browser clients; browser requests
// must be same-origin or from an explicitly allowed origin.
func originAllowed(r *http.Request, allowed []string) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if slices.Contains(allowed, origin) {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host != "" && strings.EqualFold(u.Host, r.Host)
}

// insideDirectory resolves p against root and rejects anything that would
// land outside it
func insideDirectory(root, p string) (string, error) {
	root = filepath.Clean(root)
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	p = filepath.Clean(p)

	rel, err := filepath.Rel(root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errOutsideDownloadDirectory
	}
	return p, nil
}
