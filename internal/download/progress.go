package download

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// ProgressLineMarker identifies lines that carry a progress percentage
const ProgressLineMarker = "frame="

// ParseProgressLine is the single place that understands the downloader's
// progress output. ok is false for lines without the "frame=" marker. For
// marker lines the percentage is the last whitespace-separated token before
// the first "%", truncated to an integer; anything unparsable yields 0.
//
// This follows the tool's current log format and will need updating if that
// format changes.
func ParseProgressLine(line string) (percent int, ok bool) {
	if !strings.Contains(line, ProgressLineMarker) {
		return 0, false
	}

	idx := strings.Index(line, "%")
	if idx < 0 {
		return 0, true
	}

	fields := strings.Fields(line[:idx])
	if len(fields) == 0 {
		return 0, true
	}

	value, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, true
	}

	return clampPercent(int(value)), true
}

// BatchPercent is the overall progress after item i (zero-based) of n finished
func BatchPercent(i, n int) int {
	if n <= 0 {
		return 0
	}
	return clampPercent(int(math.Round(float64(i+1) / float64(n) * 100)))
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// scanOutputLines is a bufio.SplitFunc that breaks on "\n", "\r\n" and bare
// "\r", since progress output rewrites the current line with carriage returns.
func scanOutputLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\r' {
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[:i], nil
				}
				return i + 1, data[:i], nil
			}
			if !atEOF {
				// need one more byte to tell "\r" from "\r\n"
				return 0, nil, nil
			}
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
