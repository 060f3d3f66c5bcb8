package probe

import "fmt"

// ExtractionError is returned when metadata for a URL cannot be obtained
type ExtractionError struct {
	URL     string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("failed to extract %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to extract %s: %s", e.URL, e.Message)
}

// Unwrap returns the underlying cause
func (e *ExtractionError) Unwrap() error {
	return e.Err
}
