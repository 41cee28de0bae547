package geckoterminal

import "fmt"

// APIError is returned for every non-200 response. All client (4xx) and
// server (5xx) statuses are reported uniformly: the client performs no
// status-specific branching and no retry. Transport-level failures are not
// wrapped in APIError; they propagate from the http.Client as-is.
type APIError struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int
	// Body is the raw response body text.
	Body string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("geckoterminal: unexpected status %d: %s", e.StatusCode, e.Body)
}
