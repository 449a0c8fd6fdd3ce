package feed

import "errors"

// Fatal error taxonomy for one pipeline run. All three abort the run;
// callers match with errors.Is. Missing or unparseable individual fields
// are not errors and default silently.
var (
	// ErrFeedUnavailable covers transport failures, timeouts and non-2xx
	// responses from the feed endpoint.
	ErrFeedUnavailable = errors.New("solar feed unavailable")

	// ErrMalformedFeed means the response body is not well-formed XML.
	ErrMalformedFeed = errors.New("malformed solar feed")

	// ErrRecordNotFound means no solar record node exists at any of the
	// known document paths.
	ErrRecordNotFound = errors.New("no solar record in feed")
)
