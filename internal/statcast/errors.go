package statcast

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingIterationKey is returned when neither game pks nor a start date
// was supplied - nothing can drive the per-request iteration. Detected before
// any I/O.
var ErrMissingIterationKey = errors.New("must pass either game_pks or start_date to drive iteration")

// ErrNotReady is returned when a post-processing hook is invoked before the
// session reached the done state
var ErrNotReady = errors.New("session has no completed dataset")

// ErrSessionUsed is returned when Search is called on a session that already
// ran - sessions are single-use
var ErrSessionUsed = errors.New("session already ran; create a new session per search")

// InvalidParameterError reports filter keys outside the recognized set.
// Detected before any I/O.
type InvalidParameterError struct {
	Keys []string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("bad search parameter(s): %s", strings.Join(e.Keys, ", "))
}

// UpstreamQueryError is a failure the service reported inside an otherwise
// successful response body, via an "error" column. The message is upstream's,
// verbatim.
type UpstreamQueryError struct {
	Message string
}

func (e *UpstreamQueryError) Error() string {
	return fmt.Sprintf("upstream query error: %s", e.Message)
}

// FetchError wraps a network-layer failure for one URL. Any single FetchError
// fails the whole session - no partial results.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
