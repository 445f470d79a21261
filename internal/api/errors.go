package api

import (
	"fmt"

	"github.com/Laisky/errors/v2"
)

// ErrRemoteRequest is the sentinel every RemoteRequestError unwraps to.
var ErrRemoteRequest = errors.New("remote request failed")

// RemoteRequestError reports a failed call to the content API: transport
// failure, non-200 status or an undecodable body.
type RemoteRequestError struct {
	Op         string
	URL        string
	StatusCode int // zero when no response arrived
	Err        error
}

func (e *RemoteRequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.URL, e.Err)
}

func (e *RemoteRequestError) Unwrap() error {
	return e.Err
}

// Is matches ErrRemoteRequest so callers need not know the concrete type.
func (e *RemoteRequestError) Is(target error) bool {
	return target == ErrRemoteRequest
}
