package github

import (
	"fmt"

	gogithub "github.com/google/go-github/v48/github"
	"github.com/pkg/errors"
)

// FetchError is the only failure a repository listing reports. A
// transport error, a non-success status and an undecodable body all
// look the same to callers.
type FetchError struct {
	Username   string
	StatusCode int // Zero when no response was received.
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to list repositories for %q: status %d: %v", e.Username, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("failed to list repositories for %q: %v", e.Username, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Cause satisfies github.com/pkg/errors.Cause.
func (e *FetchError) Cause() error {
	return e.Err
}

func newFetchError(username string, resp *gogithub.Response, err error) *FetchError {
	fe := &FetchError{
		Username: username,
		Err:      errors.WithStack(err),
	}
	if resp != nil && resp.Response != nil {
		fe.StatusCode = resp.StatusCode
	}
	var er *gogithub.ErrorResponse
	if fe.StatusCode == 0 && errors.As(err, &er) && er.Response != nil {
		fe.StatusCode = er.Response.StatusCode
	}
	return fe
}
