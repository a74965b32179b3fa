package services

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned after any 401 response. By the time a caller
// sees it the session has already been cleared and the global unauthorized
// handler has run, so callers only need to stop what they were doing.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a transport-level failure: a network error or a non-2xx status
// other than 401. Message carries the server-provided text when one could be
// decoded.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("request failed: %s", e.Message)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// BusinessError is a rejection the backend reports inside a 2xx response
// envelope (success=false), e.g. a plan limit. It never affects the session.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string { return e.Message }

// DisplayMessage extracts the text a form or dialog should show for err,
// falling back to the supplied generic message for anything without
// server-provided context.
func DisplayMessage(err error, fallback string) string {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Message
	}
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}
