package service

import "errors"

// ErrSessionNotFound signals that a referenced session identifier does not
// exist. The message-post path never returns it (get-or-create semantics).
var ErrSessionNotFound = errors.New("Session not found")

// CompletionError is the single failure category for the external completion
// call: auth, network, timeout and malformed replies all land here. The
// underlying detail is surfaced to the caller.
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string {
	return "Failed to get response from Gemini: " + e.Err.Error()
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}
