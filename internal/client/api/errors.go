package api

import "errors"

// ErrUnavailable marks transport-level failures (connection refused, DNS,
// dropped response). Match with errors.Is.
var ErrUnavailable = errors.New("service unavailable")

// Error is a request the server rejected. Message is the server-provided
// string, surfaced to the user verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
