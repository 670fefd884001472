package api

import "fmt"

// Error is a structured backend error: the HTTP status plus the message the
// backend put in its error body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
}
