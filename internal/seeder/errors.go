package seeder

import (
	"errors"
	"fmt"
)

var ErrReferenceNotFound = errors.New("referenced entity not found")

// ReferenceError reports a foreign id that does not resolve. An empty ID
// means the referenced collection had no documents at all.
type ReferenceError struct {
	Collection string
	ID         string
}

func (e *ReferenceError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: no documents in %s", ErrReferenceNotFound, e.Collection)
	}
	return fmt.Sprintf("%s: %s %s", ErrReferenceNotFound, e.Collection, e.ID)
}

func (e *ReferenceError) Unwrap() error {
	return ErrReferenceNotFound
}
