package author

import (
	"fmt"

	"github.com/ignite/author-registry/internal/domain"
)

// The errors in this file are the complete set a Repository may return and
// the service propagates. The set is closed: a new failure mode that needs
// distinct handling gets a new type here, and every consumer must be
// revisited. Unknown is never reused for something callers should be able to
// distinguish.

// DuplicateError reports that an author with the same name already exists.
// The attempted insert is not visible in the store.
type DuplicateError struct {
	Name domain.AuthorName
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("author with name %s already exists", e.Name)
}

// UnknownError wraps any repository failure that is not a duplicate conflict.
// Callers must not inspect the cause beyond logging it; it may contain
// storage vocabulary that the rest of the system does not depend on.
type UnknownError struct {
	Cause error
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown author repository error: %v", e.Cause)
}

// Unwrap exposes the cause for logging via errors chains only.
func (e *UnknownError) Unwrap() error { return e.Cause }
