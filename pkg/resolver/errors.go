package resolver

import (
	"errors"
	"fmt"
)

// NotFoundError is returned by update and delete mutations when no record
// with the requested id exists. It is a request-level failure, unlike a
// single-record query miss, which is a plain nil result.
type NotFoundError struct {
	Kind string
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
