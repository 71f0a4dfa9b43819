package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRoot is returned for a document without a root element.
	ErrNoRoot = errors.New("scene has no root element")
	// ErrDuplicateID is returned when two elements share an id.
	ErrDuplicateID = errors.New("duplicate element id")
	// ErrUnknownID is returned when a placement refers to a missing element.
	ErrUnknownID = errors.New("unknown element id")
)

// BuildError reports the element whose construction failed. The whole scene
// fails to load with it.
type BuildError struct {
	Path string
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("scene element %s: %v", e.Path, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
