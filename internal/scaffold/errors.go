package scaffold

import (
	"errors"
	"fmt"
)

// Kind classifies a scaffold failure.
type Kind int

const (
	// KindPrecondition is a user-correctable input problem detected before
	// anything is written.
	KindPrecondition Kind = iota
	// KindFilesystem is a failed directory creation or file write.
	KindFilesystem
	// KindInternal is a defect: generated content failed its own checks.
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindFilesystem:
		return "filesystem"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// ErrDestinationExists is matched by errors.Is when the destination path is
// already present.
var ErrDestinationExists = errors.New("destination already exists")

// Error is the error type returned by Orchestrator.Run.
type Error struct {
	Kind Kind
	Op   string // "create", "write", "check", "compose"
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrDestinationExists):
		return fmt.Sprintf("destination '%s' already exists", e.Path)
	case e.Op == "create":
		return fmt.Sprintf("failed to create '%s': %v", e.Path, e.Err)
	case e.Op == "write":
		return fmt.Sprintf("failed to write to '%s': %v", e.Path, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s '%s': %v", e.Op, e.Path, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err if it is or wraps an *Error.
func KindOf(err error) (Kind, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}
