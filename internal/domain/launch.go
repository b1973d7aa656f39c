package domain

import (
	"errors"
	"fmt"
)

// LaunchSpec describes a process to start.
// It is built by the caller, consumed by a single launch, and then discarded.
type LaunchSpec struct {
	Exe  string   `json:"exe"`           // Program to run (absolute path, relative path, or name looked up in PATH)
	Cwd  string   `json:"cwd,omitempty"` // Starting directory; empty means the caller's working directory
	Args []string `json:"args"`          // Arguments passed to the program, in order
}

// HasCwd reports whether s overrides the child's working directory.
func (s LaunchSpec) HasCwd() bool {
	return s.Cwd != ""
}

// ErrLaunchFailed is matched by every error returned from a ProcessLauncher.
var ErrLaunchFailed = errors.New("launch failed")

// LaunchError reports that the operating system refused to create a process.
// The underlying cause is never classified further.
type LaunchError struct {
	Err error
	Exe string
}

// Error returns the message shown to the user verbatim.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Exe, e.Err)
}

// Unwrap returns the operating system error.
func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrLaunchFailed) true for any LaunchError.
func (e *LaunchError) Is(target error) bool {
	return target == ErrLaunchFailed
}

// NewLaunchError wraps an operating system error for the given executable.
func NewLaunchError(exe string, err error) *LaunchError {
	return &LaunchError{Exe: exe, Err: err}
}
