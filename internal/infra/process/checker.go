package process

import "github.com/runoshun/launchpad/internal/domain"

// Checker implements domain.ProcessChecker.
//
// Launched processes are not tracked, so there is nothing to correlate a PID
// with and every query reports not running. A real check needs a registry of
// handles filled in by Launcher.
type Checker struct{}

// NewChecker creates a new process checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Ensure Checker implements domain.ProcessChecker interface.
var _ domain.ProcessChecker = (*Checker)(nil)

// IsRunning always returns false.
func (c *Checker) IsRunning(_ int) (bool, error) {
	return false, nil
}
