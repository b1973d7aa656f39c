package usecase

import (
	"context"

	"github.com/runoshun/launchpad/internal/domain"
)

// IsProcessRunningInput contains the parameters for a liveness query.
type IsProcessRunningInput struct {
	PID int
}

// IsProcessRunningOutput contains the result of a liveness query.
type IsProcessRunningOutput struct {
	Running bool
}

// IsProcessRunning answers whether a process ID is alive.
type IsProcessRunning struct {
	checker domain.ProcessChecker
}

// NewIsProcessRunning creates a new IsProcessRunning use case.
func NewIsProcessRunning(checker domain.ProcessChecker) *IsProcessRunning {
	return &IsProcessRunning{checker: checker}
}

// Execute asks the checker about the PID.
func (uc *IsProcessRunning) Execute(_ context.Context, in IsProcessRunningInput) (*IsProcessRunningOutput, error) {
	running, err := uc.checker.IsRunning(in.PID)
	if err != nil {
		return nil, err
	}
	return &IsProcessRunningOutput{Running: running}, nil
}
