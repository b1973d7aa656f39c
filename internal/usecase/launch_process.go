// Package usecase contains the application use cases.
package usecase

import (
	"context"

	"github.com/runoshun/launchpad/internal/domain"
)

// LaunchProcessInput contains the parameters for launching a process.
type LaunchProcessInput struct {
	Spec domain.LaunchSpec
}

// LaunchProcess starts a detached process and returns without waiting for it.
type LaunchProcess struct {
	launcher domain.ProcessLauncher
}

// NewLaunchProcess creates a new LaunchProcess use case.
func NewLaunchProcess(launcher domain.ProcessLauncher) *LaunchProcess {
	return &LaunchProcess{launcher: launcher}
}

// Execute launches the process. No validation happens here: the executable,
// arguments and working directory are handed to the OS as given, and a
// failure comes back as the launcher's error unchanged.
func (uc *LaunchProcess) Execute(_ context.Context, in LaunchProcessInput) error {
	return uc.launcher.Launch(in.Spec)
}
