// Package process starts detached OS processes.
package process

import (
	"os/exec"

	"github.com/runoshun/launchpad/internal/domain"
)

// Launcher implements domain.ProcessLauncher using os/exec.
// It holds no state and is safe for concurrent use.
type Launcher struct{}

// NewLauncher creates a new process launcher.
func NewLauncher() *Launcher {
	return &Launcher{}
}

// Ensure Launcher implements domain.ProcessLauncher interface.
var _ domain.ProcessLauncher = (*Launcher)(nil)

// Launch starts the process and returns once the OS has created it.
// The child's stdio is connected to the null device, it runs in its own
// session (or process group on Windows), and no handle to it is kept.
func (l *Launcher) Launch(spec domain.LaunchSpec) error {
	cmd := command(spec)
	if err := cmd.Start(); err != nil {
		return domain.NewLaunchError(spec.Exe, err)
	}
	// Nobody waits for the child; drop our reference to it.
	_ = cmd.Process.Release()
	return nil
}

// command builds the child descriptor for spec.
// Stdin, Stdout and Stderr stay nil, which os/exec maps to the null device.
func command(spec domain.LaunchSpec) *exec.Cmd {
	// #nosec G204 - launching user configured programs is the purpose of this package
	cmd := exec.Command(spec.Exe, spec.Args...)
	if spec.HasCwd() {
		cmd.Dir = spec.Cwd
	}
	cmd.SysProcAttr = detachedAttr()
	return cmd
}
