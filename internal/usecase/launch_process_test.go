package usecase_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/testutil"
	"github.com/runoshun/launchpad/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchProcess_Execute(t *testing.T) {
	t.Run("passes spec to launcher unchanged", func(t *testing.T) {
		// Setup
		launcher := &testutil.MockLauncher{}
		uc := usecase.NewLaunchProcess(launcher)
		spec := domain.LaunchSpec{Exe: "ping", Args: []string{"-c", "1", "127.0.0.1"}, Cwd: "/tmp"}

		// Execute
		err := uc.Execute(context.Background(), usecase.LaunchProcessInput{Spec: spec})

		// Assert
		require.NoError(t, err)
		require.Len(t, launcher.Launched, 1)
		assert.Equal(t, spec, launcher.Launched[0])
	})

	t.Run("does not validate an empty executable", func(t *testing.T) {
		launcher := &testutil.MockLauncher{}
		uc := usecase.NewLaunchProcess(launcher)

		err := uc.Execute(context.Background(), usecase.LaunchProcessInput{})

		require.NoError(t, err)
		assert.Len(t, launcher.Launched, 1)
	})

	t.Run("returns launcher error verbatim", func(t *testing.T) {
		launchErr := domain.NewLaunchError("missing-tool", exec.ErrNotFound)
		launcher := &testutil.MockLauncher{Err: launchErr}
		uc := usecase.NewLaunchProcess(launcher)

		err := uc.Execute(context.Background(), usecase.LaunchProcessInput{
			Spec: domain.LaunchSpec{Exe: "missing-tool"},
		})

		require.Error(t, err)
		assert.Same(t, launchErr, err)
		assert.ErrorIs(t, err, domain.ErrLaunchFailed)
		assert.True(t, errors.Is(err, exec.ErrNotFound))
	})
}

func TestIsProcessRunning_Execute(t *testing.T) {
	t.Run("reports checker result", func(t *testing.T) {
		uc := usecase.NewIsProcessRunning(&testutil.MockChecker{})

		out, err := uc.Execute(context.Background(), usecase.IsProcessRunningInput{PID: 1})

		require.NoError(t, err)
		assert.False(t, out.Running)
	})

	t.Run("propagates checker error", func(t *testing.T) {
		uc := usecase.NewIsProcessRunning(&testutil.MockChecker{Err: errors.New("boom")})

		out, err := uc.Execute(context.Background(), usecase.IsProcessRunningInput{PID: 1})

		assert.Nil(t, out)
		assert.EqualError(t, err, "boom")
	})
}
