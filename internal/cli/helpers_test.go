package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/runoshun/launchpad/internal/app"
	"github.com/runoshun/launchpad/internal/domain"
	"github.com/runoshun/launchpad/internal/testutil"
	"github.com/stretchr/testify/require"
)

// newTestContainer creates an app.Container rooted in a temp dir with a mock launcher.
func newTestContainer(t *testing.T) (*app.Container, *testutil.MockLauncher) {
	t.Helper()
	root := t.TempDir()
	c := app.New(app.Config{
		ConfigDir: filepath.Join(root, "config"),
		DataDir:   filepath.Join(root, "data"),
	})
	t.Cleanup(func() { _ = c.Close() })
	launcher := &testutil.MockLauncher{}
	c.Launcher = launcher
	c.OS = domain.OSLinux
	return c, launcher
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, c *app.Container, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(c, "test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// mustRun is run that fails the test on error.
func mustRun(t *testing.T, c *app.Container, args ...string) string {
	t.Helper()
	out, err := run(t, c, args...)
	require.NoError(t, err)
	return out
}
