package process

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunner_Run(t *testing.T) {
	runner := New(log.New(io.Discard))

	t.Run("captures stdout and stderr", func(t *testing.T) {
		requireShell(t)
		req := require.New(t)

		stdout, stderr, err := runner.Run(context.Background(), "sh", "-c", "printf out; printf err >&2")
		req.NoError(err)
		req.Equal("out", string(stdout))
		req.Equal("err", string(stderr))
	})

	t.Run("non-zero exit returns output and error", func(t *testing.T) {
		requireShell(t)
		req := require.New(t)

		stdout, stderr, err := runner.Run(context.Background(), "sh", "-c", "printf partial; printf boom >&2; exit 3")
		req.Error(err)

		var exitErr *exec.ExitError
		req.True(errors.As(err, &exitErr))
		req.Equal(3, exitErr.ExitCode())
		req.Equal("partial", string(stdout))
		req.Equal("boom", string(stderr))
	})

	t.Run("missing binary", func(t *testing.T) {
		req := require.New(t)

		_, _, err := runner.Run(context.Background(), "definitely-not-a-real-binary-xyz")
		req.Error(err)
		req.ErrorIs(err, exec.ErrNotFound)
	})

	t.Run("canceled context", func(t *testing.T) {
		requireShell(t)
		req := require.New(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := runner.Run(ctx, "sh", "-c", "sleep 5")
		req.Error(err)
	})
}
