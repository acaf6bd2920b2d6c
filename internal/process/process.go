// Package process runs external commands and captures their output.
package process

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/charmbracelet/log"
)

// Runner runs a command to completion.
type Runner struct {
	Logger *log.Logger
}

// New creates a new Runner.
func New(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Run starts name with args, waits for it and returns what it wrote to
// stdout and stderr. A non-nil error is returned when the command cannot be
// started or exits unsuccessfully; the captured output is returned either way.
func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	debug := r.Logger.With("cmd", name)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	debug.Debug("cmd.start", "args", args)
	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("start %s: %w", name, err)
	}

	debug.Debug("cmd.wait")
	err := cmd.Wait()
	debug.Debug("cmd.waited", "stdout", stdout.Len(), "stderr", stderr.Len())

	if err != nil {
		return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("run %s: %w", name, err)
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}
