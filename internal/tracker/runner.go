package tracker

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"
)

// Runner starts the indexing query tool and exposes its standard output.
// Closing the returned reader releases the process.
type Runner interface {
	Start(ctx context.Context, name string, args []string) (io.ReadCloser, error)
}

// CommandError describes a failure to start the query tool.
type CommandError struct {
	Cmd   string
	Stage string
	Cause error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Cmd, e.Stage, e.Cause)
}

func (e *CommandError) Unwrap() error {
	return e.Cause
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Start launches name with args, no stdin and stderr discarded.
func (ExecRunner) Start(ctx context.Context, name string, args []string) (io.ReadCloser, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = nil

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &CommandError{Cmd: name, Stage: "pipe", Cause: err}
	}

	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: name, Stage: "start", Cause: err}
	}

	return &processOutput{cmd: cmd, stdout: stdout}, nil
}

// processOutput reads a running process' stdout. Close stops reading early,
// kills the process if it is still running and reaps it.
type processOutput struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	once   sync.Once
}

func (p *processOutput) Read(b []byte) (int, error) {
	return p.stdout.Read(b)
}

func (p *processOutput) Close() error {
	p.once.Do(func() {
		_ = p.stdout.Close()
		if p.cmd.Process != nil {
			_ = p.cmd.Process.Kill()
		}
		// Exit status is not part of the output contract.
		_ = p.cmd.Wait()
	})
	return nil
}
