// Package launcher opens files with the desktop's default application.
package launcher

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

var (
	// ErrEmptyPath is returned when there is nothing to open.
	ErrEmptyPath = errors.New("empty path")
	// ErrEmptyCommand is returned by Run for a blank command line.
	ErrEmptyCommand = errors.New("empty command")
)

// Launcher starts a default-handler command with a single path argument.
type Launcher struct {
	command []string
	start   func(*exec.Cmd) error
}

// New creates a Launcher for command, split on whitespace. An empty command
// selects the platform default.
func New(command string) *Launcher {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		fields = DefaultCommand(runtime.GOOS)
	}
	return &Launcher{
		command: fields,
		start:   startDetached,
	}
}

// DefaultCommand returns the "open with default application" command for goos.
func DefaultCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"cmd", "/c", "start", ""}
	default:
		return []string{"xdg-open"}
	}
}

// Command returns the launcher command line, without the path.
func (l *Launcher) Command() []string {
	return append([]string(nil), l.command...)
}

// Open launches the default handler for path without waiting for it.
func (l *Launcher) Open(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	return l.run(l.command, path)
}

// Run starts command, split on whitespace, with args appended. It does not
// wait for the process.
func (l *Launcher) Run(command string, args ...string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ErrEmptyCommand
	}
	return l.run(fields, args...)
}

func (l *Launcher) run(command []string, args ...string) error {
	argv := make([]string, 0, len(command)-1+len(args))
	argv = append(argv, command[1:]...)
	argv = append(argv, args...)
	cmd := exec.Command(command[0], argv...)
	if err := l.start(cmd); err != nil {
		return fmt.Errorf("%s: %w", command[0], err)
	}
	return nil
}

// startDetached starts cmd and reaps it in the background.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
