// Package runner executes external programs (cmake, vcpkg, the built
// executable) and turns their termination into structured errors.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rigcpp/rig/internal/logger"
)

// Command is a single external invocation. An empty Dir runs the program in
// the current working directory.
type Command struct {
	Path string
	Args []string
	Dir  string
}

// String renders the command the way it is shown to the user: the base name
// of the program followed by its arguments.
func (c Command) String() string {
	name := filepath.Base(c.Path)
	if len(c.Args) == 0 {
		return name
	}
	return name + " " + strings.Join(c.Args, " ")
}

func (c Command) dir() string {
	if c.Dir == "" {
		return "."
	}
	return c.Dir
}

// Status describes how a child process ended. Exited is false when the
// process was killed by a signal or otherwise produced no exit code.
type Status struct {
	Exited bool
	Code   int
}

// Success reports whether the process exited normally with code 0.
func (s Status) Success() bool {
	return s.Exited && s.Code == 0
}

// Executor runs a command to completion. The error return is reserved for
// failures to start the process; how the process ended is described by Status.
type Executor interface {
	Execute(ctx context.Context, cmd Command) (Status, error)
}

// OSExecutor implements Executor using os/exec. Nil streams fall back to the
// process's own stdin, stdout and stderr so the child's output stays visible.
type OSExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSExecutor creates an executor wired to the current process's streams.
func NewOSExecutor() *OSExecutor {
	return &OSExecutor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Execute spawns cmd and blocks until it terminates. There is no timeout.
func (e *OSExecutor) Execute(ctx context.Context, cmd Command) (Status, error) {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin, c.Stdout, c.Stderr = e.Stdin, e.Stdout, e.Stderr
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(c.Args, " "))

	if err := c.Start(); err != nil {
		return Status{}, &SpawnError{Cmd: cmd.String(), Dir: cmd.dir(), Err: err}
	}

	err := c.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// Wait failed for a reason other than the child's exit status,
			// e.g. copying one of the non-file streams.
			return Status{}, &SpawnError{Cmd: cmd.String(), Dir: cmd.dir(), Err: err}
		}
	}

	// ExitCode is -1 when the process was terminated by a signal.
	code := c.ProcessState.ExitCode()
	if code < 0 {
		return Status{Exited: false}, nil
	}
	return Status{Exited: true, Code: code}, nil
}

// Verify OSExecutor implements Executor at compile time.
var _ Executor = (*OSExecutor)(nil)

// Run announces and executes cmd, mapping anything other than a clean exit to
// one of SpawnError, ExitError or AbnormalExitError.
func Run(ctx context.Context, ex Executor, cmd Command) error {
	logger.Info("[INFO] Executing: %s (in %s)\n", cmd, cmd.dir())

	status, err := ex.Execute(ctx, cmd)
	if err != nil {
		var spawnErr *SpawnError
		if errors.As(err, &spawnErr) {
			return err
		}
		return &SpawnError{Cmd: cmd.String(), Dir: cmd.dir(), Err: err}
	}
	return Check(cmd, status)
}

// Check converts a finished command's status into an error, or nil when the
// command succeeded.
func Check(cmd Command, status Status) error {
	switch {
	case !status.Exited:
		return &AbnormalExitError{Cmd: cmd.String(), Dir: cmd.dir()}
	case status.Code != 0:
		return &ExitError{Cmd: cmd.String(), Dir: cmd.dir(), Code: status.Code}
	}
	return nil
}

// SpawnError means the program could not be started at all, typically
// because it does not exist or is not executable.
type SpawnError struct {
	Cmd string
	Dir string
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute command: %s (in %s): %v", e.Cmd, e.Dir, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError means the program ran and exited with a non-zero code.
type ExitError struct {
	Cmd  string
	Dir  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command failed: %s (in %s) (exit code: %d)", e.Cmd, e.Dir, e.Code)
}

// AbnormalExitError means the program ended without an exit code, e.g. it
// was killed by a signal.
type AbnormalExitError struct {
	Cmd string
	Dir string
}

func (e *AbnormalExitError) Error() string {
	return fmt.Sprintf("command terminated abnormally: %s (in %s)", e.Cmd, e.Dir)
}
