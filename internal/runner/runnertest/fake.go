// Package runnertest provides a recording Executor for tests.
package runnertest

import (
	"context"

	"github.com/rigcpp/rig/internal/runner"
)

// Handler decides the outcome of one recorded command. It may also create
// files to simulate the command's side effects.
type Handler func(cmd runner.Command) (runner.Status, error)

// Executor records every command it is asked to run. Without a Handler every
// command exits with code 0.
type Executor struct {
	Handler  Handler
	Commands []runner.Command
}

// New returns a fake executor using h to decide outcomes.
func New(h Handler) *Executor {
	return &Executor{Handler: h}
}

func (e *Executor) Execute(_ context.Context, cmd runner.Command) (runner.Status, error) {
	e.Commands = append(e.Commands, cmd)

	if e.Handler == nil {
		return runner.Status{Exited: true}, nil
	}
	return e.Handler(cmd)
}

// Calls returns a copy of the recorded commands.
func (e *Executor) Calls() []runner.Command {
	out := make([]runner.Command, len(e.Commands))
	copy(out, e.Commands)
	return out
}

var _ runner.Executor = (*Executor)(nil)
