package command

import (
	"context"

	"github.com/atomicstack/git-branch-control/internal/logging/events"
)

// Request encapsulates an action invocation.
type Request struct {
	ID    string
	Label string
	Run   func(context.Context) error
}

// Bus coordinates the execution of git-backed actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs the request synchronously while emitting trace logs.
func (b *Bus) Execute(ctx context.Context, req Request) error {
	events.Command.Queue(req.ID, req.Label)
	if req.Run == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	err := req.Run(ctx)
	events.Command.Result(req.ID, req.Label, err)
	if err != nil {
		events.Action.Error(err)
	}
	return err
}
