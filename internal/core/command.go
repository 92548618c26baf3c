package core

import "context"

type CmdRouter interface {
	Dispatch(ctx context.Context, in Input) Outcome
	ListCommands() []Command
}

type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Execute(ctx context.Context, args []string) error
}
