package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandevgo/pluto/internal/core"
	"github.com/sandevgo/pluto/pkg/log"
)

const (
	noticeUnknown       = "Invalid command!"
	noticeHandlerFailed = "There was an issue running your command"
)

var ErrHandlerPanic = errors.New("command handler panicked")

type Router struct {
	registry *Registry
	help     core.Command
	out      core.Printer
	quit     string
}

// New builds a router over registry. help is run for unknown commands and
// quit is the keyword that ends the loop.
func New(registry *Registry, help core.Command, out core.Printer, quit string) *Router {
	return &Router{
		registry: registry,
		help:     help,
		out:      out,
		quit:     quit,
	}
}

func (r *Router) Dispatch(ctx context.Context, in core.Input) core.Outcome {
	logger := log.FromCtx(ctx)

	cmd, ok := r.registry.Lookup(in.Name)
	if !ok {
		logger.Debug().Str("command", in.Name).Strs("args", in.Args).Msg("unknown command")
		r.out.NonCriticalWarn(noticeUnknown)
		if err := r.run(ctx, r.help, in.Args); err != nil {
			logger.Debug().Err(err).Msg("fallback help failed")
		}
		return core.OutcomeUnknown
	}

	if err := r.run(ctx, cmd, in.Args); err != nil {
		logger.Debug().Err(err).Str("command", cmd.Name()).Msg("command failed")
		r.out.NonCriticalWarn(noticeHandlerFailed)
		return core.OutcomeHandlerFailed
	}

	if in.Name == r.quit {
		return core.OutcomeQuit
	}
	return core.OutcomeOK
}

func (r *Router) ListCommands() []core.Command {
	return r.registry.List()
}

// run executes cmd and turns a panic into an error.
func (r *Router) run(ctx context.Context, cmd core.Command, args []string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, rec)
		}
	}()
	return cmd.Execute(ctx, args)
}
