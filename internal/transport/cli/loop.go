package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sandevgo/pluto/internal/core"
	"github.com/sandevgo/pluto/internal/service/command"
	"github.com/sandevgo/pluto/pkg/log"
)

const (
	noticePrompt     = "Please enter a command"
	noticeUnreadable = "Invalid command"
	noticeInvalid    = "Your command was invalid."
)

var ErrIterationPanic = errors.New("command loop iteration panicked")

// LineSource yields one operator line per call. ErrInterrupted means the
// operator asked to leave; any other error means no line was available.
type LineSource interface {
	ReadLine() (string, error)
}

type State int

const (
	StateAwaitingInput State = iota
	StateDispatching
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateDispatching:
		return "dispatching"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

type iterKind int

const (
	iterDispatched iterKind = iota
	iterQuit
	iterUnreadable
	iterFailed
	iterAbort
)

type iterResult struct {
	kind iterKind
	err  error
}

type Loop struct {
	src       LineSource
	router    core.CmdRouter
	out       core.Printer
	exitOnEOF bool
	state     State
}

func NewLoop(src LineSource, router core.CmdRouter, out core.Printer, cfg core.LoopConfig) *Loop {
	return &Loop{
		src:       src,
		router:    router,
		out:       out,
		exitOnEOF: cfg.IsExitOnEOF(),
		state:     StateAwaitingInput,
	}
}

func (l *Loop) State() State {
	return l.state
}

// Run reads and dispatches lines until the quit command has run. It returns
// nil after quit, ctx.Err() once ctx is cancelled, ErrInterrupted when the
// operator interrupts an empty prompt, and io.EOF at end of input only when
// exit on EOF is enabled. Every other failure is reported and the loop
// carries on.
func (l *Loop) Run(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	l.state = StateAwaitingInput

	// Cancelling ctx closes the source so a blocked read returns.
	if c, ok := l.src.(io.Closer); ok {
		stop := context.AfterFunc(ctx, func() {
			_ = c.Close()
		})
		defer stop()
	}

	for l.state != StateTerminated {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		res := l.iterate(ctx)
		switch res.kind {
		case iterQuit:
			l.state = StateTerminated
		case iterAbort:
			return res.err
		case iterUnreadable:
			logger.Debug().Err(res.err).Msg("no line read")
			l.out.NonCriticalWarn(noticeUnreadable)
			l.state = StateAwaitingInput
		case iterFailed:
			logger.Debug().Err(res.err).Msg("iteration failed")
			l.out.NonCriticalWarn(noticeInvalid)
			l.state = StateAwaitingInput
		default:
			l.state = StateAwaitingInput
		}
	}

	logger.Debug().Msg("command loop terminated")
	return nil
}

// iterate runs one prompt, read, parse and dispatch cycle. A panic anywhere
// in it becomes an iterFailed result.
func (l *Loop) iterate(ctx context.Context) (res iterResult) {
	defer func() {
		if rec := recover(); rec != nil {
			res = iterResult{kind: iterFailed, err: fmt.Errorf("%w: %v", ErrIterationPanic, rec)}
		}
	}()

	l.out.WriteLine(noticePrompt)
	line, err := l.src.ReadLine()
	if err != nil {
		switch {
		case ctx.Err() != nil:
			return iterResult{kind: iterAbort, err: ctx.Err()}
		case errors.Is(err, ErrInterrupted):
			return iterResult{kind: iterAbort, err: err}
		case errors.Is(err, io.EOF) && l.exitOnEOF:
			return iterResult{kind: iterAbort, err: err}
		default:
			return iterResult{kind: iterUnreadable, err: err}
		}
	}

	in := command.Parse(line)
	l.state = StateDispatching

	if l.router.Dispatch(ctx, in) == core.OutcomeQuit {
		return iterResult{kind: iterQuit}
	}
	return iterResult{kind: iterDispatched}
}

func (l *Loop) Start(ctx context.Context) error {
	return l.Run(ctx)
}

// Shutdown releases the line source when it holds a terminal.
func (l *Loop) Shutdown(ctx context.Context) error {
	if c, ok := l.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
