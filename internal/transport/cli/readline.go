package cli

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/chzyer/readline"
	"github.com/sandevgo/pluto/internal/core"
)

var ErrInterrupted = errors.New("interrupted")

// historyDisabled turns off readline's in-memory history.
const historyDisabled = -1

type ReadLine struct {
	rl        *readline.Instance
	closeOnce sync.Once
	closeErr  error
}

func NewReadLine(cfg core.LoopConfig) (*ReadLine, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 cfg.GetPrompt(),
		HistoryLimit:           historyDisabled,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init readline: %w", err)
	}

	return &ReadLine{rl: rl}, nil
}

// ReadLine blocks for one line. Ctrl+C on an empty prompt returns
// ErrInterrupted; Ctrl+C over typed text discards the text.
func (r *ReadLine) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return "", ErrInterrupted
			}
			return "", fmt.Errorf("line discarded: %w", err)
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", err
	}
	return line, nil
}

// Stdout is the writer to use for output while the prompt is active.
func (r *ReadLine) Stdout() io.Writer {
	return r.rl.Stdout()
}

// Close releases the terminal. It is safe to call more than once.
func (r *ReadLine) Close() error {
	r.closeOnce.Do(func() {
		if r.rl != nil {
			r.closeErr = r.rl.Close()
		}
	})
	return r.closeErr
}
