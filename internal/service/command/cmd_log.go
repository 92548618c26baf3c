package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/pluto/internal/core"
)

var ErrUnknownLevel = errors.New("unknown log level")

type LogCommand struct {
	console core.Console
}

func NewLogCommand(console core.Console) *LogCommand {
	return &LogCommand{console: console}
}

func (c *LogCommand) Name() string {
	return "log"
}

func (c *LogCommand) Aliases() []string {
	return []string{"say"}
}

func (c *LogCommand) Description() string {
	return "Writes a message at a log level: log <info|debug|warn|warning|error|api|custom <label>> <message>"
}

func (c *LogCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("log needs a level and a message")
	}

	level, rest := args[0], args[1:]
	if level == "custom" {
		if len(rest) < 2 {
			return errors.New("custom log needs a label and a message")
		}
		c.console.Custom(rest[0], strings.Join(rest[1:], " "))
		return nil
	}

	msg := strings.Join(rest, " ")
	switch level {
	case "info":
		c.console.Info(msg)
	case "debug":
		c.console.Debug(msg)
	case "warn":
		c.console.NonCriticalWarn(msg)
	case "warning":
		c.console.Warning(msg)
	case "error":
		c.console.Error(msg)
	case "api":
		c.console.API(msg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
	return nil
}
