package command

import (
	"context"

	"github.com/sandevgo/pluto/internal/core"
)

const helpListingTitle = "Available commands:"

type HelpCommand struct {
	registry  *Registry
	out       core.Printer
	formatter *ResponseFormatter
}

func NewHelpCommand(registry *Registry, out core.Printer) *HelpCommand {
	return &HelpCommand{
		registry:  registry,
		out:       out,
		formatter: NewResponseFormatter(),
	}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Aliases() []string {
	return []string{"h", "?"}
}

func (c *HelpCommand) Description() string {
	return "Provides information about commands"
}

// Execute prints the general listing, or the summary of the command named
// by the first argument. Further arguments are ignored.
func (c *HelpCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if cmd, ok := c.registry.Lookup(args[0]); ok {
			c.out.Info(c.formatter.Summary(cmd.Name(), cmd.Description()))
			return nil
		}
	}

	c.out.Info(helpListingTitle)
	for _, cmd := range c.registry.List() {
		c.out.Info(c.formatter.Entry(cmd.Name(), cmd.Aliases(), cmd.Description()))
	}
	c.out.Info("Type 'help <command>' for a description of one command.")
	return nil
}
