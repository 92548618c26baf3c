package command

import (
	"fmt"

	"github.com/sandevgo/pluto/internal/core"
)

// NewCommands returns the built-in commands other than help.
func NewCommands(cfg core.AppConfig, console core.Console) []core.Command {
	return []core.Command{
		NewQuitCommand(cfg.GetQuitKeyword()),
		NewLogCommand(console),
		NewConfigCommand(cfg, console),
	}
}

// NewRouter registers help plus commands and returns the router over them.
func NewRouter(cfg core.LoopConfig, out core.Printer, commands []core.Command) (*Router, error) {
	registry := NewRegistry()
	help := NewHelpCommand(registry, out)

	for _, cmd := range append([]core.Command{help}, commands...) {
		if err := registry.Register(cmd); err != nil {
			return nil, fmt.Errorf("failed to register command: %w", err)
		}
	}

	if _, ok := registry.Lookup(cfg.GetQuitKeyword()); !ok {
		return nil, fmt.Errorf("quit keyword %q has no command", cfg.GetQuitKeyword())
	}
	return New(registry, help, out, cfg.GetQuitKeyword()), nil
}
