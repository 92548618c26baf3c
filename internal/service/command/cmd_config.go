package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sandevgo/pluto/internal/core"
)

type ConfigCommand struct {
	cfg       core.AppConfig
	out       core.Printer
	formatter *ResponseFormatter
}

func NewConfigCommand(cfg core.AppConfig, out core.Printer) *ConfigCommand {
	return &ConfigCommand{
		cfg:       cfg,
		out:       out,
		formatter: NewResponseFormatter(),
	}
}

func (c *ConfigCommand) Name() string {
	return "config"
}

func (c *ConfigCommand) Aliases() []string {
	return []string{"settings"}
}

func (c *ConfigCommand) Description() string {
	return "Shows the active settings"
}

func (c *ConfigCommand) Execute(ctx context.Context, args []string) error {
	c.out.Info(fmt.Sprintf("%s %s settings", core.PlutoName, core.PlutoVersion))
	c.out.Info(c.formatter.Label("Prompt", strconv.Quote(c.cfg.GetPrompt())))
	c.out.Info(c.formatter.Label("Quit keyword", c.cfg.GetQuitKeyword()))
	c.out.Info(c.formatter.Label("Exit on EOF", strconv.FormatBool(c.cfg.IsExitOnEOF())))
	c.out.Info(c.formatter.Label("Color", strconv.FormatBool(c.cfg.IsColorEnabled())))
	c.out.Info(c.formatter.Label("Debug", strconv.FormatBool(c.cfg.IsDebug())))
	c.out.Info(c.formatter.Label("Runtime", c.cfg.GetRuntimePath()))
	c.out.Info(c.formatter.Label("Env file", c.cfg.GetEnvPath()))
	return nil
}
