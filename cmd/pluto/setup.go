package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/sandevgo/pluto/internal/config"
	"github.com/sandevgo/pluto/internal/core"
	"github.com/sandevgo/pluto/internal/service/command"
	"github.com/sandevgo/pluto/internal/transport/cli"
	"github.com/sandevgo/pluto/pkg/console"
	"github.com/sandevgo/pluto/pkg/log"
)

// NewSession wires config, console, commands and the line source into a
// ready to run loop.
func NewSession(ctx context.Context) (*cli.Loop, error) {
	// 1. Environment and configuration
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg, err := config.ParseAppConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.IsDebug() {
		log.SetDebug(true)
	}

	// 2. Line source
	rl, err := cli.NewReadLine(cfg)
	if err != nil {
		return nil, err
	}

	// 3. Console, styled for the real terminal but written through readline
	con := console.New(
		rl.Stdout(),
		console.WithColor(cfg.IsColorEnabled()),
		console.WithRenderer(lipgloss.NewRenderer(os.Stdout)),
	)

	// 4. Commands
	router, err := command.NewRouter(cfg, con, command.NewCommands(cfg, con))
	if err != nil {
		_ = rl.Close()
		return nil, err
	}

	con.Info(fmt.Sprintf("%s %s ready. Type 'help' for commands, '%s' to leave.",
		core.PlutoName, core.PlutoVersion, cfg.GetQuitKeyword()))

	return cli.NewLoop(rl, router, con, cfg), nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
