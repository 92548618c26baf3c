package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sandevgo/pluto/internal/config"
	"github.com/sandevgo/pluto/pkg/env"
	"github.com/sandevgo/pluto/pkg/log"
	"github.com/spf13/cobra"
)

var ErrEnvExists = errors.New("env file already exists")

var (
	initForce bool
	initPrint bool
)

var initCmd = &cobra.Command{
	Use:          "init",
	Short:        "Write the current settings to the runtime .env file",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Setup logger
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		cfg, err := config.ParseAppConfig()
		if err != nil {
			return err
		}

		if initPrint {
			return printInitEnv(cmd.OutOrStdout(), cfg)
		}

		path := cfg.GetEnvPath()
		if err := writeInitEnv(path, cfg, initForce); err != nil {
			return err
		}

		logger.Info().Str("path", path).Msg("settings written")
		return nil
	},
}

// writeInitEnv writes cfg to path. An existing file is only replaced when
// force is set.
func writeInitEnv(path string, cfg any, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s, use --force to overwrite it", ErrEnvExists, path)
	}

	if err := env.WriteFile(path, cfg); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func printInitEnv(w io.Writer, cfg any) error {
	content, err := env.MarshalEnv(cfg)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, content)
	return err
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing .env file")
	initCmd.Flags().BoolVarP(&initPrint, "print", "p", false, "print the .env content instead of writing it")
	rootCmd.AddCommand(initCmd)
}
