package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/pluto/internal/transport/cli"
	"github.com/sandevgo/pluto/pkg/log"
	"github.com/sandevgo/pluto/pkg/srv"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:     "run",
	Aliases: []string{"start"},
	Short:   "Start the interactive command loop",
	Long:    `Starts the interactive command loop. This is also what plain 'pluto' does.`,
	RunE:    runLoop,
}

func runLoop(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// logger setup
	ctx, flushLog := setupLogger(ctx)
	logger := log.FromCtx(ctx)

	loop, err := NewSession(ctx)
	if err != nil {
		flushLog()
		return err
	}

	logger.Debug().Msg("command loop started")
	err = srv.Run(ctx, loop, srv.NewCleanup("logger", func() error {
		flushLog()
		return nil
	}))

	switch {
	case err == nil,
		errors.Is(err, cli.ErrInterrupted),
		errors.Is(err, context.Canceled),
		errors.Is(err, io.EOF):
		return nil
	default:
		return err
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
