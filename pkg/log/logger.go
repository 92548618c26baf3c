package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
)

// NewContextWithLogger installs the diagnostic logger in ctx. It writes to
// stderr so it never interleaves with the operator's stdout session.
func NewContextWithLogger(ctx context.Context, debug bool) (context.Context, func()) {
	return NewContextWithWriter(ctx, os.Stderr, debug)
}

func NewContextWithWriter(ctx context.Context, out io.Writer, debug bool) (context.Context, func()) {
	SetDebug(debug)

	// Use a diode (ring buffer) for non-blocking logging. Closing a diode
	// closes its target too, so out is hidden behind a plain io.Writer to
	// keep stderr usable after the flush.
	wr := diode.NewWriter(struct{ io.Writer }{out}, 1000, 5*time.Millisecond, func(missed int) {
		fmt.Fprintf(os.Stderr, "Logger Dropped %d messages\n", missed)
	})

	output := zerolog.ConsoleWriter{
		Out:        wr,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(out),
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			zerolog.MessageFieldName,
		},
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Logger()

	log.Logger = logger

	// Return context and a cleanup function that drains the diode writer
	return logger.WithContext(ctx), func() {
		_ = wr.Close()
	}
}

// SetDebug switches the global level between debug and info.
func SetDebug(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// FromCtx returns the logger stored in ctx, or a disabled one.
func FromCtx(ctx context.Context) *zerolog.Logger {
	return log.Ctx(ctx)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
