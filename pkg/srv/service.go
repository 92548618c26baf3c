package srv

import (
	"context"
	"fmt"

	"github.com/sandevgo/pluto/pkg/log"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts main in the calling goroutine and blocks until it returns.
// Afterwards main and then every other service is shut down, in order,
// even when ctx has already been cancelled.
func Run(ctx context.Context, main Service, others ...Service) error {
	logger := log.FromCtx(ctx)

	err := main.Start(ctx)
	if err != nil {
		logger.Debug().Err(err).Str("service", describe(main)).Msg("service stopped")
	}

	ShutdownServices(context.WithoutCancel(ctx), append([]Service{main}, others...))
	return err
}

func ShutdownServices(ctx context.Context, services []Service) {
	for _, service := range services {
		if err := service.Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Str("service", describe(service)).Msg("failed to shutdown")
		}
	}
}

func describe(s Service) string {
	if named, ok := s.(fmt.Stringer); ok {
		return named.String()
	}
	return fmt.Sprintf("%T", s)
}
