package srv

import (
	"context"
	"fmt"
)

// cleanupService runs a single release function on shutdown.
type cleanupService struct {
	name    string
	cleanup func() error
}

func (c *cleanupService) Start(ctx context.Context) error {
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	if c.cleanup == nil {
		return nil
	}
	if err := c.cleanup(); err != nil {
		return fmt.Errorf("cleanup %s: %w", c.name, err)
	}
	return nil
}

func (c *cleanupService) String() string {
	return "cleanup " + c.name
}

func NewCleanup(name string, fn func() error) Service {
	return &cleanupService{name: name, cleanup: fn}
}
