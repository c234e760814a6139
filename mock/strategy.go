package mock

import (
	"context"

	"github.com/fwojciec/docinventory"
)

var _ docinventory.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of docinventory.Strategy.
type Strategy struct {
	PlatformFn func() docinventory.Platform
	HarvestFn  func(ctx context.Context) (*docinventory.Inventory, error)
}

func (s *Strategy) Platform() docinventory.Platform {
	return s.PlatformFn()
}

func (s *Strategy) Harvest(ctx context.Context) (*docinventory.Inventory, error) {
	return s.HarvestFn(ctx)
}
