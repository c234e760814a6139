package mock

import (
	"context"

	"github.com/fwojciec/docinventory"
)

var _ docinventory.Cloner = (*Cloner)(nil)

// Cloner is a mock implementation of docinventory.Cloner.
type Cloner struct {
	CloneFn func(ctx context.Context, repo, dest string) error
}

func (c *Cloner) Clone(ctx context.Context, repo, dest string) error {
	return c.CloneFn(ctx, repo, dest)
}
