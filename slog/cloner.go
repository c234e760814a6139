package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docinventory"
)

// Ensure LoggingCloner implements docinventory.Cloner.
var _ docinventory.Cloner = (*LoggingCloner)(nil)

// LoggingCloner wraps a Cloner with logging.
type LoggingCloner struct {
	next   docinventory.Cloner
	logger *slog.Logger
}

// NewLoggingCloner creates a new LoggingCloner.
func NewLoggingCloner(next docinventory.Cloner, logger *slog.Logger) *LoggingCloner {
	return &LoggingCloner{next: next, logger: logger}
}

// Clone delegates to the wrapped cloner and logs the operation.
func (c *LoggingCloner) Clone(ctx context.Context, repo, dest string) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("clone",
			"repo", repo,
			"dest", dest,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Clone(ctx, repo, dest)
}
