package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docinventory"
)

// Ensure LoggingStrategy implements docinventory.Strategy.
var _ docinventory.Strategy = (*LoggingStrategy)(nil)

// LoggingStrategy wraps a Strategy and logs what each harvest collected.
type LoggingStrategy struct {
	next   docinventory.Strategy
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy.
func NewLoggingStrategy(next docinventory.Strategy, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, logger: logger}
}

// Platform delegates to the wrapped strategy.
func (s *LoggingStrategy) Platform() docinventory.Platform {
	return s.next.Platform()
}

// Harvest delegates to the wrapped strategy and logs the catalog sizes.
func (s *LoggingStrategy) Harvest(ctx context.Context) (inv *docinventory.Inventory, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"platform", s.next.Platform(),
			"duration", time.Since(begin),
			"err", err,
		}
		if inv != nil {
			c := inv.Finalize()
			attrs = append(attrs,
				"controllers", len(c.Controllers),
				"sensors", len(c.Sensors),
				"mcus", len(c.MCUs),
			)
		}
		s.logger.Info("harvest", attrs...)
	}(time.Now())
	return s.next.Harvest(ctx)
}
