package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docinventory"
	"github.com/fwojciec/docinventory/mock"
	dislog "github.com/fwojciec/docinventory/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingStrategy_Harvest(t *testing.T) {
	t.Parallel()

	t.Run("logs catalog sizes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Strategy{
			PlatformFn: func() docinventory.Platform { return docinventory.PlatformINav },
			HarvestFn: func(ctx context.Context) (*docinventory.Inventory, error) {
				inv := docinventory.NewInventory(docinventory.DefaultKeywords())
				inv.Update([]string{"Matek F405", "Omnibus F4"},
					docinventory.NewSet("MPU6000"),
					docinventory.NewSet("STM32F405", "F722", "H743"))
				return inv, nil
			},
		}

		s := dislog.NewLoggingStrategy(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		inv, err := s.Harvest(context.Background())

		require.NoError(t, err)
		require.NotNil(t, inv)
		assert.Equal(t, docinventory.PlatformINav, s.Platform())
		output := buf.String()
		assert.Contains(t, output, "harvest")
		assert.Contains(t, output, "platform=inav")
		assert.Contains(t, output, "controllers=2")
		assert.Contains(t, output, "sensors=1")
		assert.Contains(t, output, "mcus=3")
	})

	t.Run("logs error without counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Strategy{
			PlatformFn: func() docinventory.Platform { return docinventory.PlatformArduPilot },
			HarvestFn: func(ctx context.Context) (*docinventory.Inventory, error) {
				return nil, errors.New("index unavailable")
			},
		}

		s := dislog.NewLoggingStrategy(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		_, err := s.Harvest(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "err=\"index unavailable\"")
		assert.NotContains(t, output, "controllers=")
	})
}
