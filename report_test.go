package docinventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/docinventory"
	"github.com/fwojciec/docinventory/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStrategy(p docinventory.Platform, controllers ...string) *mock.Strategy {
	return &mock.Strategy{
		PlatformFn: func() docinventory.Platform { return p },
		HarvestFn: func(ctx context.Context) (*docinventory.Inventory, error) {
			inv := docinventory.NewInventory(docinventory.DefaultKeywords())
			inv.Update(controllers, nil, nil)
			return inv, nil
		},
	}
}

func TestHarvest(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)

	t.Run("assembles every platform's catalog", func(t *testing.T) {
		t.Parallel()

		strategies := []docinventory.Strategy{
			newStrategy(docinventory.PlatformArduPilot, "Pixhawk 6X"),
			newStrategy(docinventory.PlatformINav, "Matek F405"),
			newStrategy(docinventory.PlatformBetaflight),
		}

		r, err := docinventory.Harvest(context.Background(), strategies, now)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, now, r.GeneratedOn)
		assert.Equal(t, []string{"PIXHAWK 6X"}, r.Catalogs[docinventory.PlatformArduPilot].Controllers)
		assert.Equal(t, []string{"MATEK F405"}, r.Catalogs[docinventory.PlatformINav].Controllers)
		assert.Empty(t, r.Catalogs[docinventory.PlatformBetaflight].Controllers)
	})

	t.Run("returns first strategy error unmodified", func(t *testing.T) {
		t.Parallel()

		fetchErr := errors.New("HTTP 503")
		called := false
		strategies := []docinventory.Strategy{
			&mock.Strategy{
				PlatformFn: func() docinventory.Platform { return docinventory.PlatformArduPilot },
				HarvestFn: func(ctx context.Context) (*docinventory.Inventory, error) {
					return nil, fetchErr
				},
			},
			&mock.Strategy{
				PlatformFn: func() docinventory.Platform { return docinventory.PlatformINav },
				HarvestFn: func(ctx context.Context) (*docinventory.Inventory, error) {
					called = true
					return docinventory.NewInventory(docinventory.Keywords{}), nil
				},
			},
		}

		r, err := docinventory.Harvest(context.Background(), strategies, now)

		assert.Nil(t, r)
		assert.Equal(t, fetchErr, err)
		assert.False(t, called)
	})
}

func TestReport_Validate(t *testing.T) {
	t.Parallel()

	r := &docinventory.Report{Catalogs: map[docinventory.Platform]docinventory.Catalog{
		docinventory.PlatformArduPilot: {},
		docinventory.PlatformINav:      {},
	}}

	err := r.Validate()

	require.Error(t, err)
	assert.Equal(t, docinventory.EINVALID, docinventory.ErrorCode(err))
	assert.Contains(t, docinventory.ErrorMessage(err), "betaflight")
}

func TestPlatforms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []docinventory.Platform{"ardupilot", "inav", "betaflight"}, docinventory.Platforms())
}
