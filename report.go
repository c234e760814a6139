package docinventory

import (
	"context"
	"time"
)

// Platform identifies an upstream firmware project.
type Platform string

// Platform constants.
const (
	PlatformArduPilot  Platform = "ardupilot"
	PlatformINav       Platform = "inav"
	PlatformBetaflight Platform = "betaflight"
)

// Platforms returns all platforms in output order.
func Platforms() []Platform {
	return []Platform{PlatformArduPilot, PlatformINav, PlatformBetaflight}
}

// Strategy harvests one platform's documentation into an Inventory.
type Strategy interface {
	// Platform returns the platform this strategy harvests.
	Platform() Platform

	// Harvest enumerates and scans the platform's documents.
	// Failures of the platform's entry point are returned unmodified.
	Harvest(ctx context.Context) (*Inventory, error)
}

// Report is the merged inventory of all platforms.
type Report struct {
	GeneratedOn time.Time
	Catalogs    map[Platform]Catalog
}

// Validate returns an error if the report is missing any platform.
func (r *Report) Validate() error {
	for _, p := range Platforms() {
		if _, ok := r.Catalogs[p]; !ok {
			return Errorf(EINVALID, "report missing platform %q", p)
		}
	}
	return nil
}

// ReportWriter persists a finished report.
type ReportWriter interface {
	WriteReport(ctx context.Context, r *Report) error
}

// Harvest runs each strategy in order and assembles their finalized
// inventories into a Report dated now. The first strategy error aborts the
// run and is returned as-is.
func Harvest(ctx context.Context, strategies []Strategy, now time.Time) (*Report, error) {
	r := &Report{
		GeneratedOn: now,
		Catalogs:    make(map[Platform]Catalog, len(strategies)),
	}
	for _, s := range strategies {
		inv, err := s.Harvest(ctx)
		if err != nil {
			return nil, err
		}
		r.Catalogs[s.Platform()] = inv.Finalize()
	}
	return r, nil
}
