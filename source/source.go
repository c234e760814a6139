// Package source implements the per-platform harvesting strategies.
//
// Each strategy enumerates one upstream documentation set, extracts a
// controller-name candidate from every document's first heading and scans the
// document body for sensor and MCU identifiers.
package source

import "github.com/fwojciec/docinventory"

// Upstream locations.
const (
	DefaultArduPilotBaseURL = "https://raw.githubusercontent.com/ArduPilot/ardupilot_wiki/master/common/source/docs"
	DefaultArduPilotIndex   = "common-autopilots.rst"
	DefaultINavListingURL   = "https://api.github.com/repos/iNavFlight/inav/contents/docs/boards"
	DefaultBetaflightRepo   = "https://github.com/betaflight/betaflight.wiki.git"
)

// harvestDocument folds one document's heading and identifiers into inv.
func harvestDocument(inv *docinventory.Inventory, text string, dialect docinventory.Dialect) {
	var names []string
	if heading, ok := docinventory.FirstHeading(text, dialect); ok {
		names = append(names, heading)
	}
	sensors, mcus := docinventory.Scan(text)
	inv.Update(names, sensors, mcus)
}
