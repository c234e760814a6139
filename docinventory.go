// Package docinventory aggregates flight-controller names, sensor part numbers
// and microcontroller part numbers from upstream firmware documentation into
// a single normalized, sorted inventory.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, git/, yaml/).
package docinventory
