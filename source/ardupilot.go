package source

import (
	"context"
	"strings"

	"github.com/fwojciec/docinventory"
)

// Ensure ArduPilot implements docinventory.Strategy at compile time.
var _ docinventory.Strategy = (*ArduPilot)(nil)

// ArduPilot harvests the ArduPilot wiki. It reads the autopilot index, takes
// every toctree label as a controller candidate and fetches each local target
// document for its heading and identifiers.
type ArduPilot struct {
	Fetcher  docinventory.Fetcher
	Keywords docinventory.Keywords

	// BaseURL is the directory holding the index and its sibling documents.
	BaseURL string

	// Index is the index document's file name, relative to BaseURL.
	Index string
}

// NewArduPilot returns an ArduPilot strategy for the upstream wiki.
func NewArduPilot(fetcher docinventory.Fetcher, kw docinventory.Keywords) *ArduPilot {
	return &ArduPilot{
		Fetcher:  fetcher,
		Keywords: kw,
		BaseURL:  DefaultArduPilotBaseURL,
		Index:    DefaultArduPilotIndex,
	}
}

// Platform returns docinventory.PlatformArduPilot.
func (s *ArduPilot) Platform() docinventory.Platform {
	return docinventory.PlatformArduPilot
}

// Harvest fetches the index and every document it references.
// A failure to fetch the index is returned as-is. A failure to fetch a
// referenced document skips that document but keeps its index label.
func (s *ArduPilot) Harvest(ctx context.Context) (*docinventory.Inventory, error) {
	index, err := s.Fetcher.Fetch(ctx, s.resolve(s.Index))
	if err != nil {
		return nil, err
	}

	inv := docinventory.NewInventory(s.Keywords)
	visited := make(map[string]bool)
	for _, entry := range ParseToctree(index) {
		if s.Keywords.IsBadLabel(entry.Label) {
			continue
		}
		if entry.External() || visited[entry.Target] {
			inv.Update([]string{entry.Label}, nil, nil)
			continue
		}
		visited[entry.Target] = true

		text, err := s.Fetcher.Fetch(ctx, s.resolve(entry.Target))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			inv.Update([]string{entry.Label}, nil, nil)
			continue
		}

		names := []string{entry.Label}
		if heading, ok := docinventory.FirstHeadingUnderline(text); ok && !s.Keywords.IsBadHeading(heading) {
			names = append(names, heading)
		}
		sensors, mcus := docinventory.Scan(text)
		inv.Update(names, sensors, mcus)
	}
	return inv, nil
}

// resolve maps a document target to its URL under BaseURL.
func (s *ArduPilot) resolve(target string) string {
	if !strings.HasSuffix(target, ".rst") {
		target += ".rst"
	}
	return strings.TrimSuffix(s.BaseURL, "/") + "/" + target
}
