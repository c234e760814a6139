package source

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fwojciec/docinventory"
)

// Ensure INav implements docinventory.Strategy at compile time.
var _ docinventory.Strategy = (*INav)(nil)

// ListingEntry is one record of a GitHub contents API directory listing.
type ListingEntry struct {
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
}

// INav harvests the iNav board documentation through a directory listing.
type INav struct {
	Fetcher  docinventory.Fetcher
	Keywords docinventory.Keywords

	// ListingURL returns a JSON array of ListingEntry records.
	ListingURL string
}

// NewINav returns an INav strategy for the upstream repository.
func NewINav(fetcher docinventory.Fetcher, kw docinventory.Keywords) *INav {
	return &INav{
		Fetcher:    fetcher,
		Keywords:   kw,
		ListingURL: DefaultINavListingURL,
	}
}

// Platform returns docinventory.PlatformINav.
func (s *INav) Platform() docinventory.Platform {
	return docinventory.PlatformINav
}

// Harvest fetches the listing and every Markdown document in it.
// Any fetch failure aborts the harvest and is returned as-is.
func (s *INav) Harvest(ctx context.Context) (*docinventory.Inventory, error) {
	body, err := s.Fetcher.Fetch(ctx, s.ListingURL)
	if err != nil {
		return nil, err
	}

	var listing []ListingEntry
	if err := json.Unmarshal([]byte(body), &listing); err != nil {
		return nil, docinventory.Errorf(docinventory.EINVALID, "decode listing %s: %v", s.ListingURL, err)
	}

	inv := docinventory.NewInventory(s.Keywords)
	for _, entry := range listing {
		if !strings.HasSuffix(strings.ToLower(entry.Name), ".md") {
			continue
		}
		text, err := s.Fetcher.Fetch(ctx, entry.DownloadURL)
		if err != nil {
			return nil, err
		}
		harvestDocument(inv, text, docinventory.DialectHash)
	}
	return inv, nil
}
