package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docinventory"
)

// DefaultBetaflightPattern matches board pages in the wiki root.
const DefaultBetaflightPattern = "Board-*.md"

// Ensure Betaflight implements docinventory.Strategy at compile time.
var _ docinventory.Strategy = (*Betaflight)(nil)

// Betaflight harvests board pages from a shallow clone of the Betaflight wiki.
type Betaflight struct {
	Cloner   docinventory.Cloner
	Keywords docinventory.Keywords

	// Repo is the wiki repository to clone.
	Repo string

	// Pattern selects board pages in the clone root.
	Pattern string

	// TempDir is the parent of the scratch directory. Empty means os.TempDir.
	TempDir string
}

// NewBetaflight returns a Betaflight strategy for the upstream wiki.
func NewBetaflight(cloner docinventory.Cloner, kw docinventory.Keywords) *Betaflight {
	return &Betaflight{
		Cloner:   cloner,
		Keywords: kw,
		Repo:     DefaultBetaflightRepo,
		Pattern:  DefaultBetaflightPattern,
	}
}

// Platform returns docinventory.PlatformBetaflight.
func (s *Betaflight) Platform() docinventory.Platform {
	return docinventory.PlatformBetaflight
}

// Harvest clones the wiki into a scratch directory, scans every board page
// and removes the scratch directory before returning, whatever the outcome.
// A clone failure is returned as-is.
func (s *Betaflight) Harvest(ctx context.Context) (inv *docinventory.Inventory, err error) {
	tmp, err := os.MkdirTemp(s.TempDir, "betaflight-wiki-*")
	if err != nil {
		return nil, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmp); rmErr != nil && err == nil {
			inv, err = nil, rmErr
		}
	}()

	repoPath := filepath.Join(tmp, "betaflight.wiki")
	if err := s.Cloner.Clone(ctx, s.Repo, repoPath); err != nil {
		return nil, err
	}

	paths, err := filepath.Glob(filepath.Join(repoPath, s.Pattern))
	if err != nil {
		return nil, docinventory.Errorf(docinventory.EINVALID, "board pattern %q: %v", s.Pattern, err)
	}

	inv = docinventory.NewInventory(s.Keywords)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		harvestDocument(inv, strings.ToValidUTF8(string(data), "\uFFFD"), docinventory.DialectHash)
	}
	return inv, nil
}
