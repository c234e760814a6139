// Package git provides a docinventory.Cloner backed by the git command line.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/fwojciec/docinventory"
)

// Ensure Cloner implements docinventory.Cloner at compile time.
var _ docinventory.Cloner = (*Cloner)(nil)

// Cloner clones repositories by running git.
type Cloner struct {
	binary string
	depth  int
}

// Option configures a Cloner.
type Option func(*Cloner)

// WithBinary sets the git executable. Defaults to "git" on PATH.
func WithBinary(path string) Option {
	return func(c *Cloner) {
		c.binary = path
	}
}

// WithDepth sets the clone depth. Defaults to 1.
func WithDepth(depth int) Option {
	return func(c *Cloner) {
		c.depth = depth
	}
}

// NewCloner creates a new Cloner.
func NewCloner(opts ...Option) *Cloner {
	c := &Cloner{
		binary: "git",
		depth:  1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clone runs a shallow "git clone" of repo into dest.
// A non-zero exit returns an error carrying git's combined output.
func (c *Cloner) Clone(ctx context.Context, repo, dest string) error {
	args := []string{"clone", "--quiet", "--depth", strconv.Itoa(c.depth), repo, dest}
	cmd := exec.CommandContext(ctx, c.binary, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}
