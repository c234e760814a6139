package docinventory

import "context"

// Fetcher retrieves the raw text body at a URL.
type Fetcher interface {
	// Fetch returns the body at url as text.
	// Transport failures and non-success responses are returned as errors.
	Fetch(ctx context.Context, url string) (text string, err error)

	// Close releases any held resources.
	Close() error
}

// Cloner produces a local snapshot of a remote repository.
type Cloner interface {
	// Clone performs a shallow clone of repo into dest.
	// dest must not exist or must be empty.
	Clone(ctx context.Context, repo, dest string) error
}
