// Package fetch retrieves resume bytes from external storage by locator.
// The pipeline depends only on the Fetcher interface; the Drive-backed
// implementation and the caching wrapper live here too.
package fetch

import "context"

// Fetcher is the abstract fetch capability. Fetch resolves a locator to the
// raw resume bytes and the stored filename. Failures are classified with
// the types error kinds: LocatorInvalid, FetchNotFound, FetchAccessDenied
// and FetchTimeout.
type Fetcher interface {
	Fetch(ctx context.Context, locator string) (data []byte, filename string, err error)
}

// Func adapts a function to the Fetcher interface.
type Func func(ctx context.Context, locator string) ([]byte, string, error)

// Fetch calls f.
func (f Func) Fetch(ctx context.Context, locator string) ([]byte, string, error) {
	return f(ctx, locator)
}
