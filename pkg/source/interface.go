// Package source defines how raw documents are retrieved from the upstream
// statistics site.
package source

import "context"

// Fetcher retrieves the raw bytes of a document.
//
//go:generate mockgen -package mocksource -source=interface.go -destination=mock/mocksource.go *
type Fetcher interface {
	// Fetch issues a GET for url and returns the response body. It fails with
	// a serrors.ErrFetch kind on transport errors and non-2xx statuses.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
