package search

import (
	"context"
	"fmt"

	"github.com/tunegrab-cli/tunegrab/source"
)

// Expand flattens a resolved locator into its ordered fetchable items.
// Collections with zero resolvable members fail with source.EmptyCollectionError;
// provider failures are surfaced to the caller without internal retries.
func Expand(ctx context.Context, index source.Index, locator string) (*source.Listing, error) {
	listing, err := index.Resolve(ctx, locator)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", locator, err)
	}

	if listing.IsCollection && len(listing.Items) == 0 {
		return nil, &source.EmptyCollectionError{Locator: locator}
	}

	return listing, nil
}
