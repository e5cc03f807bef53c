package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Artist is one candidate returned by an artist name lookup.
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Score is the provider's own relevance metric (0-100).
	Score int `json:"score"`
}

func (a Artist) String() string {
	return a.Name
}

type artistSearchResponse struct {
	Artists []Artist `json:"artists"`
}

// SearchArtists queries the catalog for artists matching the given name.
func (c *Client) SearchArtists(ctx context.Context, name string) ([]Artist, error) {
	params := url.Values{}
	params.Set("query", fmt.Sprintf("artist:%q", name))
	params.Set("limit", "25")

	var response artistSearchResponse
	if err := c.get(ctx, "/artist", params, &response); err != nil {
		return nil, err
	}
	return response.Artists, nil
}

// BestArtist selects the most plausible candidate for a requested name.
// Candidates whose name matches exactly (case ignored) win, ordered by the
// provider's relevance score; otherwise the fuzzy-closest candidate is taken,
// falling back to the first result.
func BestArtist(name string, artists []Artist) mo.Option[Artist] {
	if len(artists) == 0 {
		return mo.None[Artist]()
	}

	exact := lo.Filter(artists, func(a Artist, _ int) bool {
		return strings.EqualFold(a.Name, name)
	})
	if len(exact) > 0 {
		slices.SortFunc(exact, func(a, b Artist) int {
			return b.Score - a.Score
		})
		return mo.Some(exact[0])
	}

	names := lo.Map(artists, func(a Artist, _ int) string {
		return a.Name
	})
	ranks := fuzzy.RankFindNormalizedFold(name, names)
	if len(ranks) > 0 {
		slices.SortFunc(ranks, func(a, b fuzzy.Rank) int {
			return a.Distance - b.Distance
		})
		return mo.Some(artists[ranks[0].OriginalIndex])
	}

	return mo.Some(artists[0])
}
