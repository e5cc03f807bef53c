package catalog

import (
	"context"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Album is one studio or live album of an artist.
type Album struct {
	Title string
	// Year is the four-digit first release year, possibly empty.
	Year string
	// GroupID identifies the release group the album belongs to.
	GroupID string
}

type releaseGroup struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	FirstReleaseDate string   `json:"first-release-date"`
	SecondaryTypes   []string `json:"secondary-types"`
}

type releaseGroupResponse struct {
	ReleaseGroups []releaseGroup `json:"release-groups"`
}

// Albums browses the artist's album release groups, deduplicated by title.
// Live albums are excluded unless includeLive is set.
func (c *Client) Albums(ctx context.Context, artistID string, includeLive bool) ([]Album, error) {
	params := url.Values{}
	params.Set("artist", artistID)
	params.Set("type", "album")
	params.Set("limit", "200")

	var response releaseGroupResponse
	if err := c.get(ctx, "/release-group", params, &response); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var albums []Album

	for _, group := range response.ReleaseGroups {
		lowered := strings.ToLower(group.Title)
		if _, ok := seen[lowered]; ok {
			continue
		}
		seen[lowered] = struct{}{}

		if group.isLive() && !includeLive {
			continue
		}

		year := ""
		if len(group.FirstReleaseDate) >= 4 {
			year = group.FirstReleaseDate[:4]
		}
		albums = append(albums, Album{
			Title:   group.Title,
			Year:    year,
			GroupID: group.ID,
		})
	}

	// Chronological order, unknown years last, title as tie-break.
	slices.SortFunc(albums, func(a, b Album) int {
		ay, by := a.Year, b.Year
		if ay == "" {
			ay = "9999"
		}
		if by == "" {
			by = "9999"
		}
		if ay != by {
			return strings.Compare(ay, by)
		}
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	})

	return albums, nil
}

func (g *releaseGroup) isLive() bool {
	return lo.ContainsBy(g.SecondaryTypes, func(t string) bool {
		return strings.EqualFold(t, "live")
	})
}
