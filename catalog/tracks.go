package catalog

import (
	"context"
	"net/url"
	"strings"
)

type release struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type releaseBrowseResponse struct {
	Releases []release `json:"releases"`
}

type releaseLookupResponse struct {
	Media []struct {
		Tracks []struct {
			Recording struct {
				Title string `json:"title"`
			} `json:"recording"`
		} `json:"tracks"`
	} `json:"media"`
}

// Tracks returns the ordered track titles of a release group, read from its
// most representative release. An empty slice means no release was found.
func (c *Client) Tracks(ctx context.Context, groupID string) ([]string, error) {
	params := url.Values{}
	params.Set("release-group", groupID)
	params.Set("limit", "25")

	var browse releaseBrowseResponse
	if err := c.get(ctx, "/release", params, &browse); err != nil {
		return nil, err
	}
	if len(browse.Releases) == 0 {
		return nil, nil
	}

	chosen := chooseRelease(browse.Releases)

	lookup := url.Values{}
	lookup.Set("inc", "recordings")

	var detail releaseLookupResponse
	if err := c.get(ctx, "/release/"+chosen.ID, lookup, &detail); err != nil {
		return nil, err
	}

	var tracks []string
	for _, medium := range detail.Media {
		for _, track := range medium.Tracks {
			tracks = append(tracks, track.Recording.Title)
		}
	}
	return tracks, nil
}

// chooseRelease picks the most representative release of a group, preferring
// official releases over any other status.
func chooseRelease(releases []release) release {
	for _, r := range releases {
		if strings.EqualFold(r.Status, "official") {
			return r
		}
	}
	return releases[0]
}
