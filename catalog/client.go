// Package catalog retrieves artist discographies (albums and track listings)
// from the MusicBrainz metadata service.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tunegrab-cli/tunegrab/constant"
	"github.com/tunegrab-cli/tunegrab/network"
	"golang.org/x/time/rate"
)

const baseURL = "https://musicbrainz.org/ws/2"

// Client is a rate-limited MusicBrainz API consumer.
// MusicBrainz asks for at most one request per second per client.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient initializes a catalog client over the shared HTTP client.
func NewClient() *Client {
	return &Client{
		http:    network.Client,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// get performs one paced JSON API call and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	params.Set("fmt", "json")
	endpoint := fmt.Sprintf("%s%s?%s", baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog request %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parse catalog response: %w", err)
	}
	return nil
}
