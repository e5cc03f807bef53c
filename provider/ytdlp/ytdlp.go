// Package ytdlp implements the media index and media fetcher interfaces on top
// of a yt-dlp subprocess driven through the go-ytdlp bindings.
package ytdlp

import (
	"context"
	"fmt"
	"time"

	ytdlp "github.com/lrstanley/go-ytdlp"
	"github.com/tunegrab-cli/tunegrab/log"
	"github.com/tunegrab-cli/tunegrab/source"
)

// Client drives yt-dlp for search, flat enumeration and retrieval.
// It implements both source.Index and source.Fetcher.
type Client struct {
	// socketTimeout bounds a single network read inside the subprocess.
	socketTimeout time.Duration
}

// Options configures the yt-dlp backend.
type Options struct {
	SocketTimeout time.Duration
}

// New initializes a yt-dlp backed client.
func New(options *Options) *Client {
	timeout := 10 * time.Second
	if options != nil && options.SocketTimeout > 0 {
		timeout = options.SocketTimeout
	}
	return &Client{socketTimeout: timeout}
}

// Name returns the backend identifier.
func (c *Client) Name() string {
	return "ytdlp"
}

// flatCommand builds the shared metadata-only extraction command.
// Extraction is flat: one level of membership, no per-item deep metadata.
func (c *Client) flatCommand() *ytdlp.Command {
	return ytdlp.New().
		Quiet().
		NoWarnings().
		IgnoreErrors().
		SkipDownload().
		FlatPlaylist().
		DumpSingleJSON().
		SocketTimeout(c.socketTimeout.Seconds())
}

// Search issues a bounded text query and returns heterogeneous records in
// provider order. The ctx deadline supplied by the caller cancels the
// subprocess on expiry.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]source.Record, error) {
	target := fmt.Sprintf("ytsearch%d:%s", limit, query)

	result, err := c.flatCommand().Run(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("index search: %w", err)
	}

	info, err := parseFlatInfo(result.Stdout)
	if err != nil {
		return nil, fmt.Errorf("index search: %w", err)
	}

	records := recordsFromEntries(info.Entries)
	log.Debugf("search %q returned %d records", query, len(records))
	return records, nil
}

// Resolve enumerates a locator one level deep. A playlist locator yields its
// member videos in provider order with normalized absolute locators; a video
// locator yields a one-element listing.
func (c *Client) Resolve(ctx context.Context, locator string) (*source.Listing, error) {
	result, err := c.flatCommand().Run(ctx, locator)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}

	info, err := parseFlatInfo(result.Stdout)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}

	if info.Type != typePlaylist {
		title := info.Title
		if title == "" {
			title = "video"
		}
		return &source.Listing{
			Title:        title,
			IsCollection: false,
			Items:        []source.Item{{Locator: locator, Ordinal: 1}},
		}, nil
	}

	listing := &source.Listing{
		Title:        info.Title,
		IsCollection: true,
	}
	if listing.Title == "" {
		listing.Title = "playlist"
	}

	for _, entry := range info.Entries {
		entryLocator := entry.locator()
		if entryLocator == "" {
			continue
		}
		listing.Items = append(listing.Items, source.Item{
			Locator: source.NormalizeLocator(source.KindItem, entryLocator),
			Ordinal: len(listing.Items) + 1,
		})
	}

	return listing, nil
}
