package ytdlp

import (
	"context"
	"fmt"
	"time"

	ytdlp "github.com/lrstanley/go-ytdlp"
	"github.com/tunegrab-cli/tunegrab/source"
)

// progressInterval is how often the subprocess reports fetch progress.
const progressInterval = 500 * time.Millisecond

// Fetch retrieves one item to local storage according to spec, streaming byte
// counts into onProgress. Failures are returned to the caller; the subprocess
// never retries on its own.
func (c *Client) Fetch(ctx context.Context, locator string, spec source.FetchSpec, onProgress source.ProgressFunc) error {
	dl := ytdlp.New().
		Quiet().
		NoWarnings().
		ForceOverwrites().
		SocketTimeout(c.socketTimeout.Seconds()).
		Output(spec.DestinationTemplate)

	switch spec.Format {
	case source.FormatMP3:
		dl = dl.Format("bestaudio/best").
			ExtractAudio().
			AudioFormat("mp3").
			AudioQuality("192")
		if spec.EmbedMetadata {
			dl = dl.EmbedMetadata()
		}
	default:
		dl = dl.Format("bestvideo+bestaudio/best").
			MergeOutputFormat("mp4")
	}

	if spec.EmbedThumbnail {
		dl = dl.EmbedThumbnail()
	}

	if onProgress != nil {
		dl = dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
			onProgress(int64(update.DownloadedBytes), int64(update.TotalBytes))
		})
	}

	if _, err := dl.Run(ctx, locator); err != nil {
		return fmt.Errorf("fetch %s: %w", locator, err)
	}
	return nil
}
