package source

import "context"

// Index defines the required capabilities of a searchable media index provider.
type Index interface {
	// Name returns the unique identifier for the index provider.
	Name() string

	// Search executes a text query against the index and returns at most limit
	// heterogeneous records in provider order. The call honors ctx cancellation
	// and deadlines; transport and timeout failures are returned as errors.
	Search(ctx context.Context, query string, limit int) ([]Record, error)

	// Resolve enumerates a locator one level deep without per-item metadata.
	// A collection locator yields every member in provider order, a single
	// item yields a one-element listing.
	Resolve(ctx context.Context, locator string) (*Listing, error)
}

// Format identifies the requested output encoding of a fetch.
type Format string

const (
	FormatMP3 Format = "mp3"
	FormatMP4 Format = "mp4"
)

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatMP3:
		return FormatMP3, nil
	case FormatMP4:
		return FormatMP4, nil
	default:
		return "", &UnknownFormatError{Value: s}
	}
}

// FetchSpec configures a single fetch operation.
type FetchSpec struct {
	// DestinationTemplate is the fetcher path template the output file is written to.
	DestinationTemplate string
	Format              Format
	EmbedThumbnail      bool
	EmbedMetadata       bool
}

// ProgressFunc receives incremental byte counts while a fetch is running.
// Total may be zero when the fetcher cannot estimate the final size yet.
type ProgressFunc func(downloaded, total int64)

// Fetcher defines the required capabilities of a media retrieval backend.
type Fetcher interface {
	// Name returns the unique identifier for the fetch backend.
	Name() string

	// Fetch retrieves one item to local storage, reporting incremental
	// progress through onProgress. A nil onProgress is valid.
	Fetch(ctx context.Context, locator string, spec FetchSpec, onProgress ProgressFunc) error
}
