package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tunegrab-cli/tunegrab/filesystem"
	"github.com/tunegrab-cli/tunegrab/log"
	"github.com/tunegrab-cli/tunegrab/source"
	"github.com/tunegrab-cli/tunegrab/util"
)

// Options configures an orchestrator run.
type Options struct {
	// OutputDir overrides the destination directory. When empty, collections
	// land in a directory named after their sanitized title and single items
	// in FallbackDir.
	OutputDir string
	// FallbackDir receives single items when no override is given.
	FallbackDir string
	Format      source.Format
	// EmbedThumbnail embeds the item thumbnail when the container supports it.
	EmbedThumbnail bool
	// Progress enables per-item terminal progress rendering.
	Progress bool
	// Out receives user-facing output. Defaults to os.Stdout.
	Out io.Writer
}

// Orchestrator fetches every item of an expanded listing strictly in ordinal
// order, isolating per-item failures so one broken item never loses the rest
// of the batch.
type Orchestrator struct {
	fetcher source.Fetcher
	options Options
}

// NewOrchestrator initializes an orchestrator over the given fetch backend.
func NewOrchestrator(fetcher source.Fetcher, options *Options) *Orchestrator {
	opts := Options{}
	if options != nil {
		opts = *options
	}
	if opts.FallbackDir == "" {
		opts.FallbackDir = "downloads"
	}
	if opts.Format == "" {
		opts.Format = source.FormatMP4
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Orchestrator{fetcher: fetcher, options: opts}
}

// Run fetches the listing sequentially and returns the aggregate report.
// The context is checked between items only; an in-flight item either
// completes or records a failure. A cancelled run returns the partial report
// together with the context error.
func (o *Orchestrator) Run(ctx context.Context, listing *source.Listing) (*Report, error) {
	dir := o.outputDir(listing)
	if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	report := &Report{Attempted: len(listing.Items)}

	for _, item := range listing.Items {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		spec := source.FetchSpec{
			DestinationTemplate: destination(dir, listing.IsCollection, item.Ordinal),
			Format:              o.options.Format,
			EmbedThumbnail:      o.options.EmbedThumbnail,
			EmbedMetadata:       o.options.Format == source.FormatMP3,
		}

		progress := newTracker(o.options.Out, o.options.Progress, item.Ordinal, report.Attempted)
		err := o.fetcher.Fetch(ctx, item.Locator, spec, progress.update)
		progress.finish(err == nil)

		if err != nil {
			log.Errorf("fetch failed for %s: %v", item.Locator, err)
			report.Failures = append(report.Failures, Failure{
				Locator: item.Locator,
				Reason:  err.Error(),
			})
			continue
		}
		report.Succeeded++
	}

	return report, nil
}

// outputDir resolves the destination directory for a listing.
func (o *Orchestrator) outputDir(listing *source.Listing) string {
	if o.options.OutputDir != "" {
		return o.options.OutputDir
	}
	if listing.IsCollection {
		return util.SanitizeName(listing.Title)
	}
	return o.options.FallbackDir
}

// destination builds the fetcher path template for one item. Collection
// members carry a zero-padded ordinal prefix so filenames stay stable,
// collision-free and order-preserving.
func destination(dir string, isCollection bool, ordinal int) string {
	name := "%(title)s.%(ext)s"
	if isCollection {
		name = fmt.Sprintf("%03d - %s", ordinal, name)
	}
	return filepath.Join(dir, name)
}
