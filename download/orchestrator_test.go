package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/tunegrab-cli/tunegrab/filesystem"
	"github.com/tunegrab-cli/tunegrab/source"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

// fakeFetcher records every fetch spec and fails on configured ordinals.
type fakeFetcher struct {
	specs    []source.FetchSpec
	locators []string
	failOn   map[string]error
}

func (f *fakeFetcher) Name() string {
	return "fake"
}

func (f *fakeFetcher) Fetch(_ context.Context, locator string, spec source.FetchSpec, onProgress source.ProgressFunc) error {
	f.specs = append(f.specs, spec)
	f.locators = append(f.locators, locator)

	if onProgress != nil {
		onProgress(512, 1024)
	}

	if err, ok := f.failOn[locator]; ok {
		return err
	}
	return nil
}

func collectionListing(n int) *source.Listing {
	listing := &source.Listing{Title: "Band - Album (1999)", IsCollection: true}
	for i := 1; i <= n; i++ {
		listing.Items = append(listing.Items, source.Item{
			Locator: fmt.Sprintf("https://www.youtube.com/watch?v=item%d", i),
			Ordinal: i,
		})
	}
	return listing
}

func TestOrchestratorRun(t *testing.T) {
	Convey("Orchestrator Run", t, func() {
		Convey("Should isolate per-item failures and keep going", func() {
			fetcher := &fakeFetcher{failOn: map[string]error{
				"https://www.youtube.com/watch?v=item3": errors.New("unavailable"),
			}}
			orchestrator := NewOrchestrator(fetcher, &Options{Out: io.Discard})

			report, err := orchestrator.Run(context.Background(), collectionListing(5))
			So(err, ShouldBeNil)
			So(report.Attempted, ShouldEqual, 5)
			So(report.Succeeded, ShouldEqual, 4)
			So(report.Failed(), ShouldEqual, 1)
			So(report.AllSucceeded(), ShouldBeFalse)
			So(report.Failures[0].Locator, ShouldEqual, "https://www.youtube.com/watch?v=item3")
			So(report.Failures[0].Reason, ShouldEqual, "unavailable")
		})

		Convey("Should prefix collection members with a zero-padded ordinal", func() {
			fetcher := &fakeFetcher{}
			orchestrator := NewOrchestrator(fetcher, &Options{Out: io.Discard})

			_, err := orchestrator.Run(context.Background(), collectionListing(3))
			So(err, ShouldBeNil)
			So(fetcher.specs, ShouldHaveLength, 3)

			dir := "Band - Album (1999)"
			So(fetcher.specs[0].DestinationTemplate, ShouldEqual, filepath.Join(dir, "001 - %(title)s.%(ext)s"))
			So(fetcher.specs[1].DestinationTemplate, ShouldEqual, filepath.Join(dir, "002 - %(title)s.%(ext)s"))
			So(fetcher.specs[2].DestinationTemplate, ShouldEqual, filepath.Join(dir, "003 - %(title)s.%(ext)s"))
		})

		Convey("Should name single items without an ordinal prefix", func() {
			fetcher := &fakeFetcher{}
			orchestrator := NewOrchestrator(fetcher, &Options{Out: io.Discard})

			listing := &source.Listing{
				Title: "one video",
				Items: []source.Item{{Locator: "https://www.youtube.com/watch?v=a", Ordinal: 1}},
			}

			_, err := orchestrator.Run(context.Background(), listing)
			So(err, ShouldBeNil)
			So(fetcher.specs[0].DestinationTemplate, ShouldEqual, filepath.Join("downloads", "%(title)s.%(ext)s"))
		})

		Convey("Should resolve the output directory", func() {
			Convey("From the override when given", func() {
				fetcher := &fakeFetcher{}
				orchestrator := NewOrchestrator(fetcher, &Options{OutputDir: "custom", Out: io.Discard})

				_, err := orchestrator.Run(context.Background(), collectionListing(1))
				So(err, ShouldBeNil)
				So(fetcher.specs[0].DestinationTemplate, ShouldStartWith, "custom")
			})

			Convey("From the sanitized collection title otherwise", func() {
				fetcher := &fakeFetcher{}
				orchestrator := NewOrchestrator(fetcher, &Options{Out: io.Discard})

				listing := collectionListing(1)
				listing.Title = "Band / Album: Live?"

				_, err := orchestrator.Run(context.Background(), listing)
				So(err, ShouldBeNil)
				So(fetcher.specs[0].DestinationTemplate, ShouldStartWith, "Band _ Album_ Live")
			})
		})

		Convey("Should embed metadata for mp3 fetches only", func() {
			fetcher := &fakeFetcher{}
			orchestrator := NewOrchestrator(fetcher, &Options{Format: source.FormatMP3, Out: io.Discard})

			_, err := orchestrator.Run(context.Background(), collectionListing(1))
			So(err, ShouldBeNil)
			So(fetcher.specs[0].EmbedMetadata, ShouldBeTrue)

			fetcher = &fakeFetcher{}
			orchestrator = NewOrchestrator(fetcher, &Options{Format: source.FormatMP4, Out: io.Discard})

			_, err = orchestrator.Run(context.Background(), collectionListing(1))
			So(err, ShouldBeNil)
			So(fetcher.specs[0].EmbedMetadata, ShouldBeFalse)
		})

		Convey("Should return the partial report on cancellation", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			fetcher := &fakeFetcher{}
			orchestrator := NewOrchestrator(fetcher, &Options{Out: io.Discard})

			report, err := orchestrator.Run(ctx, collectionListing(3))
			So(err, ShouldNotBeNil)
			So(report, ShouldNotBeNil)
			So(report.Succeeded, ShouldEqual, 0)
			So(fetcher.specs, ShouldBeEmpty)
		})
	})
}
