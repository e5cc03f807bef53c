package search

import (
	"context"
	"errors"
	"testing"

	"github.com/tunegrab-cli/tunegrab/source"
	. "github.com/smartystreets/goconvey/convey"
)

// resolverIndex serves one canned listing or error per Resolve call.
type resolverIndex struct {
	listing *source.Listing
	err     error
}

func (r *resolverIndex) Name() string {
	return "resolver"
}

func (r *resolverIndex) Search(_ context.Context, _ string, _ int) ([]source.Record, error) {
	panic("not used")
}

func (r *resolverIndex) Resolve(_ context.Context, _ string) (*source.Listing, error) {
	return r.listing, r.err
}

func TestExpand(t *testing.T) {
	Convey("Expand", t, func() {
		Convey("Should pass through a populated collection listing", func() {
			index := &resolverIndex{listing: &source.Listing{
				Title:        "Band - Album (1999)",
				IsCollection: true,
				Items: []source.Item{
					{Locator: "https://www.youtube.com/watch?v=a", Ordinal: 1},
					{Locator: "https://www.youtube.com/watch?v=b", Ordinal: 2},
				},
			}}

			listing, err := Expand(context.Background(), index, "https://www.youtube.com/playlist?list=PLxyz")
			So(err, ShouldBeNil)
			So(listing.Items, ShouldHaveLength, 2)
			So(listing.Items[0].Ordinal, ShouldEqual, 1)
		})

		Convey("Should accept a single item listing", func() {
			index := &resolverIndex{listing: &source.Listing{
				Title: "one video",
				Items: []source.Item{{Locator: "https://www.youtube.com/watch?v=a", Ordinal: 1}},
			}}

			listing, err := Expand(context.Background(), index, "https://www.youtube.com/watch?v=a")
			So(err, ShouldBeNil)
			So(listing.IsCollection, ShouldBeFalse)
			So(listing.Items, ShouldHaveLength, 1)
		})

		Convey("Should fail on a collection with zero members", func() {
			index := &resolverIndex{listing: &source.Listing{
				Title:        "empty",
				IsCollection: true,
			}}

			_, err := Expand(context.Background(), index, "locator")
			So(err, ShouldNotBeNil)

			var empty *source.EmptyCollectionError
			So(errors.As(err, &empty), ShouldBeTrue)
			So(empty.Locator, ShouldEqual, "locator")
		})

		Convey("Should surface provider failures", func() {
			index := &resolverIndex{err: errors.New("boom")}

			_, err := Expand(context.Background(), index, "locator")
			So(err, ShouldNotBeNil)
		})
	})
}
