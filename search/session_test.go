package search

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/tunegrab-cli/tunegrab/source"
	. "github.com/smartystreets/goconvey/convey"
)

// stubIndex replays canned per-call search results and counts invocations.
type stubIndex struct {
	results [][]source.Record
	errs    []error
	calls   int
	queries []string
}

func (s *stubIndex) Name() string {
	return "stub"
}

func (s *stubIndex) Search(_ context.Context, query string, _ int) ([]source.Record, error) {
	call := s.calls
	s.calls++
	s.queries = append(s.queries, query)

	if call < len(s.errs) && s.errs[call] != nil {
		return nil, s.errs[call]
	}
	if call < len(s.results) {
		return s.results[call], nil
	}
	return nil, nil
}

func (s *stubIndex) Resolve(_ context.Context, _ string) (*source.Listing, error) {
	panic("not used")
}

func newTestSession(index source.Index) *Session {
	return NewSession(index, &Options{
		Timeout: time.Second,
		Out:     io.Discard,
	})
}

func TestSessionResolve(t *testing.T) {
	Convey("Session Resolve", t, func() {
		Convey("Should stop at the first variant with an eligible record", func() {
			index := &stubIndex{results: [][]source.Record{
				{{Kind: source.KindItem, Title: "Band - Album (1999)", Locator: "abc"}},
			}}

			match, err := newTestSession(index).Resolve(context.Background(), "band album")
			So(err, ShouldBeNil)
			So(index.calls, ShouldEqual, 1)
			So(match.Title, ShouldEqual, "Band - Album (1999)")
		})

		Convey("Should append the full album variant for plain terms", func() {
			index := &stubIndex{results: [][]source.Record{
				nil,
				{{Kind: source.KindItem, Title: "found on retry", Locator: "abc"}},
			}}

			match, err := newTestSession(index).Resolve(context.Background(), "band album")
			So(err, ShouldBeNil)
			So(index.calls, ShouldEqual, 2)
			So(index.queries[1], ShouldEqual, "band album full album")
			So(match.Title, ShouldEqual, "found on retry")
		})

		Convey("Should run a single variant when the term already asks for a full album", func() {
			index := &stubIndex{}

			_, err := newTestSession(index).Resolve(context.Background(), "band album full album")
			So(err, ShouldNotBeNil)
			So(index.calls, ShouldEqual, 1)
		})

		Convey("Should exclude live records unless the term asks for them", func() {
			live := source.Record{Kind: source.KindItem, Title: "Band Live at Venue", Locator: "live1", ViewCount: 9_000_000}
			studio := source.Record{Kind: source.KindItem, Title: "Band - Album (1999)", Locator: "studio"}

			index := &stubIndex{results: [][]source.Record{{live, studio}}}
			match, err := newTestSession(index).Resolve(context.Background(), "band album")
			So(err, ShouldBeNil)
			So(match.Title, ShouldEqual, "Band - Album (1999)")

			index = &stubIndex{results: [][]source.Record{{live}}}
			match, err = newTestSession(index).Resolve(context.Background(), "band live")
			So(err, ShouldBeNil)
			So(match.Title, ShouldEqual, "Band Live at Venue")
		})

		Convey("Should skip records without a title", func() {
			index := &stubIndex{results: [][]source.Record{
				{{Kind: source.KindItem, Title: "", Locator: "untitled"}},
				nil,
			}}

			_, err := newTestSession(index).Resolve(context.Background(), "band album")
			So(err, ShouldNotBeNil)
		})

		Convey("Should keep the earliest record on equal scores", func() {
			index := &stubIndex{results: [][]source.Record{{
				{Kind: source.KindItem, Title: "first", Locator: "a", ViewCount: 100_000},
				{Kind: source.KindItem, Title: "second", Locator: "b", ViewCount: 100_000},
			}}}

			match, err := newTestSession(index).Resolve(context.Background(), "band album")
			So(err, ShouldBeNil)
			So(match.Title, ShouldEqual, "first")
		})

		Convey("Should fail with NotFoundError after exhausting all variants", func() {
			index := &stubIndex{}

			_, err := newTestSession(index).Resolve(context.Background(), "band album")
			So(err, ShouldNotBeNil)

			var notFound *source.NotFoundError
			So(errors.As(err, &notFound), ShouldBeTrue)
			So(notFound.Term, ShouldEqual, "band album")
			So(index.calls, ShouldEqual, 2)
		})

		Convey("Should recover from a failing variant and continue", func() {
			index := &stubIndex{
				errs: []error{errors.New("transport down"), nil},
				results: [][]source.Record{
					nil,
					{{Kind: source.KindItem, Title: "recovered", Locator: "abc"}},
				},
			}

			match, err := newTestSession(index).Resolve(context.Background(), "band album")
			So(err, ShouldBeNil)
			So(match.Title, ShouldEqual, "recovered")
		})

		Convey("Should select the collection in the canonical scenario", func() {
			index := &stubIndex{results: [][]source.Record{{
				{
					Kind:        source.KindCollection,
					Title:       "Band - Album (1999) Full Album [Official]",
					Locator:     "PLxyz",
					MemberCount: 12,
				},
				{
					Kind:      source.KindItem,
					Title:     "Band - Album (1999) Full Album (review)",
					Locator:   "abc",
					ViewCount: 2_000_000,
				},
			}}}

			match, err := newTestSession(index).Resolve(context.Background(), "Band - Album (1999) full album")
			So(err, ShouldBeNil)
			So(match.Kind, ShouldEqual, source.KindCollection)
			So(match.Score, ShouldEqual, 762)
			So(match.Locator, ShouldEqual, "https://www.youtube.com/playlist?list=PLxyz")
		})
	})
}
