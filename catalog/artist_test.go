package catalog

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBestArtist(t *testing.T) {
	Convey("BestArtist", t, func() {
		Convey("Should return none for no candidates", func() {
			So(BestArtist("anyone", nil).IsAbsent(), ShouldBeTrue)
		})

		Convey("Should prefer the exact name match regardless of casing", func() {
			artists := []Artist{
				{ID: "1", Name: "Falling Up (tribute)", Score: 100},
				{ID: "2", Name: "falling up", Score: 90},
			}

			best, ok := BestArtist("Falling Up", artists).Get()
			So(ok, ShouldBeTrue)
			So(best.ID, ShouldEqual, "2")
		})

		Convey("Should break exact-match ties by relevance score", func() {
			artists := []Artist{
				{ID: "low", Name: "Nirvana", Score: 40},
				{ID: "high", Name: "Nirvana", Score: 100},
			}

			best, ok := BestArtist("Nirvana", artists).Get()
			So(ok, ShouldBeTrue)
			So(best.ID, ShouldEqual, "high")
		})

		Convey("Should fall back to the fuzzy-closest candidate", func() {
			artists := []Artist{
				{ID: "1", Name: "The Beatles Revival Band", Score: 100},
				{ID: "2", Name: "The Beatles", Score: 90},
			}

			best, ok := BestArtist("Beatles", artists).Get()
			So(ok, ShouldBeTrue)
			So(best.ID, ShouldEqual, "2")
		})

		Convey("Should take the first candidate when nothing matches", func() {
			artists := []Artist{
				{ID: "1", Name: "Zzz", Score: 10},
				{ID: "2", Name: "Yyy", Score: 5},
			}

			best, ok := BestArtist("qqqqqq", artists).Get()
			So(ok, ShouldBeTrue)
			So(best.ID, ShouldEqual, "1")
		})
	})
}

func TestChooseRelease(t *testing.T) {
	Convey("chooseRelease", t, func() {
		Convey("Should prefer an official release", func() {
			releases := []release{
				{ID: "bootleg", Status: "Bootleg"},
				{ID: "official", Status: "Official"},
			}
			So(chooseRelease(releases).ID, ShouldEqual, "official")
		})

		Convey("Should fall back to the first release", func() {
			releases := []release{
				{ID: "first", Status: "Promotion"},
				{ID: "second", Status: "Bootleg"},
			}
			So(chooseRelease(releases).ID, ShouldEqual, "first")
		})
	})
}

func TestReleaseGroupIsLive(t *testing.T) {
	Convey("releaseGroup isLive", t, func() {
		live := releaseGroup{SecondaryTypes: []string{"Compilation", "Live"}}
		So(live.isLive(), ShouldBeTrue)

		studio := releaseGroup{SecondaryTypes: []string{"Compilation"}}
		So(studio.isLive(), ShouldBeFalse)

		plain := releaseGroup{}
		So(plain.isLive(), ShouldBeFalse)
	})
}
