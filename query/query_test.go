package query

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/tunegrab-cli/tunegrab/filesystem"
	"github.com/tunegrab-cli/tunegrab/key"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowQuerySuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Query history", t, func() {
		So(Remember("Band - Album (1999) full album", 1), ShouldBeNil)
		So(Remember("band second record", 1), ShouldBeNil)
		So(Remember("band second record", 1), ShouldBeNil)

		Convey("Should suggest the most popular matching query", func() {
			suggestion := Suggest("band")
			So(suggestion.IsPresent(), ShouldBeTrue)
			So(suggestion.MustGet(), ShouldEqual, "band second record")
		})

		Convey("Should list every match ordered by rank", func() {
			suggestions := SuggestMany("band")
			So(suggestions, ShouldHaveLength, 2)
			So(suggestions[0], ShouldEqual, "band second record")
		})

		Convey("Should return none for an unknown prefix", func() {
			So(Suggest("zzzzzz").IsAbsent(), ShouldBeTrue)
		})

		Convey("Should honor the suggestion toggle", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			defer viper.Set(key.SearchShowQuerySuggestions, true)

			So(SuggestMany("band"), ShouldBeEmpty)
		})
	})
}
