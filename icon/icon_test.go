package icon

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/tunegrab-cli/tunegrab/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("Icon Get", t, func() {
		Convey("Should render the configured variant", func() {
			viper.Set(key.IconsVariant, plain)
			So(Get(Success), ShouldEqual, "[ok]")

			viper.Set(key.IconsVariant, emoji)
			So(Get(Success), ShouldEqual, "✅")
		})

		Convey("Should render nothing for an unknown variant", func() {
			viper.Set(key.IconsVariant, "bogus")
			So(Get(Success), ShouldBeEmpty)
		})

		Convey("Every registered icon should cover every variant", func() {
			for _, def := range icons {
				So(def.emoji, ShouldNotBeEmpty)
				So(def.nerd, ShouldNotBeEmpty)
				So(def.plain, ShouldNotBeEmpty)
			}
		})
	})
}
